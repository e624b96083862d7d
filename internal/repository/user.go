package repository

import (
	"context"
	"fmt"

	"github.com/fitconnect/fitconnect/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*models.User, error)
	ListActive(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	// UpdateBoth 在一个事务里保存两个用户文档，关注切换用它保证双边一致
	UpdateBoth(ctx context.Context, first, second *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db    *gorm.DB
	store *Store[models.User]
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db, store: NewStore[models.User](db)}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.store.Create(ctx, user)
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.store.GetByID(ctx, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.store.FirstBy(ctx, "email", email)
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.store.ExistsBy(ctx, "email", email)
}

func (r *userRepository) List(ctx context.Context) ([]*models.User, error) {
	return r.store.List(ctx)
}

func (r *userRepository) ListActive(ctx context.Context) ([]*models.User, error) {
	return r.store.FindBy(ctx, "active", true)
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return r.store.Save(ctx, user)
}

func (r *userRepository) UpdateBoth(ctx context.Context, first, second *models.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(first).Error; err != nil {
			return err
		}
		return tx.Save(second).Error
	})
	if err != nil {
		return fmt.Errorf("failed to update users: %w", err)
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.Delete(ctx, id)
}
