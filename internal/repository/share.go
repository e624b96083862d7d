package repository

import (
	"context"

	"github.com/fitconnect/fitconnect/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SharePostRepository interface {
	Create(ctx context.Context, share *models.SharePost) error
	List(ctx context.Context) ([]*models.SharePost, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.SharePost, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type sharePostRepository struct {
	store *Store[models.SharePost]
}

func NewSharePostRepository(db *gorm.DB) SharePostRepository {
	return &sharePostRepository{store: NewStore[models.SharePost](db)}
}

func (r *sharePostRepository) Create(ctx context.Context, share *models.SharePost) error {
	return r.store.Create(ctx, share)
}

func (r *sharePostRepository) List(ctx context.Context) ([]*models.SharePost, error) {
	return r.store.List(ctx)
}

func (r *sharePostRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.SharePost, error) {
	return r.store.FindBy(ctx, "user_id", userID)
}

func (r *sharePostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.Delete(ctx, id)
}
