package repository

import (
	"context"

	"github.com/fitconnect/fitconnect/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type postRepository struct {
	store *Store[models.Post]
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{store: NewStore[models.Post](db)}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.store.Create(ctx, post)
}

func (r *postRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	return r.store.GetByID(ctx, id)
}

func (r *postRepository) List(ctx context.Context) ([]*models.Post, error) {
	return r.store.List(ctx)
}

func (r *postRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Post, error) {
	return r.store.FindBy(ctx, "user_id", userID)
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	return r.store.Save(ctx, post)
}

func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.Delete(ctx, id)
}
