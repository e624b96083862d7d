package repository

import (
	"context"

	"github.com/fitconnect/fitconnect/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type commentRepository struct {
	store *Store[models.Comment]
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{store: NewStore[models.Comment](db)}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.store.Create(ctx, comment)
}

func (r *commentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	return r.store.GetByID(ctx, id)
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]*models.Comment, error) {
	return r.store.FindBy(ctx, "post_id", postID)
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	return r.store.Save(ctx, comment)
}

func (r *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.Delete(ctx, id)
}
