package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store 是按实体类型参数化的文档网关：每种实体一张集合表，
// 主键为库端生成的 id。实体仓库在其上补充各自的查询。
type Store[T any] struct {
	db *gorm.DB
}

func NewStore[T any](db *gorm.DB) *Store[T] {
	return &Store[T]{db: db}
}

func (s *Store[T]) Create(ctx context.Context, entity *T) error {
	if err := s.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

func (s *Store[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	if err := s.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get record by ID: %w", err)
	}
	return &entity, nil
}

func (s *Store[T]) List(ctx context.Context) ([]*T, error) {
	var entities []*T
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return entities, nil
}

func (s *Store[T]) FindBy(ctx context.Context, field string, value interface{}) ([]*T, error) {
	var entities []*T
	if err := s.db.WithContext(ctx).
		Where(fmt.Sprintf("%s = ?", field), value).
		Order("created_at DESC").
		Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to find records by %s: %w", field, err)
	}
	return entities, nil
}

func (s *Store[T]) FirstBy(ctx context.Context, field string, value interface{}) (*T, error) {
	var entity T
	if err := s.db.WithContext(ctx).
		First(&entity, fmt.Sprintf("%s = ?", field), value).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get record by %s: %w", field, err)
	}
	return &entity, nil
}

func (s *Store[T]) Save(ctx context.Context, entity *T) error {
	if err := s.db.WithContext(ctx).Save(entity).Error; err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}

func (s *Store[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.db.WithContext(ctx).Delete(new(T), "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

func (s *Store[T]) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.ExistsBy(ctx, "id", id)
}

func (s *Store[T]) ExistsBy(ctx context.Context, field string, value interface{}) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(new(T)).
		Where(fmt.Sprintf("%s = ?", field), value).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check record by %s: %w", field, err)
	}
	return count > 0, nil
}
