package repository

import (
	"context"

	"github.com/fitconnect/fitconnect/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LogRepository 三类健身记录共用的仓库形态
type LogRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context) ([]*T, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type logRepository[T any] struct {
	store *Store[T]
}

func NewMealPlanRepository(db *gorm.DB) LogRepository[models.MealPlan] {
	return &logRepository[models.MealPlan]{store: NewStore[models.MealPlan](db)}
}

func NewWorkoutPlanRepository(db *gorm.DB) LogRepository[models.WorkoutPlan] {
	return &logRepository[models.WorkoutPlan]{store: NewStore[models.WorkoutPlan](db)}
}

func NewWorkoutStatusRepository(db *gorm.DB) LogRepository[models.WorkoutStatus] {
	return &logRepository[models.WorkoutStatus]{store: NewStore[models.WorkoutStatus](db)}
}

func (r *logRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.store.Create(ctx, entity)
}

func (r *logRepository[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	return r.store.GetByID(ctx, id)
}

func (r *logRepository[T]) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.store.ExistsByID(ctx, id)
}

func (r *logRepository[T]) List(ctx context.Context) ([]*T, error) {
	return r.store.List(ctx)
}

func (r *logRepository[T]) Update(ctx context.Context, entity *T) error {
	return r.store.Save(ctx, entity)
}

func (r *logRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.Delete(ctx, id)
}
