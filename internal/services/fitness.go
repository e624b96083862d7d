package services

import (
	"context"
	"time"

	"github.com/fitconnect/fitconnect/internal/models"
	"github.com/fitconnect/fitconnect/internal/repository"
	"github.com/fitconnect/fitconnect/pkg/logger"
	"github.com/fitconnect/fitconnect/pkg/queue"
)

// LogService 统一承载三类健身记录（饮食计划、训练计划、训练状态）的业务逻辑：
// 创建和更新时都会校验归属用户并回填作者快照字段。
type LogService[T any, PT interface {
	*T
	models.OwnedLog
}] struct {
	repo         repository.LogRepository[T]
	userRepo     repository.UserRepository
	producer     queue.Producer
	logger       *logger.Logger
	kind         string
	createdEvent queue.EventType
	updatedEvent queue.EventType
}

func NewMealPlanService(repo repository.LogRepository[models.MealPlan], userRepo repository.UserRepository, producer queue.Producer, logger *logger.Logger) *LogService[models.MealPlan, *models.MealPlan] {
	return &LogService[models.MealPlan, *models.MealPlan]{
		repo:         repo,
		userRepo:     userRepo,
		producer:     producer,
		logger:       logger,
		kind:         "meal plan",
		createdEvent: queue.EventMealPlanCreated,
		updatedEvent: queue.EventMealPlanUpdated,
	}
}

func NewWorkoutPlanService(repo repository.LogRepository[models.WorkoutPlan], userRepo repository.UserRepository, producer queue.Producer, logger *logger.Logger) *LogService[models.WorkoutPlan, *models.WorkoutPlan] {
	return &LogService[models.WorkoutPlan, *models.WorkoutPlan]{
		repo:         repo,
		userRepo:     userRepo,
		producer:     producer,
		logger:       logger,
		kind:         "workout plan",
		createdEvent: queue.EventWorkoutPlanCreated,
		updatedEvent: queue.EventWorkoutPlanUpdated,
	}
}

func NewWorkoutStatusService(repo repository.LogRepository[models.WorkoutStatus], userRepo repository.UserRepository, producer queue.Producer, logger *logger.Logger) *LogService[models.WorkoutStatus, *models.WorkoutStatus] {
	return &LogService[models.WorkoutStatus, *models.WorkoutStatus]{
		repo:         repo,
		userRepo:     userRepo,
		producer:     producer,
		logger:       logger,
		kind:         "workout status",
		createdEvent: queue.EventWorkoutStatusCreated,
		updatedEvent: queue.EventWorkoutStatusUpdated,
	}
}

func (s *LogService[T, PT]) GetAll(ctx context.Context) ([]*T, error) {
	entities, err := s.repo.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return entities, nil
}

func (s *LogService[T, PT]) GetByID(ctx context.Context, id string) (*T, error) {
	parsed, err := parseID(id, s.kind+" ID")
	if err != nil {
		return nil, err
	}

	entity, err := s.repo.GetByID(ctx, parsed)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if entity == nil {
		return nil, models.NewNotFoundError(s.kind)
	}
	return entity, nil
}

// Create 校验归属用户存在后写入作者快照再落盘
func (s *LogService[T, PT]) Create(ctx context.Context, entity PT) (*T, error) {
	owner, err := s.userRepo.GetByID(ctx, entity.OwnerID())
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if owner == nil {
		return nil, models.NewNotFoundError("user")
	}

	entity.Stamp(owner)

	if err := s.repo.Create(ctx, (*T)(entity)); err != nil {
		return nil, models.NewInternalError(err)
	}

	publishEvent(ctx, s.producer, s.logger, owner.ID.String(), queue.Event{
		Type:      s.createdEvent,
		Timestamp: time.Now(),
		Data: queue.LogEventData{
			LogID:  entity.LogID().String(),
			UserID: owner.ID.String(),
		},
	})

	s.logger.WithFields(map[string]interface{}{
		"id":      entity.LogID().String(),
		"user_id": owner.ID.String(),
		"kind":    s.kind,
	}).Info("Fitness log created successfully")

	return (*T)(entity), nil
}

// Update 路径参数里的 ID 优先于请求体里的 ID
func (s *LogService[T, PT]) Update(ctx context.Context, id string, entity PT) (*T, error) {
	parsed, err := parseID(id, s.kind+" ID")
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByID(ctx, parsed)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !exists {
		return nil, models.NewNotFoundError(s.kind)
	}

	owner, err := s.userRepo.GetByID(ctx, entity.OwnerID())
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if owner == nil {
		return nil, models.NewNotFoundError("user")
	}

	entity.Stamp(owner)
	entity.ForceID(parsed)

	if err := s.repo.Update(ctx, (*T)(entity)); err != nil {
		return nil, models.NewInternalError(err)
	}

	publishEvent(ctx, s.producer, s.logger, owner.ID.String(), queue.Event{
		Type:      s.updatedEvent,
		Timestamp: time.Now(),
		Data: queue.LogEventData{
			LogID:  entity.LogID().String(),
			UserID: owner.ID.String(),
		},
	})

	s.logger.WithFields(map[string]interface{}{
		"id":      entity.LogID().String(),
		"user_id": owner.ID.String(),
		"kind":    s.kind,
	}).Info("Fitness log updated successfully")

	return (*T)(entity), nil
}

func (s *LogService[T, PT]) Delete(ctx context.Context, id string) error {
	parsed, err := parseID(id, s.kind+" ID")
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, parsed); err != nil {
		return models.NewInternalError(err)
	}

	s.logger.WithFields(map[string]interface{}{
		"id":   id,
		"kind": s.kind,
	}).Info("Fitness log deleted successfully")
	return nil
}
