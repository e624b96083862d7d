package services

import (
	"context"

	"github.com/fitconnect/fitconnect/internal/models"
	"github.com/fitconnect/fitconnect/pkg/logger"
	"github.com/fitconnect/fitconnect/pkg/queue"
	"github.com/google/uuid"
)

func parseID(value, label string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, models.NewValidationError("invalid " + label)
	}
	return id, nil
}

// publishEvent 尽力而为地发布领域事件；失败只记日志，不影响请求
func publishEvent(ctx context.Context, producer queue.Producer, log *logger.Logger, key string, event queue.Event) {
	if producer == nil {
		return
	}
	if err := producer.Publish(ctx, key, event); err != nil {
		log.WithError(err).WithField("event", string(event.Type)).Error("Failed to publish event")
	}
}
