package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// Producer 供服务层发布领域事件；发布失败只记日志，不影响请求结果
type Producer interface {
	Publish(ctx context.Context, key string, value interface{}) error
	Close() error
}

type KafkaProducer struct {
	writer *kafka.Writer
}

func NewKafkaProducer(brokers []string, topic string) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.Hash{},
		Async:    false,
	}

	return &KafkaProducer{writer: writer}
}

func (p *KafkaProducer) Publish(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	return p.writer.WriteMessages(ctx, message)
}

func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

type EventType string

const (
	EventUserRegistered       EventType = "user_registered"
	EventUserUpdated          EventType = "user_updated"
	EventUserDeleted          EventType = "user_deleted"
	EventUserFollowed         EventType = "user_followed"
	EventUserUnfollowed       EventType = "user_unfollowed"
	EventPostCreated          EventType = "post_created"
	EventPostDeleted          EventType = "post_deleted"
	EventPostLiked            EventType = "post_liked"
	EventPostUnliked          EventType = "post_unliked"
	EventCommentCreated       EventType = "comment_created"
	EventShareCreated         EventType = "share_created"
	EventMealPlanCreated      EventType = "meal_plan_created"
	EventMealPlanUpdated      EventType = "meal_plan_updated"
	EventWorkoutPlanCreated   EventType = "workout_plan_created"
	EventWorkoutPlanUpdated   EventType = "workout_plan_updated"
	EventWorkoutStatusCreated EventType = "workout_status_created"
	EventWorkoutStatusUpdated EventType = "workout_status_updated"
)

type Event struct {
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

type FollowEventData struct {
	UserID         string `json:"user_id"`
	FollowedUserID string `json:"followed_user_id"`
}

type PostEventData struct {
	PostID string `json:"post_id"`
	UserID string `json:"user_id"`
	Title  string `json:"title"`
}

type LikeEventData struct {
	UserID string `json:"user_id"`
	PostID string `json:"post_id"`
}

type CommentEventData struct {
	CommentID string `json:"comment_id"`
	PostID    string `json:"post_id"`
	UserID    string `json:"user_id"`
}

type ShareEventData struct {
	ShareID string `json:"share_id"`
	PostID  string `json:"post_id"`
	UserID  string `json:"user_id"`
}

type LogEventData struct {
	LogID  string `json:"log_id"`
	UserID string `json:"user_id"`
}
