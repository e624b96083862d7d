package services

import (
	"context"

	"github.com/fitconnect/fitconnect/internal/models"
	"github.com/fitconnect/fitconnect/pkg/logger"
	"github.com/fitconnect/fitconnect/pkg/queue"
	"github.com/google/uuid"
)

func testLogger() *logger.Logger {
	return logger.NewLogger("error")
}

// recordingProducer 记录发布的事件，供断言使用
type recordingProducer struct {
	events []queue.Event
}

func (p *recordingProducer) Publish(ctx context.Context, key string, value interface{}) error {
	if ev, ok := value.(queue.Event); ok {
		p.events = append(p.events, ev)
	}
	return nil
}

func (p *recordingProducer) Close() error { return nil }

func (p *recordingProducer) types() []queue.EventType {
	out := make([]queue.EventType, len(p.events))
	for i, ev := range p.events {
		out[i] = ev.Type
	}
	return out
}

type stubUserRepo struct {
	createFn        func(ctx context.Context, user *models.User) error
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*models.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*models.User, error)
	existsByEmailFn func(ctx context.Context, email string) (bool, error)
	listFn          func(ctx context.Context) ([]*models.User, error)
	listActiveFn    func(ctx context.Context) ([]*models.User, error)
	updateFn        func(ctx context.Context, user *models.User) error
	updateBothFn    func(ctx context.Context, first, second *models.User) error
	deleteFn        func(ctx context.Context, id uuid.UUID) error
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (s *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if s.existsByEmailFn != nil {
		return s.existsByEmailFn(ctx, email)
	}
	return false, nil
}

func (s *stubUserRepo) List(ctx context.Context) ([]*models.User, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *stubUserRepo) ListActive(ctx context.Context) ([]*models.User, error) {
	if s.listActiveFn != nil {
		return s.listActiveFn(ctx)
	}
	return nil, nil
}

func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, user)
	}
	return nil
}

func (s *stubUserRepo) UpdateBoth(ctx context.Context, first, second *models.User) error {
	if s.updateBothFn != nil {
		return s.updateBothFn(ctx, first, second)
	}
	return nil
}

func (s *stubUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubPostRepo struct {
	createFn     func(ctx context.Context, post *models.Post) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*models.Post, error)
	listFn       func(ctx context.Context) ([]*models.Post, error)
	listByUserFn func(ctx context.Context, userID uuid.UUID) ([]*models.Post, error)
	updateFn     func(ctx context.Context, post *models.Post) error
	deleteFn     func(ctx context.Context, id uuid.UUID) error
}

func (s *stubPostRepo) Create(ctx context.Context, post *models.Post) error {
	if s.createFn != nil {
		return s.createFn(ctx, post)
	}
	return nil
}

func (s *stubPostRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *stubPostRepo) List(ctx context.Context) ([]*models.Post, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *stubPostRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Post, error) {
	if s.listByUserFn != nil {
		return s.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (s *stubPostRepo) Update(ctx context.Context, post *models.Post) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, post)
	}
	return nil
}

func (s *stubPostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubCommentRepo struct {
	createFn     func(ctx context.Context, comment *models.Comment) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	listByPostFn func(ctx context.Context, postID uuid.UUID) ([]*models.Comment, error)
	updateFn     func(ctx context.Context, comment *models.Comment) error
	deleteFn     func(ctx context.Context, id uuid.UUID) error
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	if s.createFn != nil {
		return s.createFn(ctx, comment)
	}
	return nil
}

func (s *stubCommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *stubCommentRepo) ListByPost(ctx context.Context, postID uuid.UUID) ([]*models.Comment, error) {
	if s.listByPostFn != nil {
		return s.listByPostFn(ctx, postID)
	}
	return nil, nil
}

func (s *stubCommentRepo) Update(ctx context.Context, comment *models.Comment) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, comment)
	}
	return nil
}

func (s *stubCommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubShareRepo struct {
	createFn     func(ctx context.Context, share *models.SharePost) error
	listFn       func(ctx context.Context) ([]*models.SharePost, error)
	listByUserFn func(ctx context.Context, userID uuid.UUID) ([]*models.SharePost, error)
	deleteFn     func(ctx context.Context, id uuid.UUID) error
}

func (s *stubShareRepo) Create(ctx context.Context, share *models.SharePost) error {
	if s.createFn != nil {
		return s.createFn(ctx, share)
	}
	return nil
}

func (s *stubShareRepo) List(ctx context.Context) ([]*models.SharePost, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *stubShareRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.SharePost, error) {
	if s.listByUserFn != nil {
		return s.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (s *stubShareRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubLogRepo[T any] struct {
	createFn     func(ctx context.Context, entity *T) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*T, error)
	existsByIDFn func(ctx context.Context, id uuid.UUID) (bool, error)
	listFn       func(ctx context.Context) ([]*T, error)
	updateFn     func(ctx context.Context, entity *T) error
	deleteFn     func(ctx context.Context, id uuid.UUID) error
}

func (s *stubLogRepo[T]) Create(ctx context.Context, entity *T) error {
	if s.createFn != nil {
		return s.createFn(ctx, entity)
	}
	return nil
}

func (s *stubLogRepo[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *stubLogRepo[T]) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	if s.existsByIDFn != nil {
		return s.existsByIDFn(ctx, id)
	}
	return false, nil
}

func (s *stubLogRepo[T]) List(ctx context.Context) ([]*T, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *stubLogRepo[T]) Update(ctx context.Context, entity *T) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, entity)
	}
	return nil
}

func (s *stubLogRepo[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}
