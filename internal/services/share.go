package services

import (
	"context"
	"time"

	"github.com/fitconnect/fitconnect/internal/models"
	"github.com/fitconnect/fitconnect/internal/repository"
	"github.com/fitconnect/fitconnect/pkg/logger"
	"github.com/fitconnect/fitconnect/pkg/queue"
)

type SharePostService struct {
	shareRepo repository.SharePostRepository
	postRepo  repository.PostRepository
	userRepo  repository.UserRepository
	producer  queue.Producer
	logger    *logger.Logger
}

func NewSharePostService(shareRepo repository.SharePostRepository, postRepo repository.PostRepository, userRepo repository.UserRepository, producer queue.Producer, logger *logger.Logger) *SharePostService {
	return &SharePostService{
		shareRepo: shareRepo,
		postRepo:  postRepo,
		userRepo:  userRepo,
		producer:  producer,
		logger:    logger,
	}
}

type ShareRequest struct {
	PostID      string `json:"postId" binding:"required"`
	UserID      string `json:"userid" binding:"required"`
	Description string `json:"description"`
}

func (s *SharePostService) List(ctx context.Context) ([]*models.SharePost, error) {
	shares, err := s.shareRepo.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return shares, nil
}

// Create 要求被分享的帖子与分享者都存在；帖子内容与分享者
// 的展示字段在创建时固化为快照。
func (s *SharePostService) Create(ctx context.Context, req *ShareRequest) (*models.SharePost, error) {
	postID, err := parseID(req.PostID, "post ID")
	if err != nil {
		return nil, err
	}
	userID, err := parseID(req.UserID, "user ID")
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if post == nil {
		return nil, models.NewNotFoundError("post")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if user == nil {
		return nil, models.NewNotFoundError("user")
	}

	share := &models.SharePost{
		PostID:      post.ID,
		UserID:      user.ID,
		Description: req.Description,
		Shared:      "shared",
		Post:        models.SnapshotOf(post),
		SharedBy: models.UserSnapshot{
			Name:         user.Name,
			ProfileImage: user.ProfileImage,
		},
	}

	if err := s.shareRepo.Create(ctx, share); err != nil {
		return nil, models.NewInternalError(err)
	}

	publishEvent(ctx, s.producer, s.logger, req.UserID, queue.Event{
		Type:      queue.EventShareCreated,
		Timestamp: time.Now(),
		Data: queue.ShareEventData{
			ShareID: share.ID.String(),
			PostID:  req.PostID,
			UserID:  req.UserID,
		},
	})

	s.logger.WithFields(map[string]interface{}{
		"share_id": share.ID,
		"post_id":  req.PostID,
		"user_id":  req.UserID,
	}).Info("Share created successfully")

	return share, nil
}

func (s *SharePostService) ListByUser(ctx context.Context, userID string) ([]*models.SharePost, error) {
	id, err := parseID(userID, "user ID")
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if user == nil {
		return nil, models.NewNotFoundError("user")
	}

	shares, err := s.shareRepo.ListByUser(ctx, id)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return shares, nil
}

func (s *SharePostService) Delete(ctx context.Context, shareID string) error {
	id, err := parseID(shareID, "share ID")
	if err != nil {
		return err
	}

	if err := s.shareRepo.Delete(ctx, id); err != nil {
		return models.NewInternalError(err)
	}

	s.logger.WithField("share_id", shareID).Info("Share deleted successfully")
	return nil
}
