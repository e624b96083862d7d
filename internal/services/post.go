package services

import (
	"context"
	"time"

	"github.com/fitconnect/fitconnect/internal/models"
	"github.com/fitconnect/fitconnect/internal/repository"
	"github.com/fitconnect/fitconnect/pkg/logger"
	"github.com/fitconnect/fitconnect/pkg/queue"
)

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	producer queue.Producer
	logger   *logger.Logger
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, producer queue.Producer, logger *logger.Logger) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		producer: producer,
		logger:   logger,
	}
}

type CreatePostRequest struct {
	UserID      string   `json:"userId" binding:"required"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Video       string   `json:"video"`
}

type EditPostRequest struct {
	ID          string   `json:"id" binding:"required"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Video       string   `json:"video"`
}

// Create 创建帖子，作者的展示字段在写入时从用户目录固化
func (s *PostService) Create(ctx context.Context, req *CreatePostRequest) (*models.Post, error) {
	userID, err := parseID(req.UserID, "user ID")
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if user == nil {
		return nil, models.NewNotFoundError("user")
	}

	post := &models.Post{
		UserID:      user.ID,
		Username:    user.Name,
		UserProfile: user.ProfileImage,
		Title:       req.Title,
		Description: req.Description,
		Images:      req.Images,
		Video:       req.Video,
		LikedBy:     []string{},
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}

	publishEvent(ctx, s.producer, s.logger, req.UserID, queue.Event{
		Type:      queue.EventPostCreated,
		Timestamp: time.Now(),
		Data: queue.PostEventData{
			PostID: post.ID.String(),
			UserID: req.UserID,
			Title:  post.Title,
		},
	})

	s.logger.WithFields(map[string]interface{}{
		"post_id": post.ID,
		"user_id": req.UserID,
	}).Info("Post created successfully")

	return post, nil
}

func (s *PostService) List(ctx context.Context) ([]*models.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (s *PostService) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	id, err := parseID(postID, "post ID")
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if post == nil {
		return nil, models.NewNotFoundError("post")
	}
	return post, nil
}

func (s *PostService) ListByUser(ctx context.Context, userID string) ([]*models.Post, error) {
	id, err := parseID(userID, "user ID")
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.ListByUser(ctx, id)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// Edit 覆盖帖子内容字段；作者快照保持创建时的值，不回写
func (s *PostService) Edit(ctx context.Context, req *EditPostRequest) (*models.Post, error) {
	id, err := parseID(req.ID, "post ID")
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if post == nil {
		return nil, models.NewNotFoundError("post")
	}

	post.Title = req.Title
	post.Description = req.Description
	post.Images = req.Images
	post.Video = req.Video

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}

	s.logger.WithField("post_id", req.ID).Info("Post updated successfully")
	return post, nil
}

// Like 点赞切换：已点赞则取消，未点赞则加入 likedBy 集合
func (s *PostService) Like(ctx context.Context, postID, userID string) (*models.Post, error) {
	id, err := parseID(postID, "post ID")
	if err != nil {
		return nil, err
	}
	uid, err := parseID(userID, "user ID")
	if err != nil {
		return nil, err
	}

	// LikedBy 的成员用解析后的标准形式，切换判定才可靠
	postID = id.String()
	userID = uid.String()

	user, err := s.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if user == nil {
		return nil, models.NewNotFoundError("user")
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if post == nil {
		return nil, models.NewNotFoundError("post")
	}

	eventType := queue.EventPostUnliked
	if post.ToggleLike(userID) {
		eventType = queue.EventPostLiked
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}

	publishEvent(ctx, s.producer, s.logger, userID, queue.Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Data: queue.LikeEventData{
			UserID: userID,
			PostID: postID,
		},
	})

	s.logger.WithFields(map[string]interface{}{
		"post_id": postID,
		"user_id": userID,
		"event":   string(eventType),
	}).Info("Post like toggled")

	return post, nil
}

// Delete 按 id 无条件删除；评论和分享对帖子只是弱引用，不级联
func (s *PostService) Delete(ctx context.Context, postID string) error {
	id, err := parseID(postID, "post ID")
	if err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return models.NewInternalError(err)
	}

	publishEvent(ctx, s.producer, s.logger, postID, queue.Event{
		Type:      queue.EventPostDeleted,
		Timestamp: time.Now(),
		Data: queue.PostEventData{
			PostID: postID,
		},
	})

	s.logger.WithField("post_id", postID).Info("Post deleted successfully")
	return nil
}
