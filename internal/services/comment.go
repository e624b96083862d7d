package services

import (
	"context"
	"time"

	"github.com/fitconnect/fitconnect/internal/models"
	"github.com/fitconnect/fitconnect/internal/repository"
	"github.com/fitconnect/fitconnect/pkg/logger"
	"github.com/fitconnect/fitconnect/pkg/queue"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	producer    queue.Producer
	logger      *logger.Logger
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, producer queue.Producer, logger *logger.Logger) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		producer:    producer,
		logger:      logger,
	}
}

// AddCommentRequest 评论的作者展示字段由客户端随请求提供，
// 写入后不再与用户目录同步。
type AddCommentRequest struct {
	Content          string `form:"content" binding:"required"`
	CommentBy        string `form:"commentBy"`
	CommentByID      string `form:"commentById"`
	CommentByProfile string `form:"commentByProfile"`
	Media            string `form:"media"`
}

func (s *CommentService) ListForPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	id, err := parseID(postID, "post ID")
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, id)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

// Add 仅当被评论的帖子存在时才落盘
func (s *CommentService) Add(ctx context.Context, postID string, req *AddCommentRequest) (*models.Comment, error) {
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

	comment := &models.Comment{
		PostID:           post.ID,
		Content:          req.Content,
		CommentBy:        req.CommentBy,
		CommentByID:      req.CommentByID,
		CommentByProfile: req.CommentByProfile,
		Media:            req.Media,
		CreatedAt:        time.Now(),
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}

	publishEvent(ctx, s.producer, s.logger, postID, queue.Event{
		Type:      queue.EventCommentCreated,
		Timestamp: time.Now(),
		Data: queue.CommentEventData{
			CommentID: comment.ID.String(),
			PostID:    postID,
			UserID:    req.CommentByID,
		},
	})

	s.logger.WithFields(map[string]interface{}{
		"comment_id": comment.ID,
		"post_id":    postID,
	}).Info("Comment created successfully")

	return comment, nil
}

// Edit 更新评论内容；media 仅在提供时覆盖。帖子的存在性不再复核。
func (s *CommentService) Edit(ctx context.Context, commentID, content, media string) (*models.Comment, error) {
	id, err := parseID(commentID, "comment ID")
	if err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if comment == nil {
		return nil, models.NewNotFoundError("comment")
	}

	comment.Content = content
	if media != "" {
		comment.Media = media
	}

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}

	s.logger.WithField("comment_id", commentID).Info("Comment updated successfully")
	return comment, nil
}

// Delete 按 id 无条件删除，路径里的 postId 不参与校验
func (s *CommentService) Delete(ctx context.Context, commentID string) error {
	id, err := parseID(commentID, "comment ID")
	if err != nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return models.NewInternalError(err)
	}

	s.logger.WithField("comment_id", commentID).Info("Comment deleted successfully")
	return nil
}
