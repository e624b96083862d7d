package handlers

import (
	"net/http"

	"github.com/fitconnect/fitconnect/internal/services"
	"github.com/fitconnect/fitconnect/pkg/logger"
	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService *services.CommentService
	logger         *logger.Logger
}

func NewCommentHandler(commentService *services.CommentService, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		logger:         logger,
	}
}

func (h *CommentHandler) ListForPost(c *gin.Context) {
	comments, err := h.commentService.ListForPost(c.Request.Context(), c.Param("postId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Add 评论内容和作者展示字段都通过查询参数传递，沿用老客户端的约定
func (h *CommentHandler) Add(c *gin.Context) {
	var req services.AddCommentRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}

	comment, err := h.commentService.Add(c.Request.Context(), c.Param("postId"), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) Edit(c *gin.Context) {
	comment, err := h.commentService.Edit(c.Request.Context(), c.Param("commentId"), c.Query("content"), c.Query("media"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.commentService.Delete(c.Request.Context(), c.Param("commentId")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
