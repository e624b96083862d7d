package handlers

import (
	"net/http"

	"github.com/fitconnect/fitconnect/internal/services"
	"github.com/fitconnect/fitconnect/pkg/logger"
	"github.com/gin-gonic/gin"
)

type SharePostHandler struct {
	shareService *services.SharePostService
	logger       *logger.Logger
}

func NewSharePostHandler(shareService *services.SharePostService, logger *logger.Logger) *SharePostHandler {
	return &SharePostHandler{
		shareService: shareService,
		logger:       logger,
	}
}

func (h *SharePostHandler) List(c *gin.Context) {
	shares, err := h.shareService.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, shares)
}

func (h *SharePostHandler) ListByUser(c *gin.Context) {
	shares, err := h.shareService.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, shares)
}

func (h *SharePostHandler) Create(c *gin.Context) {
	var req services.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	share, err := h.shareService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, share)
}

func (h *SharePostHandler) Delete(c *gin.Context) {
	if err := h.shareService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
