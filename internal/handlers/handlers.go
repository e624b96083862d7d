package handlers

import (
	"net/http"

	"github.com/fitconnect/fitconnect/internal/models"
	"github.com/fitconnect/fitconnect/pkg/logger"
	"github.com/gin-gonic/gin"
)

// respondError 把统一的业务错误码映射到 HTTP 状态码
func respondError(c *gin.Context, log *logger.Logger, err error) {
	code := models.CodeOf(err)
	status := http.StatusInternalServerError

	switch code {
	case models.CodeNotFound:
		status = http.StatusNotFound
	case models.CodeConflict:
		status = http.StatusConflict
	case models.CodeUnauthorized:
		status = http.StatusUnauthorized
	case models.CodeValidation:
		status = http.StatusBadRequest
	default:
		log.WithError(err).Error("Internal server error")
	}

	c.JSON(status, gin.H{"error": err.Error(), "code": code})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": models.CodeValidation})
}
