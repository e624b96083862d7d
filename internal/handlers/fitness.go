package handlers

import (
	"net/http"

	"github.com/fitconnect/fitconnect/internal/models"
	"github.com/fitconnect/fitconnect/internal/services"
	"github.com/fitconnect/fitconnect/pkg/logger"
	"github.com/gin-gonic/gin"
)

// LogHandler 三类健身记录共用的 HTTP 层，路径参数名由各自的路由决定
type LogHandler[T any, PT interface {
	*T
	models.OwnedLog
}] struct {
	service *services.LogService[T, PT]
	idParam string
	logger  *logger.Logger
}

func NewMealPlanHandler(service *services.LogService[models.MealPlan, *models.MealPlan], logger *logger.Logger) *LogHandler[models.MealPlan, *models.MealPlan] {
	return &LogHandler[models.MealPlan, *models.MealPlan]{service: service, idParam: "mealPlanId", logger: logger}
}

func NewWorkoutPlanHandler(service *services.LogService[models.WorkoutPlan, *models.WorkoutPlan], logger *logger.Logger) *LogHandler[models.WorkoutPlan, *models.WorkoutPlan] {
	return &LogHandler[models.WorkoutPlan, *models.WorkoutPlan]{service: service, idParam: "id", logger: logger}
}

func NewWorkoutStatusHandler(service *services.LogService[models.WorkoutStatus, *models.WorkoutStatus], logger *logger.Logger) *LogHandler[models.WorkoutStatus, *models.WorkoutStatus] {
	return &LogHandler[models.WorkoutStatus, *models.WorkoutStatus]{service: service, idParam: "statusId", logger: logger}
}

func (h *LogHandler[T, PT]) List(c *gin.Context) {
	entities, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, entities)
}

func (h *LogHandler[T, PT]) Get(c *gin.Context) {
	entity, err := h.service.GetByID(c.Request.Context(), c.Param(h.idParam))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

func (h *LogHandler[T, PT]) Create(c *gin.Context) {
	entity := PT(new(T))
	if err := c.ShouldBindJSON(entity); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), entity)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *LogHandler[T, PT]) Update(c *gin.Context) {
	entity := PT(new(T))
	if err := c.ShouldBindJSON(entity); err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param(h.idParam), entity)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *LogHandler[T, PT]) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param(h.idParam)); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
