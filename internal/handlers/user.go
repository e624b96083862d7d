package handlers

import (
	"net/http"

	"github.com/fitconnect/fitconnect/internal/middleware"
	"github.com/fitconnect/fitconnect/internal/models"
	"github.com/fitconnect/fitconnect/internal/services"
	"github.com/fitconnect/fitconnect/pkg/logger"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *services.UserService
	jwtSecret   string
	jwtExpire   int64
	logger      *logger.Logger
}

func NewUserHandler(userService *services.UserService, jwtSecret string, jwtExpire int64, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		jwtSecret:   jwtSecret,
		jwtExpire:   jwtExpire,
		logger:      logger,
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, created, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	if user == nil {
		c.JSON(status, gin.H{"message": "Register Successfully"})
		return
	}
	c.JSON(status, user)
}

// loginResponse 把 token 平铺在用户视图旁边，保持老客户端的响应结构
type loginResponse struct {
	*models.User
	Token string `json:"token"`
}

func (h *UserHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	token, err := middleware.GenerateToken(user.ID.String(), user.Name, h.jwtSecret, h.jwtExpire)
	if err != nil {
		respondError(c, h.logger, models.NewInternalError(err))
		return
	}

	c.JSON(http.StatusOK, loginResponse{User: user, Token: token})
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) ListActive(c *gin.Context) {
	users, err := h.userService.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Follow 切换关注状态。两个用户 ID 来自查询参数，
// 参数名沿用老客户端的大小写。
func (h *UserHandler) Follow(c *gin.Context) {
	userID := c.Query("userId")
	followedUserID := c.Query("FollowedUserId")

	user, err := h.userService.Follow(c.Request.Context(), userID, followedUserID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// FollowByPath 是路径参数版本的关注切换，供旧路由使用
func (h *UserHandler) FollowByPath(c *gin.Context) {
	user, err := h.userService.Follow(c.Request.Context(), c.Param("userId"), c.Param("followedUserId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	var req services.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), c.Param("userId"), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Activate(c *gin.Context) {
	user, err := h.userService.Activate(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Deactivate(c *gin.Context) {
	user, err := h.userService.Deactivate(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userService.Delete(c.Request.Context(), c.Param("userId")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
