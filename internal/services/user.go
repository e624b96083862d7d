package services

import (
	"context"
	"strings"
	"time"

	"github.com/fitconnect/fitconnect/internal/models"
	"github.com/fitconnect/fitconnect/internal/repository"
	"github.com/fitconnect/fitconnect/pkg/cache"
	"github.com/fitconnect/fitconnect/pkg/logger"
	"github.com/fitconnect/fitconnect/pkg/queue"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo repository.UserRepository
	producer queue.Producer
	cache    *cache.RedisClient
	cacheTTL time.Duration
	logger   *logger.Logger
}

// NewUserService 构建用户目录服务；cache 可为 nil（禁用读缓存）
func NewUserService(userRepo repository.UserRepository, producer queue.Producer, userCache *cache.RedisClient, cacheTTL time.Duration, logger *logger.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		producer: producer,
		cache:    userCache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

type RegisterRequest struct {
	Name         string                    `json:"name" binding:"required"`
	Email        string                    `json:"email" binding:"required,email"`
	Password     string                    `json:"password"`
	ProfileImage string                    `json:"profileImage"`
	Source       models.RegistrationSource `json:"source"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ProfileUpdateRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	ProfileImage string `json:"profileImage"`
}

// Register 注册用户。凭据注册只返回成功标记（user 为 nil）；
// Google 注册返回用户视图，created 标记本次是否新建。
func (s *UserService) Register(ctx context.Context, req *RegisterRequest) (user *models.User, created bool, err error) {
	switch req.Source {
	case "":
		u, err := s.registerCredential(ctx, req)
		if err != nil {
			return nil, false, err
		}
		s.publishUser(ctx, u, queue.EventUserRegistered)
		s.logger.WithField("user_id", u.ID).Info("User registered successfully")
		return nil, true, nil

	case models.SourceGoogle:
		existing, err := s.userRepo.GetByEmail(ctx, req.Email)
		if err != nil {
			return nil, false, models.NewInternalError(err)
		}
		if existing != nil {
			return existing, false, nil
		}

		u := &models.User{
			Name:          req.Name,
			Email:         req.Email,
			ProfileImage:  req.ProfileImage,
			Source:        models.SourceGoogle,
			FollowedUsers: []string{},
		}
		if err := s.userRepo.Create(ctx, u); err != nil {
			return nil, false, models.NewInternalError(err)
		}

		s.publishUser(ctx, u, queue.EventUserRegistered)
		s.logger.WithField("user_id", u.ID).Info("Google user registered successfully")
		return u, true, nil

	default:
		// 未定义的注册来源不做猜测，直接拒绝
		return nil, false, models.NewValidationError("unsupported registration source")
	}
}

func (s *UserService) registerCredential(ctx context.Context, req *RegisterRequest) (*models.User, error) {
	if strings.TrimSpace(req.Password) == "" {
		return nil, models.NewValidationError("password is required")
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if exists {
		return nil, models.NewConflictError("email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:          req.Name,
		Email:         req.Email,
		Password:      string(hashed),
		ProfileImage:  req.ProfileImage,
		Source:        models.SourceCredential,
		FollowedUsers: []string{},
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, models.NewInternalError(err)
	}
	return user, nil
}

// Login 校验凭据，成功后把账号置为激活态
func (s *UserService) Login(ctx context.Context, req *LoginRequest) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if user == nil {
		return nil, models.NewNotFoundError("user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.NewUnauthorizedError("invalid password or email")
	}

	user.Active = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, models.NewInternalError(err)
	}
	s.invalidate(ctx, user.ID.String())

	s.logger.WithField("user_id", user.ID).Info("User logged in successfully")
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	id, err := parseID(userID, "user ID")
	if err != nil {
		return nil, err
	}
	userID = id.String()

	if s.cache != nil {
		var cached models.User
		if err := s.cache.GetJSON(ctx, userViewKey(userID), &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if user == nil {
		return nil, models.NewNotFoundError("user")
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, userViewKey(userID), user, s.cacheTTL); err != nil {
			s.logger.WithError(err).Warn("Failed to cache user view")
		}
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (s *UserService) ListActive(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// Follow 关注切换：已关注则取消关注，否则建立关注。
// 双边文档在一个事务里落盘，保证集合与计数的双向一致。
func (s *UserService) Follow(ctx context.Context, userID, followedUserID string) (*models.User, error) {
	id, err := parseID(userID, "user ID")
	if err != nil {
		return nil, err
	}
	followedID, err := parseID(followedUserID, "followed user ID")
	if err != nil {
		return nil, err
	}
	if id == followedID {
		return nil, models.NewValidationError("cannot follow yourself")
	}

	// uuid.Parse 也接受大写和 urn 形式；集合成员、缓存键和事件
	// 统一用解析后的标准形式，保证切换语义成立
	userID = id.String()
	followedUserID = followedID.String()

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if user == nil {
		return nil, models.NewNotFoundError("user")
	}

	target, err := s.userRepo.GetByID(ctx, followedID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if target == nil {
		return nil, models.NewNotFoundError("followed user")
	}

	eventType := queue.EventUserFollowed
	if user.Follows(followedUserID) {
		user.RemoveFollowed(target)
		eventType = queue.EventUserUnfollowed
	} else {
		user.AddFollowed(target)
	}

	if err := s.userRepo.UpdateBoth(ctx, user, target); err != nil {
		return nil, models.NewInternalError(err)
	}
	s.invalidate(ctx, userID, followedUserID)

	publishEvent(ctx, s.producer, s.logger, userID, queue.Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Data: queue.FollowEventData{
			UserID:         userID,
			FollowedUserID: followedUserID,
		},
	})

	s.logger.WithFields(map[string]interface{}{
		"user_id":          userID,
		"followed_user_id": followedUserID,
		"event":            string(eventType),
	}).Info("Follow toggled successfully")

	return user, nil
}

// UpdateProfile 只覆盖请求里非空的字段，密码重新散列
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req *ProfileUpdateRequest) (*models.User, error) {
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

	if email := strings.TrimSpace(req.Email); email != "" && email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, email)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		if exists {
			return nil, models.NewConflictError("email already exists")
		}
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		user.Email = email
	}
	if password := strings.TrimSpace(req.Password); password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.Password = string(hashed)
	}
	if image := strings.TrimSpace(req.ProfileImage); image != "" {
		user.ProfileImage = image
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, models.NewInternalError(err)
	}
	s.invalidate(ctx, id.String())

	s.publishUser(ctx, user, queue.EventUserUpdated)
	s.logger.WithField("user_id", user.ID).Info("User profile updated successfully")
	return user, nil
}

func (s *UserService) Activate(ctx context.Context, userID string) (*models.User, error) {
	return s.setActive(ctx, userID, true)
}

func (s *UserService) Deactivate(ctx context.Context, userID string) (*models.User, error) {
	return s.setActive(ctx, userID, false)
}

func (s *UserService) setActive(ctx context.Context, userID string, active bool) (*models.User, error) {
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

	user.Active = active
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, models.NewInternalError(err)
	}
	s.invalidate(ctx, id.String())

	s.logger.WithFields(map[string]interface{}{
		"user_id": userID,
		"active":  active,
	}).Info("User active flag updated")
	return user, nil
}

// Delete 删除用户文档。引用它的帖子、评论、分享和健身记录保留
// 各自的快照，不做级联清理。
func (s *UserService) Delete(ctx context.Context, userID string) error {
	id, err := parseID(userID, "user ID")
	if err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return models.NewInternalError(err)
	}
	if user == nil {
		return models.NewNotFoundError("user")
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return models.NewInternalError(err)
	}
	s.invalidate(ctx, id.String())

	s.publishUser(ctx, user, queue.EventUserDeleted)
	s.logger.WithField("user_id", userID).Info("User deleted successfully")
	return nil
}

func (s *UserService) publishUser(ctx context.Context, user *models.User, eventType queue.EventType) {
	publishEvent(ctx, s.producer, s.logger, user.ID.String(), queue.Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"user_id": user.ID.String(),
			"email":   user.Email,
			"source":  string(user.Source),
		},
	})
}

func (s *UserService) invalidate(ctx context.Context, userIDs ...string) {
	if s.cache == nil {
		return
	}
	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = userViewKey(id)
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.WithError(err).Warn("Failed to invalidate user view cache")
	}
}

func userViewKey(userID string) string {
	return "user:view:" + userID
}
