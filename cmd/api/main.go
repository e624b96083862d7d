package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fitconnect/fitconnect/internal/config"
	"github.com/fitconnect/fitconnect/internal/handlers"
	"github.com/fitconnect/fitconnect/internal/middleware"
	"github.com/fitconnect/fitconnect/internal/repository"
	"github.com/fitconnect/fitconnect/internal/services"
	"github.com/fitconnect/fitconnect/pkg/cache"
	"github.com/fitconnect/fitconnect/pkg/logger"
	"github.com/fitconnect/fitconnect/pkg/queue"
	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	logger := logger.NewLogger(cfg.Logging.Level)
	logger.Info("Starting FitConnect API server...")

	// 初始化数据库
	db, err := repository.NewDatabase(&cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	// 自动迁移数据库表
	if err := db.AutoMigrate(); err != nil {
		logger.WithError(err).Fatal("Failed to migrate database")
	}

	// 初始化Redis缓存
	redisClient := cache.NewRedisClient(
		cfg.Redis.Addr(),
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
		cfg.Redis.MinIdleConns,
	)
	defer redisClient.Close()

	// 检查Redis连接
	ctx := context.Background()
	if err := redisClient.Ping(ctx); err != nil {
		logger.WithError(err).Fatal("Failed to connect to Redis")
	}

	// 初始化Kafka生产者
	userEventsProducer := queue.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topics.UserEvents)
	defer userEventsProducer.Close()

	contentEventsProducer := queue.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topics.ContentEvents)
	defer contentEventsProducer.Close()

	fitnessEventsProducer := queue.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topics.FitnessEvents)
	defer fitnessEventsProducer.Close()

	// 初始化仓库
	userRepo := repository.NewUserRepository(db.DB)
	postRepo := repository.NewPostRepository(db.DB)
	commentRepo := repository.NewCommentRepository(db.DB)
	shareRepo := repository.NewSharePostRepository(db.DB)
	mealPlanRepo := repository.NewMealPlanRepository(db.DB)
	workoutPlanRepo := repository.NewWorkoutPlanRepository(db.DB)
	workoutStatusRepo := repository.NewWorkoutStatusRepository(db.DB)

	// 初始化服务
	userService := services.NewUserService(userRepo, userEventsProducer, redisClient, cfg.Cache.UserViewTTL, logger)
	postService := services.NewPostService(postRepo, userRepo, contentEventsProducer, logger)
	commentService := services.NewCommentService(commentRepo, postRepo, contentEventsProducer, logger)
	shareService := services.NewSharePostService(shareRepo, postRepo, userRepo, contentEventsProducer, logger)
	mealPlanService := services.NewMealPlanService(mealPlanRepo, userRepo, fitnessEventsProducer, logger)
	workoutPlanService := services.NewWorkoutPlanService(workoutPlanRepo, userRepo, fitnessEventsProducer, logger)
	workoutStatusService := services.NewWorkoutStatusService(workoutStatusRepo, userRepo, fitnessEventsProducer, logger)

	// 初始化处理器
	jwtExpire := int64(cfg.JWT.ExpireTime.Seconds())
	userHandler := handlers.NewUserHandler(userService, cfg.JWT.Secret, jwtExpire, logger)
	postHandler := handlers.NewPostHandler(postService, logger)
	commentHandler := handlers.NewCommentHandler(commentService, logger)
	shareHandler := handlers.NewSharePostHandler(shareService, logger)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService, logger)
	workoutPlanHandler := handlers.NewWorkoutPlanHandler(workoutPlanService, logger)
	workoutStatusHandler := handlers.NewWorkoutStatusHandler(workoutStatusService, logger)

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建路由
	router := gin.New()
	router.Use(gin.Recovery())

	// 添加CORS中间件
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Unix(),
		})
	})

	// 开放路由：注册和登录不需要认证
	router.POST("/users/register", userHandler.Register)
	router.POST("/users/login", userHandler.Login)

	// 其余路由按配置决定是否启用Bearer认证
	api := router.Group("")
	if cfg.JWT.Enforce {
		api.Use(middleware.NewJWTAuth(&middleware.JWTConfig{Secret: cfg.JWT.Secret}))
	}
	{
		// 用户相关路由
		api.GET("/users", userHandler.List)
		api.GET("/users/active", userHandler.ListActive)
		api.GET("/users/:userId", userHandler.Get)
		api.POST("/users/follow", userHandler.Follow)
		api.POST("/users/:userId/follow/:followedUserId", userHandler.FollowByPath)
		api.POST("/users/:userId/activate", userHandler.Activate)
		api.POST("/users/:userId/deactivate", userHandler.Deactivate)
		api.PUT("/users/:userId", userHandler.Update)
		api.DELETE("/users/:userId", userHandler.Delete)

		// 帖子相关路由
		api.GET("/posts", postHandler.List)
		api.POST("/posts", postHandler.Create)
		api.PUT("/posts", postHandler.Edit)
		api.GET("/posts/:id", postHandler.Get)
		api.DELETE("/posts/:id", postHandler.Delete)
		api.GET("/posts/user/:userId", postHandler.ListByUser)
		api.POST("/posts/like", postHandler.Like)

		// 评论相关路由
		api.GET("/api/comments/post/:postId", commentHandler.ListForPost)
		api.POST("/api/comments/post/:postId", commentHandler.Add)
		api.PUT("/api/comments/:commentId", commentHandler.Edit)
		api.DELETE("/api/comments/:postId/:commentId", commentHandler.Delete)

		// 转发相关路由
		api.GET("/share", shareHandler.List)
		api.POST("/share", shareHandler.Create)
		api.DELETE("/share/:id", shareHandler.Delete)
		api.GET("/share/user/:userId", shareHandler.ListByUser)

		// 饮食计划路由
		api.GET("/mealPlans", mealPlanHandler.List)
		api.GET("/mealPlans/:mealPlanId", mealPlanHandler.Get)
		api.POST("/mealPlans/add", mealPlanHandler.Create)
		api.PUT("/mealPlans/update/:mealPlanId", mealPlanHandler.Update)
		api.DELETE("/mealPlans/:mealPlanId", mealPlanHandler.Delete)

		// 训练计划路由
		api.GET("/workoutPlans", workoutPlanHandler.List)
		api.GET("/workoutPlans/:id", workoutPlanHandler.Get)
		api.POST("/workoutPlans", workoutPlanHandler.Create)
		api.PUT("/workoutPlans/:id", workoutPlanHandler.Update)
		api.DELETE("/workoutPlans/:id", workoutPlanHandler.Delete)

		// 训练状态路由
		api.GET("/workoutStatus", workoutStatusHandler.List)
		api.GET("/workoutStatus/:statusId", workoutStatusHandler.Get)
		api.POST("/workoutStatus", workoutStatusHandler.Create)
		api.PUT("/workoutStatus/:statusId", workoutStatusHandler.Update)
		api.DELETE("/workoutStatus/:statusId", workoutStatusHandler.Delete)
	}

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 启动服务器
	go func() {
		logger.WithField("port", cfg.Server.Port).Info("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start HTTP server")
		}
	}()

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// 优雅关闭
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	logger.Info("Server exited")
}

func init() {
	// 创建必要的目录
	dirs := []string{"logs", "configs"}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Printf("Failed to create directory %s: %v", dir, err)
		}
	}

	// 创建默认配置文件（如果不存在）
	configPath := "configs/config.yaml"
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := createDefaultConfig(configPath); err != nil {
			log.Printf("Failed to create default config: %v", err)
		}
	}
}

func createDefaultConfig(path string) error {
	defaultConfig := `server:
  port: ":8080"
  mode: "debug"
  read_timeout: 30s
  write_timeout: 30s

database:
  host: "localhost"
  port: 5432
  user: "fituser"
  password: "fitpass"
  dbname: "fitconnect"
  sslmode: "disable"
  max_open_conns: 100
  max_idle_conns: 10

redis:
  host: "localhost"
  port: 6379
  password: ""
  db: 0
  pool_size: 100
  min_idle_conns: 10

kafka:
  brokers:
    - "localhost:9092"
  topics:
    user_events: "user-events"
    content_events: "content-events"
    fitness_events: "fitness-events"

jwt:
  secret: "your-secret-key-change-in-production"
  expire_time: 24h
  enforce: false

cache:
  user_view_ttl: 10m

logging:
  level: "info"`

	return os.WriteFile(path, []byte(defaultConfig), 0644)
}
