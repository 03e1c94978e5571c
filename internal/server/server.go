package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/internal/config"
	"taskboard/internal/handler"
	"taskboard/internal/middleware"
	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/service"
	taskboardsync "taskboard/internal/sync"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine    *gin.Engine
	DB        *gorm.DB
	Config    *config.Config
	Refresher *taskboardsync.BadgeRefresher
}

func Init(cfg *config.Config) (*Server, error) {
	// Setup GORM
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Println("✅ Connected to database")

	if err := db.AutoMigrate(
		&model.User{},
		&model.Task{},
		&model.Feedback{},
		&model.Comment{},
		&model.CommentLike{},
		&model.Notification{},
	); err != nil {
		return nil, fmt.Errorf("❌ failed to migrate schema: %w", err)
	}

	// Setup Gin
	r := gin.Default()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewCommentLikeRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize services
	notificationService := service.NewNotificationService(notificationRepo)
	taskService := service.NewTaskService(taskRepo, notificationService)
	feedbackService := service.NewFeedbackService(feedbackRepo, taskRepo)
	commentService := service.NewCommentService(commentRepo, likeRepo, feedbackRepo)
	employeeService := service.NewEmployeeService(userRepo, taskRepo, feedbackRepo)

	refresher := taskboardsync.NewBadgeRefresher(userRepo, feedbackService, commentService, cfg.BadgeRefreshInterval)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userRepo)
	taskHandler := handler.NewTaskHandler(taskService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	commentHandler := handler.NewCommentHandler(commentService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	badgeHandler := handler.NewBadgeHandler(refresher)

	// Public routes
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		// Task routes
		authorized.POST("/tasks", taskHandler.Create)
		authorized.GET("/tasks", taskHandler.List)
		authorized.GET("/tasks/:id", taskHandler.GetByID)
		authorized.PUT("/tasks/:id", taskHandler.Update)
		authorized.POST("/tasks/:id/deadline", taskHandler.SetDeadline)
		authorized.DELETE("/tasks/:id", taskHandler.Delete)

		// Feedback routes
		authorized.POST("/feedback", feedbackHandler.Send)
		authorized.GET("/feedback/unread", feedbackHandler.ListUnread)
		authorized.POST("/feedback/:id/read", feedbackHandler.MarkRead)
		authorized.POST("/feedback/viewed", feedbackHandler.MarkViewed)

		// Comment routes
		authorized.POST("/feedback/:id/comments", commentHandler.Add)
		authorized.GET("/feedback/:id/comments", commentHandler.ListByFeedback)
		authorized.POST("/comments/:id/like", commentHandler.ToggleLike)
		authorized.GET("/unread-reply-tasks", commentHandler.UnreadReplyTasks)

		// Notification routes
		authorized.GET("/notifications", notificationHandler.List)
		authorized.POST("/notifications/:id/read", notificationHandler.MarkRead)

		// Badge summary (cached, periodically refreshed)
		authorized.GET("/badges", badgeHandler.Summary)

		// Employee routes
		authorized.DELETE("/employees/:id", employeeHandler.Delete)
	}

	return &Server{
		Engine:    r,
		DB:        db,
		Config:    cfg,
		Refresher: refresher,
	}, nil
}

func (s *Server) Run() {
	if err := s.Refresher.Start(); err != nil {
		log.Fatalf("❌ Failed to start badge refresher: %v", err)
	}

	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	s.Refresher.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
