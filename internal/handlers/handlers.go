package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"forcefocus/api/internal/config"
	"forcefocus/api/internal/middleware"
	"forcefocus/api/internal/notify"
	"forcefocus/api/internal/repository"
)

type HandlerSet struct {
	log      zerolog.Logger
	cfg      *config.AppConfig
	db       *mongo.Database
	cache    *redis.Client
	users    *repository.UserRepository
	sessions *repository.SessionRepository
	events   *repository.EventRepository
	tasks    *repository.TaskRepository
	feedback *repository.FeedbackRepository
	jobs     *repository.JobLogRepository
	notifier *notify.Notifier
}

func NewHandlerSet(log zerolog.Logger, db *mongo.Database, cache *redis.Client, cfg *config.AppConfig) HandlerSet {
	notifier := notify.NewNotifier(cache, repository.NewNotificationLogRepository(db), cfg.Redis.NotificationStream, log)

	return HandlerSet{
		log:      log,
		cfg:      cfg,
		db:       db,
		cache:    cache,
		users:    repository.NewUserRepository(db),
		sessions: repository.NewSessionRepository(db),
		events:   repository.NewEventRepository(db),
		tasks:    repository.NewTaskRepository(db),
		feedback: repository.NewFeedbackRepository(db),
		jobs:     repository.NewJobLogRepository(db),
		notifier: notifier,
	}
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	v1 := router.Group("/v1")
	v1.Use(middleware.Auth(h.cfg, h.users))
	{
		sessions := v1.Group("/sessions")
		sessions.POST("/start", h.StartSession)
		sessions.GET("", h.ListSessions)
		sessions.GET("/current", h.CurrentSession)
		sessions.GET("/:sessionId", h.GetSession)
		sessions.PUT("/:sessionId", h.UpdateSession)

		events := v1.Group("/events")
		events.POST("", h.CreateEvent)
		events.GET("", h.ListEvents)
		events.GET("/:eventId", h.GetEvent)

		tasks := v1.Group("/tasks")
		tasks.POST("", h.CreateTask)
		tasks.GET("", h.ListTasks)
		tasks.GET("/:taskId", h.GetTask)
		tasks.PUT("/:taskId", h.UpdateTask)
		tasks.DELETE("/:taskId", h.DeleteTask)

		feedback := v1.Group("/feedback")
		feedback.POST("", h.CreateFeedback)
		feedback.GET("", h.ListFeedback)
		feedback.GET("/:feedbackId", h.GetFeedback)
		feedback.DELETE("/:feedbackId", h.DeleteFeedback)

		me := v1.Group("/users/me")
		me.GET("", h.Me)
		me.PATCH("/settings", h.UpdateMySettings)
		me.POST("/fcm-tokens", h.AddMyFCMToken)
		me.DELETE("/fcm-tokens", h.RemoveMyFCMToken)
		me.POST("/blocked-apps", h.AddMyBlockedApp)
		me.DELETE("/blocked-apps", h.RemoveMyBlockedApp)

		admin := v1.Group("/admin")
		admin.Use(middleware.RequireAdmin(h.cfg.Admin.Emails))
		admin.POST("/ml/train", h.TriggerMLTrain)
		admin.GET("/jobs/:jobId", h.GetJob)
	}
}
