package http

import (
	"log/slog"
	"time"

	"github.com/gdugdh24/mentor-directory/internal/config"
	"github.com/gdugdh24/mentor-directory/internal/delivery/http/handler"
	"github.com/gdugdh24/mentor-directory/internal/delivery/http/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Router struct {
	directoryHandler  *handler.DirectoryHandler
	profileHandler    *handler.ProfileHandler
	webhookHandler    *handler.WebhookHandler
	membershipHandler *handler.MembershipHandler
	healthHandler     *handler.HealthHandler
	corsConfig        *config.CORSConfig
	log               *slog.Logger
}

func NewRouter(
	directoryHandler *handler.DirectoryHandler,
	profileHandler *handler.ProfileHandler,
	webhookHandler *handler.WebhookHandler,
	membershipHandler *handler.MembershipHandler,
	healthHandler *handler.HealthHandler,
	corsConfig *config.CORSConfig,
	log *slog.Logger,
) *Router {
	return &Router{
		directoryHandler:  directoryHandler,
		profileHandler:    profileHandler,
		webhookHandler:    webhookHandler,
		membershipHandler: membershipHandler,
		healthHandler:     healthHandler,
		corsConfig:        corsConfig,
		log:               log,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(r.log),
		cors.New(r.cors()),
	)

	// Health check (supports both GET and HEAD)
	router.GET("/health", r.healthHandler.Health)
	router.HEAD("/health", r.healthHandler.Health)
	router.GET("/ready", r.healthHandler.Ready)

	router.GET("/directory", r.directoryHandler.ListDirectory)
	router.PUT("/users/:id", r.profileHandler.UpdateProfile)
	router.POST("/webflow-webhook", r.webhookHandler.WebflowWebhook)
	router.POST("/memberstack/:id/update", r.membershipHandler.UpdateMember)

	return router
}

func (r *Router) cors() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "HEAD", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	origins := r.corsConfig.AllowedOrigins
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}
