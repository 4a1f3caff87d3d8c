package api

import (
	"github.com/wegnite/saasTemplate/config"
	"github.com/wegnite/saasTemplate/internal/api/v1/history"
	"github.com/wegnite/saasTemplate/internal/api/v1/settings"
	"github.com/wegnite/saasTemplate/internal/api/v1/subscription"
	"github.com/wegnite/saasTemplate/internal/api/v1/tools"
	"github.com/wegnite/saasTemplate/internal/api/v1/usage"
	userRoutes "github.com/wegnite/saasTemplate/internal/api/v1/user"
	"github.com/wegnite/saasTemplate/internal/api/v1/webhooks"
	"github.com/wegnite/saasTemplate/internal/middleware"
	"github.com/wegnite/saasTemplate/internal/services"
	"github.com/wegnite/saasTemplate/internal/webhook"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// NewRouter assembles every service and handler against the injected
// persistence handles. Nothing in the tree reaches for a global.
func NewRouter(cfg *config.Config, db *gorm.DB, cache *redis.Client) (*gin.Engine, error) {
	verifier, err := webhook.NewVerifier(cfg.ClerkWebhookSecret)
	if err != nil {
		return nil, err
	}

	creditsService := services.NewCreditsService(db)
	userService := services.NewUserService(db, cache)
	settingsService := services.NewSettingsService(db)
	subscriptionService := services.NewSubscriptionService(db, creditsService, userService)
	usageService := services.NewUsageService(db)
	historyService := services.NewHistoryService(db)

	generator := services.NewMockGenerator(cfg.MockProcessingDelay)
	imageService := services.NewImageService(db, creditsService, generator)
	textService := services.NewTextService(db, creditsService, generator)
	audioService := services.NewAudioService(db, creditsService, generator)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	v1 := router.Group("/api/v1")
	{
		webhooks.RegisterRoutes(v1, webhooks.NewHandler(verifier, userService))

		authorized := v1.Group("/")
		authorized.Use(middleware.Identity(cfg.JWTSecret, userService))
		{
			userRoutes.RegisterRoutes(authorized, userRoutes.NewHandler(userService))
			settings.RegisterRoutes(authorized, settings.NewHandler(settingsService))
			subscription.RegisterRoutes(authorized, subscription.NewHandler(subscriptionService))
			tools.RegisterRoutes(authorized, tools.NewHandler(imageService, textService, audioService))
			usage.RegisterRoutes(authorized, usage.NewHandler(usageService))
			history.RegisterRoutes(authorized, history.NewHandler(historyService))
		}
	}

	return router, nil
}
