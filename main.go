package main

import (
	"log"

	"github.com/wegnite/saasTemplate/config"
	"github.com/wegnite/saasTemplate/internal/api"
	"github.com/wegnite/saasTemplate/internal/database"
	"github.com/wegnite/saasTemplate/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	err = logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		logger.Log.Fatal("failed to connect database", zap.Error(err))
	}

	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("failed to migrate database", zap.Error(err))
	}

	// The cache is optional: without redis the service still works, user
	// lookups just hit the database every time.
	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache, err = database.ConnectRedis(cfg)
		if err != nil {
			logger.Log.Warn("redis unavailable, running without cache", zap.Error(err))
			cache = nil
		}
	}

	router, err := api.NewRouter(cfg, db, cache)
	if err != nil {
		logger.Log.Fatal("failed to create router", zap.Error(err))
	}

	if err := router.Run(":8080"); err != nil {
		logger.Log.Fatal("failed to run server", zap.Error(err))
	}
}
