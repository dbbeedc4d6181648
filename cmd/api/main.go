package main

import (
	"net/http"
	"os"
	"time"

	"estate-portal/internal/config"
	"estate-portal/internal/database"
	"estate-portal/internal/handlers"
	"estate-portal/internal/ratelimit"
	"estate-portal/internal/scheduler"
	"estate-portal/internal/search"
	"estate-portal/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	configPath := getEnv("CONFIG_PATH", "config/config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logrus.WithError(err).WithField("path", configPath).Warn("failed to load config, using defaults")
		cfg = config.DefaultConfig()
	}

	log := newLogger(cfg.Logging)
	log.WithField("path", configPath).Info("configuration loaded")

	db, err := database.New(cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()

	if err := db.InitSchema(); err != nil {
		log.WithError(err).Fatal("failed to initialize schema")
	}

	store, err := storage.NewMediaStore(cfg.Media.Root)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize media store")
	}

	var searchClient *search.SearchClient
	meilisearchHost := getEnvOrConfig(cfg.Search.Meilisearch.Host, "MEILISEARCH_HOST", "")
	if meilisearchHost != "" {
		meilisearchKey := getEnvOrConfig(cfg.Search.Meilisearch.APIKey, "MEILISEARCH_KEY", "")
		searchClient = search.NewSearchClient(meilisearchHost, meilisearchKey)
		if err := searchClient.InitIndex(); err != nil {
			log.WithError(err).Warn("failed to initialize search index")
		}
	} else {
		log.Info("meilisearch not configured, search endpoint disabled")
	}

	limiter := ratelimit.NewLimiter(
		cfg.RateLimit.RequestsPerMinute,
		cfg.RateLimit.RequestsPerHour,
		cfg.RateLimit.Enabled,
	)
	log.WithFields(logrus.Fields{
		"per_minute": cfg.RateLimit.RequestsPerMinute,
		"per_hour":   cfg.RateLimit.RequestsPerHour,
		"enabled":    cfg.RateLimit.Enabled,
	}).Info("rate limiter initialized")

	sched := scheduler.NewScheduler(db, searchClient, cfg, log)
	if err := sched.Start(); err != nil {
		log.WithError(err).Warn("failed to start scheduler")
	}
	defer sched.Stop()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Format(time.RFC3339)})
	})
	r.Static(cfg.Media.BaseURL, cfg.Media.Root)

	h := handlers.NewHandler(db, searchClient, store, limiter, sched, cfg, log)
	h.RegisterRoutes(r)

	port := getEnvOrConfig(cfg.Server.Port, "PORT", "8080")
	log.WithField("port", port).Info("starting server")
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func newLogger(cfg config.LoggingConfig) *logrus.Logger {
	log := logrus.New()
	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	if level, err := logrus.ParseLevel(cfg.Level); err == nil {
		log.SetLevel(level)
	}
	return log
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrConfig returns the config value if set, otherwise the
// environment variable, then the default.
func getEnvOrConfig(configValue, envKey, defaultValue string) string {
	if configValue != "" {
		return configValue
	}
	return getEnv(envKey, defaultValue)
}
