package handlers

import (
	"estate-portal/internal/config"
	"estate-portal/internal/database"
	"estate-portal/internal/ratelimit"
	"estate-portal/internal/scheduler"
	"estate-portal/internal/search"
	"estate-portal/internal/storage"

	"github.com/sirupsen/logrus"
)

// Handler carries the shared dependencies of every route handler.
// The search client and scheduler may be nil when Meilisearch is not
// configured; routes that need them respond 503 in that case.
type Handler struct {
	db        *database.GormDB
	search    *search.SearchClient
	store     *storage.MediaStore
	limiter   *ratelimit.Limiter
	scheduler *scheduler.Scheduler
	config    *config.Config
	log       *logrus.Logger
}

func NewHandler(
	db *database.GormDB,
	sc *search.SearchClient,
	store *storage.MediaStore,
	limiter *ratelimit.Limiter,
	sched *scheduler.Scheduler,
	cfg *config.Config,
	log *logrus.Logger,
) *Handler {
	return &Handler{
		db:        db,
		search:    sc,
		store:     store,
		limiter:   limiter,
		scheduler: sched,
		config:    cfg,
		log:       log,
	}
}
