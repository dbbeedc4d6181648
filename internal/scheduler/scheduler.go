package scheduler

import (
	"fmt"

	"estate-portal/internal/config"
	"estate-portal/internal/database"
	"estate-portal/internal/search"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler runs the nightly search reindex job that rebuilds the
// Meilisearch index from the active listings in the database.
type Scheduler struct {
	cron      *cron.Cron
	db        *database.GormDB
	search    *search.SearchClient
	config    *config.Config
	log       *logrus.Logger
	isRunning bool
}

func NewScheduler(db *database.GormDB, sc *search.SearchClient, cfg *config.Config, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		db:     db,
		search: sc,
		config: cfg,
		log:    log,
	}
}

// Start registers the nightly job and starts the cron loop. A disabled
// config or a missing search client makes this a no-op.
func (s *Scheduler) Start() error {
	if s.search == nil || !s.config.Search.ReindexEnabled {
		s.log.Info("scheduler: nightly reindex disabled")
		return nil
	}

	cronSpec := s.parseDailyRunTime(s.config.Search.ReindexTime)

	_, err := s.cron.AddFunc(cronSpec, func() {
		if err := s.runReindex(); err != nil {
			s.log.WithError(err).Error("scheduler: nightly reindex failed")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.isRunning = true
	s.log.WithFields(logrus.Fields{
		"time": s.config.Search.ReindexTime,
		"cron": cronSpec,
	}).Info("scheduler: started")

	return nil
}

// Stop stops the cron loop.
func (s *Scheduler) Stop() {
	if s.isRunning {
		s.cron.Stop()
		s.isRunning = false
		s.log.Info("scheduler: stopped")
	}
}

func (s *Scheduler) runReindex() error {
	properties, err := s.db.GetAllActiveProperties()
	if err != nil {
		return err
	}

	if err := s.search.IndexProperties(properties); err != nil {
		return err
	}

	s.log.WithField("count", len(properties)).Info("scheduler: reindex completed")
	return nil
}

// RunNow executes the reindex immediately, used by the admin trigger.
func (s *Scheduler) RunNow() error {
	if s.search == nil {
		return fmt.Errorf("search is not configured")
	}
	s.log.Info("scheduler: manual reindex triggered")
	return s.runReindex()
}

// parseDailyRunTime converts "HH:MM" into a daily cron spec.
func (s *Scheduler) parseDailyRunTime(timeStr string) string {
	var hour, minute int
	n, _ := fmt.Sscanf(timeStr, "%d:%d", &hour, &minute)
	if n == 2 && hour >= 0 && hour < 24 && minute >= 0 && minute < 60 {
		return fmt.Sprintf("%d %d * * *", minute, hour)
	}

	s.log.WithField("value", timeStr).Warn("scheduler: bad reindex time, using 03:00")
	return "0 3 * * *"
}
