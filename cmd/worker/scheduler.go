package main

import (
	"github.com/rs/zerolog/log"

	"lawfirm-backend/internal/config"
	"lawfirm-backend/internal/infrastructure/queue"
)

type asynqScheduler struct {
	*queue.Scheduler
}

// setupScheduler registers the periodic jobs and starts the scheduler
func setupScheduler(cfg *config.Config) (*asynqScheduler, error) {
	s := queue.NewScheduler(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

	if err := s.RegisterBlogRefresh(cfg.Queue.BlogRefreshSpec); err != nil {
		return nil, err
	}

	go func() {
		log.Info().Msg("[SCHEDULER] Starting")
		if err := s.Start(); err != nil {
			log.Fatal().Err(err).Msg("[SCHEDULER] Failed")
		}
	}()

	return &asynqScheduler{Scheduler: s}, nil
}
