package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddr, password string, db int) *Scheduler {
	return &Scheduler{
		scheduler: asynq.NewScheduler(
			asynq.RedisClientOpt{Addr: redisAddr, Password: password, DB: db},
			&asynq.SchedulerOpts{
				Location: time.UTC,
				LogLevel: asynq.WarnLevel,
			},
		),
	}
}

// RegisterBlogRefresh makes future-dated articles appear once published_at
// passes, by periodically dropping the cached blog pages.
func (s *Scheduler) RegisterBlogRefresh(cronSpec string) error {
	payload, err := json.Marshal(RefreshBlogCachePayload{})
	if err != nil {
		return err
	}

	entryID, err := s.scheduler.Register(
		cronSpec,
		asynq.NewTask(TypeRefreshBlogCache, payload),
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(1),
		asynq.Timeout(time.Minute),
	)
	if err != nil {
		return fmt.Errorf("register %s: %w", TypeRefreshBlogCache, err)
	}

	log.Info().Str("entry_id", entryID).Str("spec", cronSpec).Msg("[SCHEDULER] registered blog cache refresh")
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Start()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
