package main

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"lawfirm-backend/internal/config"
)

// asynqServer wraps asynq.Server so main can stop it alongside the scheduler
type asynqServer struct {
	*asynq.Server
}

// setupAsynqServer creates the server and starts processing in the background
func setupAsynqServer(cfg *config.Config, handlers *HandlerRegistry) *asynqServer {
	mux := asynq.NewServeMux()
	handlers.RegisterHandlers(mux)

	srv := asynq.NewServer(
		redisOpt(cfg.Redis),
		asynq.Config{
			Queues:      queuePriorities,
			Concurrency: cfg.Queue.Concurrency,
			LogLevel:    asynq.WarnLevel,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).Msg("[WORKER] Task failed")
			}),
		},
	)

	go func() {
		log.Info().Int("concurrency", cfg.Queue.Concurrency).Msg("[WORKER] Starting")
		if err := srv.Run(mux); err != nil {
			log.Fatal().Err(err).Msg("[WORKER] Failed")
		}
	}()

	return &asynqServer{Server: srv}
}

// Shutdown waits for in-flight tasks (bounded by asynq's ShutdownTimeout)
func (s *asynqServer) Shutdown() {
	log.Info().Msg("[WORKER] Shutting down")
	s.Server.Shutdown()
	log.Info().Msg("[WORKER] Stopped")
}
