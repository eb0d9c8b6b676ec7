package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"lawfirm-backend/pkg/container"
	"lawfirm-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	logger.Init(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))
	gin.SetMode(gin.ReleaseMode)

	ctx := context.Background()

	c, err := container.NewContainer(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("[CONTAINER] Failed to initialize")
	}
	defer c.Cleanup()

	health, err := startServices(ctx, c)
	if err != nil {
		log.Fatal().Err(err).Msg("[STARTUP] Health check failed")
	}

	srv := setupAsynqServer(c.Config, initializeHandlers(c))

	scheduler, err := setupScheduler(c.Config)
	if err != nil {
		log.Fatal().Err(err).Msg("[SCHEDULER] Failed to register jobs")
	}

	waitForShutdown(srv, scheduler)

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_ = health.Shutdown(shutdownCtx)
}

func waitForShutdown(srv *asynqServer, scheduler *asynqScheduler) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("[SHUTDOWN] Gracefully stopping")
	scheduler.Shutdown()
	srv.Shutdown()
}
