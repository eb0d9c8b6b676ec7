package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	infraCache "lawfirm-backend/internal/infrastructure/cache"
	"lawfirm-backend/pkg/container"
)

// HealthChecker performs startup health checks
type HealthChecker struct {
	redis *infraCache.RedisClient
}

// startServices verifies the worker's dependencies and exposes a liveness endpoint
func startServices(ctx context.Context, c *container.Container) (*http.Server, error) {
	log.Info().Str("service", serviceName).Msg("============ Worker starting ============")

	redis := c.Redis
	if redis == nil {
		// the API may run with the cache disabled; the worker still needs Redis
		redis = infraCache.NewRedisClient(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
		defer redis.Close()
	}

	checker := &HealthChecker{redis: redis}
	if err := checker.checkAll(ctx); err != nil {
		return nil, err
	}

	return startHealthCheckServer(c.Config.Queue.HealthAddr), nil
}

// checkAll runs all health checks
func (h *HealthChecker) checkAll(ctx context.Context) error {
	checks := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"Redis connection", h.checkRedis},
	}

	for _, check := range checks {
		if err := check.fn(ctx); err != nil {
			log.Error().Err(err).Str("check", check.name).Msg("[HEALTH] Failed")
			return fmt.Errorf("%s failed: %w", check.name, err)
		}
		log.Info().Str("check", check.name).Msg("[HEALTH] OK")
	}
	return nil
}

func (h *HealthChecker) checkRedis(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return h.redis.HealthCheck(ctx)
}

// startHealthCheckServer serves /health and /ready for the orchestrator
func startHealthCheckServer(addr string) *http.Server {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "service": serviceName})
	})
	router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "READY"})
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("[HEALTH] Starting health check server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("[HEALTH] Server failed")
		}
	}()
	return srv
}
