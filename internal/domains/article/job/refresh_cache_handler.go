package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	articleService "lawfirm-backend/internal/domains/article/service"
)

// RefreshCacheHandler drops cached blog pages so articles whose published_at
// has just passed show up without waiting for the TTL
type RefreshCacheHandler struct {
	articleService articleService.ServiceInterface
}

func NewRefreshCacheHandler(articleService articleService.ServiceInterface) *RefreshCacheHandler {
	return &RefreshCacheHandler{
		articleService: articleService,
	}
}

func (h *RefreshCacheHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	if err := h.articleService.RefreshCache(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to refresh blog cache")
		return fmt.Errorf("refresh blog cache: %w", err)
	}

	log.Debug().Msg("Blog cache refreshed")
	return nil
}
