package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/rs/zerolog/log"

	"lawfirm-backend/internal/metrics"
	"lawfirm-backend/internal/shared/query"
)

const cachePattern = "blog:*"

// indexKey hashes the free-text parts so keys stay short and glob-safe
func indexKey(f query.Filter, page int) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s\x00%s\x00%d", f.Category, f.Search, page)))
	return "blog:index:" + hex.EncodeToString(sum[:8])
}

func categoryKey(category string, page int) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s\x00%d", category, page)))
	return "blog:category:" + hex.EncodeToString(sum[:8])
}

// cached reports a hit. Cache failures count as misses.
func (s *articleService) cached(ctx context.Context, key string, dest interface{}) bool {
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("[BLOG] cache read failed")
		found = false
	}
	result := "miss"
	if found {
		result = "hit"
	}
	metrics.CacheLookups.WithLabelValues("blog", result).Inc()
	return found
}

func (s *articleService) store(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value, s.cfg.CacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("[BLOG] cache write failed")
	}
}

// invalidate runs after every article mutation
func (s *articleService) invalidate(ctx context.Context) {
	if err := s.RefreshCache(ctx); err != nil {
		log.Warn().Err(err).Msg("[BLOG] cache invalidation failed")
	}
}
