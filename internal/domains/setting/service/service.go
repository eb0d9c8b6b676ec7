package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"lawfirm-backend/internal/domains/setting/model"
	"lawfirm-backend/internal/domains/setting/repository"
	"lawfirm-backend/internal/metrics"
	"lawfirm-backend/pkg/cache"
)

// CacheKey holds the full settings list
const CacheKey = "settings:all"

type settingService struct {
	repo  repository.Repository
	cache cache.Cache
	ttl   time.Duration
}

func NewSettingService(repo repository.Repository, c cache.Cache, ttl time.Duration) ServiceInterface {
	if c == nil {
		c = cache.Nop{}
	}
	return &settingService{repo: repo, cache: c, ttl: ttl}
}

// all reads the settings through the cache. Cache errors only cost a trip
// to the store.
func (s *settingService) all(ctx context.Context) ([]*model.Setting, error) {
	var cached []*model.Setting
	found, err := s.cache.Get(ctx, CacheKey, &cached)
	if err != nil {
		log.Warn().Err(err).Msg("[SETTINGS] cache read failed")
	}
	if found {
		metrics.CacheLookups.WithLabelValues("settings", "hit").Inc()
		return cached, nil
	}
	metrics.CacheLookups.WithLabelValues("settings", "miss").Inc()

	settings, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, CacheKey, settings, s.ttl); err != nil {
		log.Warn().Err(err).Msg("[SETTINGS] cache write failed")
	}
	return settings, nil
}

func (s *settingService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, CacheKey); err != nil {
		log.Warn().Err(err).Msg("[SETTINGS] cache invalidation failed")
	}
}

func (s *settingService) Get(ctx context.Context, key string, def interface{}) interface{} {
	settings, err := s.all(ctx)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("[SETTINGS] load failed, using default")
		return def
	}
	for _, st := range settings {
		if st.Key == key {
			return st.Decoded()
		}
	}
	return def
}

func (s *settingService) Set(
	ctx context.Context,
	key string,
	value interface{},
	t model.Type,
	group string,
	description *string,
) (*model.Setting, error) {
	if t == "" {
		t = model.TypeText
	}
	if !t.Valid() {
		return nil, model.NewInvalidTypeError(t)
	}
	if group == "" {
		group = model.DefaultGroup
	}

	raw, err := model.Encode(value, t)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	setting := &model.Setting{
		ID:          uuid.New(),
		Key:         key,
		Value:       raw,
		Type:        t,
		Group:       group,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Upsert(ctx, setting); err != nil {
		return nil, fmt.Errorf("failed to save setting: %w", err)
	}

	s.invalidate(ctx)
	return setting, nil
}

func (s *settingService) Values(ctx context.Context) (map[string]string, error) {
	settings, err := s.all(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return model.ValueMap(settings), nil
}

func (s *settingService) Grouped(ctx context.Context) ([]model.Group, error) {
	settings, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return model.GroupByName(settings), nil
}

func (s *settingService) BulkUpdate(ctx context.Context, req model.BulkUpdateRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	n, err := s.repo.UpdateValues(ctx, req.Settings)
	if err != nil {
		return 0, fmt.Errorf("failed to update settings: %w", err)
	}
	if skipped := len(req.Settings) - n; skipped > 0 {
		log.Debug().Int("skipped", skipped).Msg("[SETTINGS] unknown keys ignored")
	}

	s.invalidate(ctx)
	return n, nil
}
