package service

import (
	"context"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawfirm-backend/internal/domains/setting/model"
	"lawfirm-backend/internal/domains/setting/repository"
	"lawfirm-backend/pkg/cache"
)

func newTestService() (ServiceInterface, *cache.Memory) {
	c := cache.NewMemory()
	return NewSettingService(repository.NewMemoryRepository(), c, time.Minute), c
}

func TestSettingService_GetDefault(t *testing.T) {
	svc, _ := newTestService()
	assert.Equal(t, "fallback", svc.Get(context.Background(), "missing", "fallback"))
	assert.Nil(t, svc.Get(context.Background(), "missing", nil))
}

func TestSettingService_BooleanRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	for _, v := range []bool{true, false} {
		_, err := svc.Set(ctx, "maintenance_mode", v, model.TypeBoolean, "general", nil)
		require.NoError(t, err)
		assert.Equal(t, v, svc.Get(ctx, "maintenance_mode", nil))
	}
}

func TestSettingService_JSONRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	hours := map[string]interface{}{
		"weekdays": "8:00 AM - 6:00 PM",
		"days":     []interface{}{"mon", "tue"},
	}
	_, err := svc.Set(ctx, "office_hours", hours, model.TypeJSON, "contact", nil)
	require.NoError(t, err)

	assert.Equal(t, hours, svc.Get(ctx, "office_hours", nil))
}

func TestSettingService_SetIsUpsert(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	first, err := svc.Set(ctx, "site_name", "Firm", model.TypeText, "", nil)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultGroup, first.Group)

	second, err := svc.Set(ctx, "site_name", "Firm & Partners", model.TypeText, "general", nil)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	groups, err := svc.Grouped(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Settings, 1)
	assert.Equal(t, "Firm & Partners", groups[0].Settings[0].Value)
}

func TestSettingService_SetRejectsUnknownType(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Set(context.Background(), "k", "v", model.Type("yaml"), "", nil)

	var serr *model.SettingError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, model.ErrCodeInvalidType, serr.Code)
}

func TestSettingService_SetInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	svc, c := newTestService()

	_, err := svc.Set(ctx, "phone", "111", model.TypeText, "contact", nil)
	require.NoError(t, err)

	values, err := svc.Values(ctx)
	require.NoError(t, err)
	assert.Equal(t, "111", values["phone"])
	assert.Equal(t, 1, c.Len())

	_, err = svc.Set(ctx, "phone", "222", model.TypeText, "contact", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())

	values, err = svc.Values(ctx)
	require.NoError(t, err)
	assert.Equal(t, "222", values["phone"])
}

func TestSettingService_BulkUpdate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	_, err := svc.Set(ctx, "site_name", "Old", model.TypeText, "general", nil)
	require.NoError(t, err)

	t.Run("updates existing keys only", func(t *testing.T) {
		n, err := svc.BulkUpdate(ctx, model.BulkUpdateRequest{Settings: map[string]string{
			"site_name": "New",
			"unknown":   "ignored",
		}})
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, "New", svc.Get(ctx, "site_name", nil))
		assert.Nil(t, svc.Get(ctx, "unknown", nil))
	})

	t.Run("empty value is rejected", func(t *testing.T) {
		_, err := svc.BulkUpdate(ctx, model.BulkUpdateRequest{Settings: map[string]string{"site_name": ""}})

		var verrs validation.Errors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs, "settings.site_name")
		assert.Equal(t, "New", svc.Get(ctx, "site_name", nil))
	})

	t.Run("missing settings is rejected", func(t *testing.T) {
		_, err := svc.BulkUpdate(ctx, model.BulkUpdateRequest{})
		var verrs validation.Errors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs, "settings")
	})
}
