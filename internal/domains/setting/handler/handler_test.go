package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawfirm-backend/internal/domains/setting/model"
	"lawfirm-backend/internal/domains/setting/repository"
	"lawfirm-backend/internal/domains/setting/service"
	"lawfirm-backend/internal/shared/flash"
	"lawfirm-backend/pkg/cache"
)

func setupRouter(t *testing.T) (*gin.Engine, service.ServiceInterface) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := service.NewSettingService(repository.NewMemoryRepository(), cache.NewMemory(), time.Minute)
	_, err := svc.Set(context.Background(), "site_name", "Law Office", model.TypeText, "general", nil)
	require.NoError(t, err)
	_, err = svc.Set(context.Background(), "phone", "+63 2 1234", model.TypeText, "contact", nil)
	require.NoError(t, err)

	h := NewSettingHandler(svc)
	r := gin.New()
	r.Use(flash.Middleware())
	r.GET("/admin/settings", h.Index)
	r.POST("/admin/settings", h.Update)
	return r, svc
}

func TestSettingHandler_Index(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/settings", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data struct {
			Groups []model.Group `json:"groups"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data.Groups, 2)
	assert.Equal(t, "contact", body.Data.Groups[0].Name)
}

func TestSettingHandler_UpdateForm(t *testing.T) {
	r, svc := setupRouter(t)

	form := url.Values{}
	form.Set("settings[site_name]", "New Name")
	req := httptest.NewRequest(http.MethodPost, "/admin/settings", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/settings", w.Header().Get("Location"))
	assert.Equal(t, "New Name", svc.Get(context.Background(), "site_name", nil))
}

func TestSettingHandler_UpdateJSONValidation(t *testing.T) {
	r, svc := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/admin/settings",
		strings.NewReader(`{"settings":{"site_name":""}}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "settings.site_name")
	assert.Equal(t, "Law Office", svc.Get(context.Background(), "site_name", nil))
}
