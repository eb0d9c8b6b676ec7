package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestExtractClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func(remote string, headers map[string]string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remote
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		c.Request = req
		return c
	}

	t.Run("first forwarded address", func(t *testing.T) {
		c := newCtx("10.0.0.1:1234", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"})
		assert.Equal(t, "203.0.113.7", ExtractClientIP(c))
	})

	t.Run("real ip when forwarded is garbage", func(t *testing.T) {
		c := newCtx("10.0.0.1:1234", map[string]string{"X-Forwarded-For": "nonsense", "X-Real-IP": "198.51.100.4"})
		assert.Equal(t, "198.51.100.4", ExtractClientIP(c))
	})

	t.Run("remote addr fallback", func(t *testing.T) {
		c := newCtx("192.0.2.9:5555", nil)
		assert.Equal(t, "192.0.2.9", ExtractClientIP(c))
	})

	t.Run("unparseable remote gives empty", func(t *testing.T) {
		c := newCtx("pipe", nil)
		assert.Equal(t, "", ExtractClientIP(c))
	})
}
