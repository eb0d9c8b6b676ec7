package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"lawfirm-backend/internal/shared/utils"
)

type ctxKey string

const (
	ClientIPKey           = "client_ip"
	clientIPCtxKey ctxKey = "client_ip"
)

// ClientIPMiddleware resolves the caller's IP once and stores it on both the
// gin context and the request context so services can read it.
func ClientIPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := utils.ExtractClientIP(c)

		c.Set(ClientIPKey, clientIP)
		ctx := context.WithValue(c.Request.Context(), clientIPCtxKey, clientIP)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetClientIP returns the IP stored by ClientIPMiddleware, falling back to gin's
func GetClientIP(c *gin.Context) string {
	if ip := c.GetString(ClientIPKey); ip != "" {
		return ip
	}
	return c.ClientIP()
}

// GetClientIPFromContext returns "" when the middleware did not run
func GetClientIPFromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPCtxKey).(string); ok {
		return ip
	}
	return ""
}
