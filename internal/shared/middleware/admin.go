package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"lawfirm-backend/internal/shared/response"
	"lawfirm-backend/pkg/jwt"
)

const AdminSubjectKey = "admin_subject"

// AdminAuth gates the admin area behind a bearer token carrying the admin role.
// Issuing tokens (login, sessions) lives outside this service.
func AdminAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.ValidateAdminToken(strings.TrimSpace(parts[1]))
		if err != nil {
			log.Debug().Err(err).Str("request_id", c.GetString(RequestIDKey)).Msg("admin token rejected")
			if errors.Is(err, jwt.ErrNotAdmin) {
				response.Forbidden(c, "Access denied: admin role required")
			} else {
				response.Unauthorized(c, "invalid token")
			}
			c.Abort()
			return
		}

		c.Set(AdminSubjectKey, claims.Subject)
		c.Next()
	}
}
