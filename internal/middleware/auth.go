package middleware

import (
	"net/http"
	"strings"

	"connecthub/internal/domain"
	"connecthub/internal/pkg/jwt"
	"connecthub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminCookieName is the session cookie for the admin console, deliberately
// separate from the ordinary bearer flow used by buyer/vendor clients.
const AdminCookieName = "adminToken"

// AuthRequired validates a Bearer token and stores user_id/role in the
// request context. This is the single read path for identity; handlers never
// parse tokens themselves.
func AuthRequired(j *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "Empty token")
			c.Abort()
			return
		}

		claims, err := j.ValidateToken(tokenStr)
		if err != nil || claims.Purpose != "" {
			response.Error(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// AdminAuthRequired reads the admin session from the adminToken cookie
// (falling back to a Bearer header for API clients) and requires the ADMIN
// role.
func AdminAuthRequired(j *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(AdminCookieName)
		if err != nil || tokenStr == "" {
			h := c.GetHeader("Authorization")
			if strings.HasPrefix(h, "Bearer ") {
				tokenStr = strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
			}
		}
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "Admin session required")
			c.Abort()
			return
		}

		claims, err := j.ValidateToken(tokenStr)
		if err != nil || claims.Purpose != "" {
			response.Error(c, http.StatusUnauthorized, "Invalid admin session")
			c.Abort()
			return
		}
		if claims.Role != "ADMIN" {
			response.Error(c, http.StatusForbidden, "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// UserID reads the authenticated user's id from the request context.
// Zero means the request never passed an auth middleware.
func UserID(c *gin.Context) int64 {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// UserRole reads the authenticated user's role from the request context.
func UserRole(c *gin.Context) domain.UserRole {
	if v, ok := c.Get("role"); ok {
		if role, ok := v.(string); ok {
			return domain.UserRole(role)
		}
	}
	return ""
}
