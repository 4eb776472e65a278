package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"forcefocus/api/internal/config"
	"forcefocus/api/internal/models"
	"forcefocus/api/internal/security"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextUserID = "user_id"
	ContextUser   = "current_user"
)

// UserFinder is the slice of the user store the middleware needs.
type UserFinder interface {
	GetByID(ctx context.Context, userID string) (models.User, error)
}

// Auth resolves a Bearer access token to a stored user. Token issuance
// happens upstream in the OAuth layer; this is the only identity surface
// the service owns.
func Auth(cfg *config.AppConfig, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_token"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := security.ParseAccessToken(tokenStr, cfg.Security.JWTAccessSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_not_found"})
			return
		}

		// Records always reference the canonical string form of the owner id,
		// whatever representation the user document itself uses.
		c.Set(ContextUserID, user.IDString())
		c.Set(ContextUser, user)

		c.Next()
	}
}
