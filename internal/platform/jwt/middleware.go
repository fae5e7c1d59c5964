package jwtmw

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskflow_backend/internal/feature/auth/domain/entity"
)

// ContextUser is the gin context key under which the authenticated user is stored.
const ContextUser = "authUser"

// UserResolver resolves a verified user ID to a known account.
// Following Go convention: the interface is defined by the consumer (middleware),
// not the provider (auth adapters).
type UserResolver interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// AuthRequired returns a gin middleware that validates the bearer token and
// resolves it to a known user before any protected handler runs.
// The resolved user is attached to the gin context; handlers read it once and
// pass the owner ID into usecases as an explicit argument.
func AuthRequired(verifier *Verifier, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		userID, err := verifier.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// トークンが既知のユーザーに解決できない場合も401で打ち切る
		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by AuthRequired.
// The boolean is false when the middleware did not run for this request.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}
