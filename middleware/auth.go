package middleware

import (
	"context"
	"strings"

	"homefix/models"
	"homefix/utils"

	"github.com/gin-gonic/gin"
)

// TokenResolver turns a bearer token into the caller's identity.
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (models.Identity, error)
}

// Authenticate requires a valid bearer token and stores the caller's identity in the context.
func Authenticate(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, utils.NewUnauthorizedError("missing or invalid Authorization header"))
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			utils.RespondError(c, utils.NewUnauthorizedError("missing or invalid Authorization header"))
			return
		}

		id, err := resolver.ResolveToken(c.Request.Context(), tokenString)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		c.Set(utils.IdentityContextKey, id)
		c.Next()
	}
}

// Identity returns the caller stored by Authenticate.
func Identity(c *gin.Context) (models.Identity, bool) {
	v, ok := c.Get(utils.IdentityContextKey)
	if !ok {
		return models.Identity{}, false
	}
	id, ok := v.(models.Identity)
	return id, ok
}
