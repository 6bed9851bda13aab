package middleware

import (
	"homefix/models"
	"homefix/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequireRoles rejects callers whose role is not listed. It must run after Authenticate.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := Identity(c)
		if !ok {
			utils.RespondError(c, utils.NewUnauthorizedError("authentication required"))
			return
		}
		if !id.HasRole(roles...) {
			utils.GetLogger().Debug("Role check failed",
				zap.String("userId", id.UserID),
				zap.String("role", string(id.Role)),
				zap.String("path", c.FullPath()))
			utils.RespondError(c, utils.NewForbiddenError("insufficient permissions"))
			return
		}
		c.Next()
	}
}
