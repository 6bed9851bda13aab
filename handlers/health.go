package handlers

import (
	"net/http"

	"homefix/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

// CheckHandler reports the last dependency probe. Mongo being down is fatal for readiness.
func (h *HealthHandler) CheckHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
