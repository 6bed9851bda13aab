package handlers

import (
	"net/http"
	"strconv"

	"homefix/services/notification"
	"homefix/utils"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	NotificationService notification.NotificationService
}

// ListNotificationsHandler handles GET /api/notifications?limit=N.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	limit := notification.DefaultListLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			utils.RespondError(c, utils.NewValidationError("limit must be a positive integer"))
			return
		}
		limit = n
	}
	list, err := h.NotificationService.List(c.Request.Context(), id.UserID, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *NotificationHandler) UnreadCountHandler(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	n, err := h.NotificationService.UnreadCount(c.Request.Context(), id.UserID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	if err := h.NotificationService.MarkRead(c.Request.Context(), c.Param("id"), id.UserID); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

func (h *NotificationHandler) MarkAllReadHandler(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	n, err := h.NotificationService.MarkAllRead(c.Request.Context(), id.UserID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read", "updated": n})
}

func (h *NotificationHandler) DeleteNotificationHandler(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	if err := h.NotificationService.Delete(c.Request.Context(), c.Param("id"), id.UserID); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted"})
}

// BroadcastHandler handles POST /api/notifications/broadcast (admin).
func (h *NotificationHandler) BroadcastHandler(c *gin.Context) {
	var in notification.BroadcastInput
	if !bindJSON(c, &in) {
		return
	}
	n, err := h.NotificationService.Broadcast(c.Request.Context(), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Broadcast sent", "recipients": n})
}
