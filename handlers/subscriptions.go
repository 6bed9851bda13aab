package handlers

import (
	"context"
	"net/http"

	"homefix/services/subscription"
	"homefix/utils"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	SubscriptionService subscription.SubscriptionService
}

// ListSubscriptionsHandler handles GET /api/users/:userId/subscriptions (owner or admin).
func (h *SubscriptionHandler) ListSubscriptionsHandler(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	userID := c.Param("userId")
	if userID != id.UserID && !id.IsAdmin() {
		utils.RespondError(c, utils.NewForbiddenError("not authorized to view these subscriptions"))
		return
	}

	ctx := c.Request.Context()
	plans, err := h.SubscriptionService.ListSubscriptions(ctx, userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	status, err := h.SubscriptionService.ActiveSubscription(ctx, userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribedPlans": plans, "subscription": status})
}

// SubscribeHandler handles POST /api/users/:userId/subscribe/:planId (owner).
func (h *SubscriptionHandler) SubscribeHandler(c *gin.Context) {
	h.toggle(c, h.SubscriptionService.Subscribe, "Subscribed successfully")
}

// UnsubscribeHandler handles POST /api/users/:userId/unsubscribe/:planId (owner).
func (h *SubscriptionHandler) UnsubscribeHandler(c *gin.Context) {
	h.toggle(c, h.SubscriptionService.Unsubscribe, "Unsubscribed successfully")
}

type planListChange func(ctx context.Context, userID, planID string) ([]string, error)

func (h *SubscriptionHandler) toggle(c *gin.Context, change planListChange, message string) {
	id, ok := caller(c)
	if !ok {
		return
	}
	if c.Param("userId") != id.UserID {
		utils.RespondError(c, utils.NewForbiddenError("you can only manage your own subscriptions"))
		return
	}
	plans, err := change(c.Request.Context(), id.UserID, c.Param("planId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "subscribedPlans": plans})
}
