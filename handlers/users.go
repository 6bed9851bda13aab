package handlers

import (
	"net/http"

	"homefix/models"
	"homefix/services/user"
	"homefix/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	UserService user.UserService
}

// GetMeHandler handles GET /api/users/me.
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	u, err := h.UserService.GetProfile(c.Request.Context(), id.UserID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateMeHandler handles PUT /api/users/me.
func (h *UserHandler) UpdateMeHandler(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	var in user.ProfileInput
	if !bindJSON(c, &in) {
		return
	}
	u, err := h.UserService.UpdateProfile(c.Request.Context(), id.UserID, in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// ListUsersHandler handles GET /api/users (admin).
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.UserService.ListUsers(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateRoleHandler handles PUT /api/users/:userId/role (admin).
func (h *UserHandler) UpdateRoleHandler(c *gin.Context) {
	var in struct {
		Role models.Role `json:"role"`
	}
	if !bindJSON(c, &in) {
		return
	}
	u, err := h.UserService.UpdateRole(c.Request.Context(), c.Param("userId"), in.Role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
