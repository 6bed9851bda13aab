package handlers

import (
	"net/http"

	"homefix/services/user"
	"homefix/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	UserService user.UserService
}

// SignupHandler handles POST /api/auth/signup.
func (h *AuthHandler) SignupHandler(c *gin.Context) {
	var in user.RegisterInput
	if !bindJSON(c, &in) {
		return
	}
	resp, err := h.UserService.Register(c.Request.Context(), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.GetLogger().Info("User registered", zap.String("userId", resp.User.ID))
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !bindJSON(c, &in) {
		return
	}
	resp, err := h.UserService.Authenticate(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
