package controllers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shra1-honade/protein-calorie-tracker/config"
	"github.com/shra1-honade/protein-calorie-tracker/models"
	"github.com/shra1-honade/protein-calorie-tracker/services"
	"github.com/shra1-honade/protein-calorie-tracker/utils"
)

type AuthController struct {
	Google *services.GoogleService
	Users  *services.UserService
	Cfg    *config.Config
	Logger *zap.Logger
}

func NewAuthController(google *services.GoogleService, users *services.UserService, cfg *config.Config, logger *zap.Logger) *AuthController {
	return &AuthController{Google: google, Users: users, Cfg: cfg, Logger: logger}
}

// GET /auth/google/login
func (h *AuthController) GoogleLogin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"url": h.Google.LoginURL()})
}

// GET /auth/google/callback?code=
func (h *AuthController) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code"})
		return
	}

	identity, err := h.Google.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		h.Logger.Warn("google code exchange failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to authenticate with Google"})
		return
	}

	user, isNew, err := h.Users.UpsertFromGoogle(identity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
		return
	}

	token, err := utils.GenerateJWT(user.ID, []byte(h.Cfg.JWTSecret), h.Cfg.JWTExpiry())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	redirect := h.Cfg.FrontendURL + "/auth/callback?token=" + url.QueryEscape(token)
	if isNew {
		redirect += "&new_user=1"
	}
	c.Redirect(http.StatusFound, redirect)
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// PUT /auth/me/goals
func (h *AuthController) UpdateGoals(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var patch services.GoalPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Users.UpdateGoals(user, patch); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update goals"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// PUT /auth/me/profile
func (h *AuthController) UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var patch services.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Users.UpdateProfile(user, patch); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update profile"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// currentUser pulls the user row the auth middleware resolved.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("user")
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
