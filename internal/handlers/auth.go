package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"meetinghours/config"
	"meetinghours/internal/models"
	"meetinghours/internal/utils"
)

type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// Login godoc
// @Summary Log in as the dashboard admin
// @Description Checks the admin email and password and returns a JWT access token
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Admin credentials"
// @Success 200 {object} models.AuthResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	if h.cfg.AdminEmail == "" || !strings.EqualFold(req.Email, h.cfg.AdminEmail) ||
		!utils.CheckPassword(h.cfg.AdminPasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Invalid email or password",
		})
		return
	}

	accessToken, err := utils.GenerateAccessToken(h.cfg.AdminEmail, h.cfg.JWTSecret, h.cfg.JWTAccessExpiration)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "token_generation_failed",
			Message: "Failed to generate access token",
		})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		AccessToken: accessToken,
		ExpiresIn:   int64(h.cfg.JWTAccessExpiration.Seconds()),
	})
}

// GetMe godoc
// @Summary Current session
// @Tags auth
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) GetMe(c *gin.Context) {
	email, exists := c.Get("email")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": email})
}
