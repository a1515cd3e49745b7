package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"meetinghours/config"
	"meetinghours/internal/models"
	"meetinghours/internal/utils"
)

// AuthMiddleware requires a valid bearer access token and stores the
// caller's email under "email".
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "unauthorized",
				Message: "Missing bearer token",
			})
			return
		}

		claims, err := utils.ValidateToken(strings.TrimSpace(token), cfg.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "unauthorized",
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set("email", claims.Email)
		c.Next()
	}
}
