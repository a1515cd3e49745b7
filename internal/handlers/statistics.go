package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"meetinghours/internal/models"
)

// TrendReader aggregates stored reports.
type TrendReader interface {
	GetRoleTrends(ctx context.Context, days int) ([]models.RoleTrendPoint, error)
}

type StatisticsHandler struct {
	repo TrendReader
}

func NewStatisticsHandler(repo TrendReader) *StatisticsHandler {
	return &StatisticsHandler{repo: repo}
}

// GetRoleStatistics godoc
// @Summary Meeting-hours trends per role
// @Description Averages the stored mean and median of each group across reports created in the period
// @Tags statistics
// @Security ApiKeyAuth
// @Param days query int false "Look-back period in days (1-365)" default(30)
// @Success 200 {object} models.RoleStatisticsResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /statistics/roles [get]
func (h *StatisticsHandler) GetRoleStatistics(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days < 1 || days > 365 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "days must be a number between 1 and 365",
		})
		return
	}

	roles, err := h.repo.GetRoleTrends(c.Request.Context(), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get role trends: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.RoleStatisticsResponse{
		Roles:  roles,
		Period: strconv.Itoa(days) + "d",
	})
}
