package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sahilm/fuzzy"

	"meetinghours/internal/meetings"
	"meetinghours/internal/models"
	"meetinghours/internal/repository"
	"meetinghours/internal/utils"
)

// ReportRunner runs and stores a cohort report.
type ReportRunner interface {
	Run(ctx context.Context, start, end string, roster []models.RosterEntry) (*models.CohortReport, error)
}

// ReportReader reads stored reports.
type ReportReader interface {
	List(ctx context.Context, limit int) ([]*models.CohortReport, error)
	GetByID(ctx context.Context, id string) (*models.CohortReport, error)
}

type ReportHandler struct {
	runner     ReportRunner
	reader     ReportReader
	runTimeout time.Duration
}

func NewReportHandler(runner ReportRunner, reader ReportReader, runTimeout time.Duration) *ReportHandler {
	if runTimeout <= 0 {
		runTimeout = 2 * time.Minute
	}
	return &ReportHandler{
		runner:     runner,
		reader:     reader,
		runTimeout: runTimeout,
	}
}

// RunReport godoc
// @Summary Run a meeting-hours report
// @Description Measures every roster entry over the window, stores the report and returns it
// @Tags reports
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param payload body models.RunReportRequest true "Window and roster"
// @Success 201 {object} models.CohortReport
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /reports [post]
func (h *ReportHandler) RunReport(c *gin.Context) {
	var req models.RunReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.runTimeout)
	defer cancel()

	report, err := h.runner.Run(ctx, req.Start, req.End, req.Roster)
	if err != nil {
		if errors.Is(err, meetings.ErrInvalidWindow) || errors.Is(err, meetings.ErrEmptyRoster) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_request",
				Message: err.Error(),
			})
			return
		}
		log.Println("RunReport error:", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "report_failed",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, report)
}

// ListReports godoc
// @Summary List stored reports
// @Tags reports
// @Security ApiKeyAuth
// @Produce json
// @Param limit query int false "Maximum number of reports" default(20)
// @Success 200 {array} models.CohortReport
// @Failure 500 {object} models.ErrorResponse
// @Router /reports [get]
func (h *ReportHandler) ListReports(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	reports, err := h.reader.List(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to list reports",
		})
		return
	}

	c.JSON(http.StatusOK, reports)
}

// GetReport godoc
// @Summary Get a stored report
// @Tags reports
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} models.CohortReport
// @Failure 404 {object} models.ErrorResponse
// @Router /reports/{id} [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	report, ok := h.loadReport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report)
}

// SearchPeople godoc
// @Summary Fuzzy search people within a report
// @Description Matches the query against person and role, best match first. An empty query returns everyone in roster order.
// @Tags reports
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Report ID"
// @Param q query string false "Search query"
// @Success 200 {object} models.PersonSearchResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /reports/{id}/people [get]
func (h *ReportHandler) SearchPeople(c *gin.Context) {
	report, ok := h.loadReport(c)
	if !ok {
		return
	}

	query := c.Query("q")
	c.JSON(http.StatusOK, models.PersonSearchResponse{
		Query:   query,
		Results: searchPeople(report.People, query),
	})
}

func (h *ReportHandler) loadReport(c *gin.Context) (*models.CohortReport, bool) {
	report, err := h.reader.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrReportNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Report not found",
		})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to load report",
		})
		return nil, false
	}
	return report, true
}

// personIndex adapts report rows to fuzzy.Source.
type personIndex []models.PersonResult

func (p personIndex) String(i int) string {
	return utils.SearchKey(p[i].Person + " " + p[i].Role)
}

func (p personIndex) Len() int { return len(p) }

func searchPeople(people []models.PersonResult, query string) []models.PersonResult {
	key := utils.SearchKey(query)
	if key == "" {
		return people
	}

	matches := fuzzy.FindFrom(key, personIndex(people))
	out := make([]models.PersonResult, 0, len(matches))
	for _, m := range matches {
		out = append(out, people[m.Index])
	}
	return out
}
