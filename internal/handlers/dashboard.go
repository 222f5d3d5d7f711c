package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kedrick07/habit-tracker/internal/middleware"
	"github.com/kedrick07/habit-tracker/internal/models"
	"github.com/kedrick07/habit-tracker/internal/service"
)

// DashboardHandler serves the aggregate progress view.
type DashboardHandler struct {
	completionService service.CompletionService
	logger            zerolog.Logger
}

// NewDashboardHandler creates a new DashboardHandler instance.
func NewDashboardHandler(completionService service.CompletionService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{completionService: completionService, logger: logger}
}

// Summary returns total habits, today's completed count, habits with an
// active streak, and per-habit streaks. An optional ?date= parameter
// scopes the progress ratio to another day.
func (h *DashboardHandler) Summary(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	date := models.Today()
	if raw := c.Query("date"); raw != "" {
		parsed, err := models.ParseDate(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	summary, err := h.completionService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, h.logger, err)
		return
	}

	progress, err := h.completionService.Progress(c.Request.Context(), userID, date)
	if err != nil {
		RespondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":          summary,
		"progress":         progress,
		"progress_percent": progress.Percent(),
		"date":             models.FormatDate(date),
	})
}
