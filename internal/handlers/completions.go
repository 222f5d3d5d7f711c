package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kedrick07/habit-tracker/internal/middleware"
	"github.com/kedrick07/habit-tracker/internal/models"
	"github.com/kedrick07/habit-tracker/internal/service"
)

// CompletionHandler handles check-in and streak requests.
type CompletionHandler struct {
	completionService service.CompletionService
	logger            zerolog.Logger
}

// NewCompletionHandler creates a new CompletionHandler instance.
func NewCompletionHandler(completionService service.CompletionService, logger zerolog.Logger) *CompletionHandler {
	return &CompletionHandler{completionService: completionService, logger: logger}
}

// RecordCompletionRequest represents a check-in payload.
type RecordCompletionRequest struct {
	Completed bool   `json:"completed"`
	Note      string `json:"note"`
}

// Record upserts the completion state for a habit on one date. Calling
// it twice for the same date leaves a single record with the last value.
func (h *CompletionHandler) Record(c *gin.Context) {
	habitID, err := habitIDParam(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid habit id")
		return
	}
	date, err := models.ParseDate(c.Param("date"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	var req RecordCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	err = h.completionService.RecordCompletion(
		c.Request.Context(),
		middleware.CurrentUserID(c),
		habitID,
		date,
		req.Completed,
		req.Note,
	)
	if err != nil {
		RespondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"habit_id":  habitID,
		"date":      models.FormatDate(date),
		"completed": req.Completed,
	})
}

// Status reports whether the habit was completed on the given date.
func (h *CompletionHandler) Status(c *gin.Context) {
	habitID, err := habitIDParam(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid habit id")
		return
	}
	date, err := models.ParseDate(c.Param("date"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	done, err := h.completionService.IsCompletedOn(c.Request.Context(), middleware.CurrentUserID(c), habitID, date)
	if err != nil {
		RespondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"habit_id":  habitID,
		"date":      models.FormatDate(date),
		"completed": done,
	})
}

// Toggle flips today's completion state for the habit.
func (h *CompletionHandler) Toggle(c *gin.Context) {
	habitID, err := habitIDParam(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid habit id")
		return
	}

	done, err := h.completionService.Toggle(c.Request.Context(), middleware.CurrentUserID(c), habitID)
	if err != nil {
		RespondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"habit_id":  habitID,
		"completed": done,
	})
}

// Streak returns the current consecutive-day streak for the habit.
func (h *CompletionHandler) Streak(c *gin.Context) {
	habitID, err := habitIDParam(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid habit id")
		return
	}

	streak, err := h.completionService.CurrentStreak(c.Request.Context(), middleware.CurrentUserID(c), habitID)
	if err != nil {
		RespondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"habit_id": habitID,
		"streak":   streak,
	})
}
