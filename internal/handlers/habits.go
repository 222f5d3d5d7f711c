package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kedrick07/habit-tracker/internal/middleware"
	"github.com/kedrick07/habit-tracker/internal/models"
	"github.com/kedrick07/habit-tracker/internal/service"
)

// HabitHandler handles habit CRUD requests.
type HabitHandler struct {
	habitService service.HabitService
	logger       zerolog.Logger
}

// NewHabitHandler creates a new HabitHandler instance.
func NewHabitHandler(habitService service.HabitService, logger zerolog.Logger) *HabitHandler {
	return &HabitHandler{habitService: habitService, logger: logger}
}

// CreateHabitRequest represents the habit creation payload.
type CreateHabitRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
}

// UpdateHabitRequest represents a partial habit update. Absent fields
// are left unchanged.
type UpdateHabitRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
}

// List returns all habits owned by the caller.
func (h *HabitHandler) List(c *gin.Context) {
	habits, err := h.habitService.List(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		RespondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"habits": habits})
}

// Create adds a habit for the caller.
func (h *HabitHandler) Create(c *gin.Context) {
	var req CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var startDate time.Time
	if req.StartDate != "" {
		parsed, err := models.ParseDate(req.StartDate)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
			return
		}
		startDate = parsed
	}

	habit, err := h.habitService.Create(
		c.Request.Context(),
		middleware.CurrentUserID(c),
		req.Name,
		models.Category(req.Category),
		req.Description,
		startDate,
	)
	if err != nil {
		RespondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, habit)
}

// Update applies a partial field merge to an owned habit.
func (h *HabitHandler) Update(c *gin.Context) {
	habitID, err := habitIDParam(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid habit id")
		return
	}

	var req UpdateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	update := service.HabitUpdate{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Category != nil {
		category := models.Category(*req.Category)
		update.Category = &category
	}
	if req.StartDate != nil {
		parsed, err := models.ParseDate(*req.StartDate)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
			return
		}
		update.StartDate = &parsed
	}

	changed, err := h.habitService.Update(c.Request.Context(), habitID, middleware.CurrentUserID(c), update)
	if err != nil {
		RespondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": changed})
}

// Delete removes an owned habit and all of its completions.
func (h *HabitHandler) Delete(c *gin.Context) {
	habitID, err := habitIDParam(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid habit id")
		return
	}

	deleted, err := h.habitService.Delete(c.Request.Context(), habitID, middleware.CurrentUserID(c))
	if err != nil {
		RespondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func habitIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
