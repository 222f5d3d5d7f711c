package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kedrick07/habit-tracker/internal/middleware"
	"github.com/kedrick07/habit-tracker/internal/service"
)

// SessionHandler exposes the caller's ephemeral session state.
type SessionHandler struct {
	sessions service.SessionService
	logger   zerolog.Logger
}

// NewSessionHandler creates a new SessionHandler instance.
func NewSessionHandler(sessions service.SessionService, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, logger: logger}
}

// NavigationRequest selects the active page.
type NavigationRequest struct {
	Page string `json:"page" binding:"required"`
}

// Get returns the logged-in flag, display name, and selected page.
func (h *SessionHandler) Get(c *gin.Context) {
	session, err := h.sessions.Get(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		RespondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SetNavigation updates the selected page.
func (h *SessionHandler) SetNavigation(c *gin.Context) {
	var req NavigationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.sessions.SetNavigation(c.Request.Context(), middleware.CurrentUserID(c), req.Page); err != nil {
		RespondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": req.Page})
}
