// Package handlers contains HTTP request handlers for the habit tracker.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kedrick07/habit-tracker/internal/service"
)

// RespondError writes a JSON error body with the given status.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// RespondServiceError maps service-layer errors onto HTTP statuses.
// Validation failures are 400, duplicate email 409, unknown habit 404,
// bad credentials 401; anything unrecognized is logged and returned as
// a 500 without leaking the cause.
func RespondServiceError(c *gin.Context, logger zerolog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrMissingField),
		errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrMissingName),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrUnknownPage):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrDuplicateEmail):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrUnknownEmail),
		errors.Is(err, service.ErrInvalidPassword):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrHabitNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		RespondError(c, http.StatusInternalServerError, "internal error")
	}
}
