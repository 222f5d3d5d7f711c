package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kedrick07/habit-tracker/internal/service"
)

// AuthHandler handles signup, login, logout, and token refresh.
type AuthHandler struct {
	authService   service.AuthService
	cookies       *CookieHelper
	logger        zerolog.Logger
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewAuthHandler creates a new AuthHandler instance. cookies may be nil
// when cookie auth is disabled.
func NewAuthHandler(authService service.AuthService, cookies *CookieHelper, logger zerolog.Logger, accessExpiry, refreshExpiry time.Duration) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		cookies:       cookies,
		logger:        logger,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// SignupRequest represents the signup request payload.
type SignupRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents the token refresh request payload.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Signup godoc
// @Summary Register a new account
// @Description Create a user and log it in, returning the token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup fields"
// @Success 201 {object} service.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	response, err := h.authService.Signup(c.Request.Context(), req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		RespondServiceError(c, h.logger, err)
		return
	}

	h.setCookies(c, response)
	c.JSON(http.StatusCreated, response)
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and establish a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} service.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Info().Str("email", req.Email).Err(err).Msg("login rejected")
		RespondServiceError(c, h.logger, err)
		return
	}

	h.setCookies(c, response)
	c.JSON(http.StatusOK, response)
}

// Logout godoc
// @Summary Log out
// @Description Invalidate the refresh token and clear all session state
// @Tags auth
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := extractToken(c)
	if token == "" && h.cookies != nil {
		token = h.cookies.GetAccessToken(c)
	}
	if token == "" {
		RespondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		RespondError(c, http.StatusUnauthorized, "invalid token")
		return
	}

	if h.cookies != nil {
		h.cookies.ClearAuthCookies(c)
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

// Refresh godoc
// @Summary Refresh the token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} service.LoginResponse
// @Failure 401 {object} map[string]string
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	_ = c.ShouldBindJSON(&req)

	token := req.RefreshToken
	if token == "" && h.cookies != nil {
		token = h.cookies.GetRefreshToken(c)
	}
	if token == "" {
		RespondError(c, http.StatusBadRequest, "refresh token required")
		return
	}

	response, err := h.authService.RefreshToken(c.Request.Context(), token)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	h.setCookies(c, response)
	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) setCookies(c *gin.Context, response *service.LoginResponse) {
	if h.cookies == nil {
		return
	}
	h.cookies.SetAuthCookies(c, response.AccessToken, response.RefreshToken, h.accessExpiry, h.refreshExpiry)
}

func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(strings.Split(bearerToken, " ")) == 2 {
		return strings.Split(bearerToken, " ")[1]
	}
	return ""
}
