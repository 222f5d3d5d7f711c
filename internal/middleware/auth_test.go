package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kedrick07/habit-tracker/internal/service"
)

const testSecret = "this-is-a-test-secret-with-32-bytes!"

func setupAuthRouter(t *testing.T, cookieName string) (*gin.Engine, service.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := service.NewJWTService(testSecret, 15*time.Minute, time.Hour)
	router := gin.New()
	router.GET("/protected", Auth(jwtService, cookieName), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CurrentUserID(c)})
	})
	return router, jwtService
}

func TestAuth_MissingToken(t *testing.T) {
	router, _ := setupAuthRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", recorder.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	router, _ := setupAuthRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", recorder.Code)
	}
}

func TestAuth_ValidBearerToken(t *testing.T) {
	router, jwtService := setupAuthRouter(t, "")

	token, err := jwtService.GenerateAccessToken(42, "user@example.com", "Alice")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}
	if body := recorder.Body.String(); body != `{"user_id":42}` {
		t.Errorf("body = %s, want user_id 42", body)
	}
}

func TestAuth_CookieFallback(t *testing.T) {
	router, jwtService := setupAuthRouter(t, "access_token")

	token, err := jwtService.GenerateAccessToken(42, "user@example.com", "Alice")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", recorder.Code)
	}
}

func TestAuth_CookieIgnoredWhenDisabled(t *testing.T) {
	router, jwtService := setupAuthRouter(t, "")

	token, err := jwtService.GenerateAccessToken(42, "user@example.com", "Alice")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", recorder.Code)
	}
}
