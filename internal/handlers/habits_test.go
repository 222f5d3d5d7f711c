package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kedrick07/habit-tracker/internal/models"
	"github.com/kedrick07/habit-tracker/internal/service"
)

// =============================================================================
// Mock HabitService
// =============================================================================

type mockHabitService struct {
	createFunc func(ctx context.Context, userID int64, name string, category models.Category, description string, startDate time.Time) (*models.Habit, error)
	listFunc   func(ctx context.Context, userID int64) ([]models.Habit, error)
	updateFunc func(ctx context.Context, habitID, userID int64, update service.HabitUpdate) (bool, error)
	deleteFunc func(ctx context.Context, habitID, userID int64) (bool, error)
}

func (m *mockHabitService) Create(ctx context.Context, userID int64, name string, category models.Category, description string, startDate time.Time) (*models.Habit, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, name, category, description, startDate)
	}
	return nil, errors.New("not implemented")
}

func (m *mockHabitService) List(ctx context.Context, userID int64) ([]models.Habit, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockHabitService) Update(ctx context.Context, habitID, userID int64, update service.HabitUpdate) (bool, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, habitID, userID, update)
	}
	return false, errors.New("not implemented")
}

func (m *mockHabitService) Delete(ctx context.Context, habitID, userID int64) (bool, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, habitID, userID)
	}
	return false, errors.New("not implemented")
}

func setupHabitRouter(t *testing.T, svc service.HabitService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewHabitHandler(svc, zerolog.Nop())
	router := gin.New()
	authed := router.Group("", asUser(1))
	authed.GET("/habits", handler.List)
	authed.POST("/habits", handler.Create)
	authed.PUT("/habits/:id", handler.Update)
	authed.DELETE("/habits/:id", handler.Delete)
	return router
}

// =============================================================================
// Habit CRUD Handler Tests
// =============================================================================

func TestCreateHabitHandler_Success(t *testing.T) {
	var gotUserID int64
	router := setupHabitRouter(t, &mockHabitService{
		createFunc: func(ctx context.Context, userID int64, name string, category models.Category, description string, startDate time.Time) (*models.Habit, error) {
			gotUserID = userID
			return &models.Habit{ID: 10, UserID: userID, Name: name, Category: category}, nil
		},
	})

	recorder := doRequest(t, router, http.MethodPost, "/habits", `{"name":"Drink Water","category":"Health"}`)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("Create status = %d, want 201: %s", recorder.Code, recorder.Body.String())
	}
	if gotUserID != 1 {
		t.Errorf("Create used user %d, want the authenticated user 1", gotUserID)
	}
}

func TestCreateHabitHandler_BadCategory(t *testing.T) {
	router := setupHabitRouter(t, &mockHabitService{
		createFunc: func(ctx context.Context, userID int64, name string, category models.Category, description string, startDate time.Time) (*models.Habit, error) {
			return nil, service.ErrInvalidCategory
		},
	})

	recorder := doRequest(t, router, http.MethodPost, "/habits", `{"name":"Nap","category":"Leisure"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Create status = %d, want 400", recorder.Code)
	}
}

func TestCreateHabitHandler_MissingName(t *testing.T) {
	router := setupHabitRouter(t, &mockHabitService{})

	recorder := doRequest(t, router, http.MethodPost, "/habits", `{"category":"Health"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Create status = %d, want 400", recorder.Code)
	}
}

func TestListHabitsHandler(t *testing.T) {
	router := setupHabitRouter(t, &mockHabitService{
		listFunc: func(ctx context.Context, userID int64) ([]models.Habit, error) {
			return []models.Habit{
				{ID: 10, Name: "Drink Water", Category: models.CategoryHealth},
				{ID: 11, Name: "Read", Category: models.CategoryLearning},
			}, nil
		},
	})

	recorder := doRequest(t, router, http.MethodGet, "/habits", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("List status = %d, want 200", recorder.Code)
	}

	var response struct {
		Habits []models.Habit `json:"habits"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(response.Habits) != 2 {
		t.Errorf("List returned %d habits, want 2", len(response.Habits))
	}
}

func TestUpdateHabitHandler_NotOwned(t *testing.T) {
	router := setupHabitRouter(t, &mockHabitService{
		updateFunc: func(ctx context.Context, habitID, userID int64, update service.HabitUpdate) (bool, error) {
			return false, service.ErrHabitNotFound
		},
	})

	recorder := doRequest(t, router, http.MethodPut, "/habits/10", `{"name":"Hydrate"}`)
	if recorder.Code != http.StatusNotFound {
		t.Errorf("Update status = %d, want 404", recorder.Code)
	}
}

func TestDeleteHabitHandler_Success(t *testing.T) {
	var deletedID int64
	router := setupHabitRouter(t, &mockHabitService{
		deleteFunc: func(ctx context.Context, habitID, userID int64) (bool, error) {
			deletedID = habitID
			return true, nil
		},
	})

	recorder := doRequest(t, router, http.MethodDelete, "/habits/10", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("Delete status = %d, want 200", recorder.Code)
	}
	if deletedID != 10 {
		t.Errorf("Delete targeted habit %d, want 10", deletedID)
	}
}

func TestDeleteHabitHandler_BadID(t *testing.T) {
	router := setupHabitRouter(t, &mockHabitService{})

	recorder := doRequest(t, router, http.MethodDelete, "/habits/abc", "")
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Delete status = %d, want 400", recorder.Code)
	}
}
