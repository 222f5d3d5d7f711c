package service

import (
	"context"
	"errors"
	"time"

	"github.com/kedrick07/habit-tracker/internal/models"
	"github.com/kedrick07/habit-tracker/internal/repository"
)

var (
	ErrHabitNotFound   = errors.New("habit not found or not owned by user")
	ErrMissingName     = errors.New("habit name is required")
	ErrInvalidCategory = errors.New("invalid habit category")
)

// HabitUpdate carries a partial field merge for a habit. Nil fields are
// left untouched.
type HabitUpdate struct {
	Name        *string
	Category    *models.Category
	Description *string
	StartDate   *time.Time
}

// HabitService manages habit CRUD scoped to the owning user.
type HabitService interface {
	Create(ctx context.Context, userID int64, name string, category models.Category, description string, startDate time.Time) (*models.Habit, error)
	List(ctx context.Context, userID int64) ([]models.Habit, error)
	Update(ctx context.Context, habitID, userID int64, update HabitUpdate) (bool, error)
	Delete(ctx context.Context, habitID, userID int64) (bool, error)
}

type habitService struct {
	habitRepo repository.HabitRepository
}

// NewHabitService creates a new HabitService instance.
func NewHabitService(habitRepo repository.HabitRepository) HabitService {
	return &habitService{habitRepo: habitRepo}
}

func (s *habitService) Create(ctx context.Context, userID int64, name string, category models.Category, description string, startDate time.Time) (*models.Habit, error) {
	if name == "" {
		return nil, ErrMissingName
	}
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}
	if startDate.IsZero() {
		startDate = models.Today()
	}

	habit := &models.Habit{
		UserID:      userID,
		Name:        name,
		Category:    category,
		Description: description,
		StartDate:   models.NormalizeDate(startDate),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.habitRepo.Create(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

func (s *habitService) List(ctx context.Context, userID int64) ([]models.Habit, error) {
	return s.habitRepo.ListByUser(ctx, userID)
}

// Update applies a partial merge only if the habit belongs to userID and
// reports whether a row actually changed.
func (s *habitService) Update(ctx context.Context, habitID, userID int64, update HabitUpdate) (bool, error) {
	fields := map[string]interface{}{}
	if update.Name != nil {
		if *update.Name == "" {
			return false, ErrMissingName
		}
		fields["name"] = *update.Name
	}
	if update.Category != nil {
		if !update.Category.Valid() {
			return false, ErrInvalidCategory
		}
		fields["category"] = *update.Category
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.StartDate != nil {
		fields["start_date"] = models.NormalizeDate(*update.StartDate)
	}
	if len(fields) == 0 {
		return false, nil
	}

	changed, err := s.habitRepo.Update(ctx, habitID, userID, fields)
	if err != nil {
		return false, err
	}
	if !changed {
		return false, ErrHabitNotFound
	}
	return true, nil
}

// Delete cascades: the habit's completions and the habit itself go in
// one transaction, only when owned by userID.
func (s *habitService) Delete(ctx context.Context, habitID, userID int64) (bool, error) {
	deleted, err := s.habitRepo.DeleteCascade(ctx, habitID, userID)
	if err != nil {
		return false, err
	}
	if !deleted {
		return false, ErrHabitNotFound
	}
	return true, nil
}
