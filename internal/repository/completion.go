package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kedrick07/habit-tracker/internal/models"
)

// CompletionRepository defines the interface for completion data
// operations. Dates handed to this layer are already normalized to UTC
// midnight.
type CompletionRepository interface {
	Upsert(ctx context.Context, completion *models.Completion) error
	FindByHabitAndDate(ctx context.Context, habitID int64, date time.Time) (*models.Completion, error)
	ListCompletedDates(ctx context.Context, habitID int64, onOrBefore time.Time, limit int) ([]time.Time, error)
	CountCompletedOn(ctx context.Context, userID int64, date time.Time) (int64, error)
}

type completionRepository struct {
	db *gorm.DB
}

// NewCompletionRepository creates a new CompletionRepository instance.
func NewCompletionRepository(db *gorm.DB) CompletionRepository {
	return &completionRepository{db: db}
}

// Upsert writes the completion state for one habit-day as a single
// INSERT ... ON CONFLICT DO UPDATE against the (habit_id, date) unique
// index. Concurrent check-ins for the same day cannot produce duplicate
// rows; the last write wins.
func (r *completionRepository) Upsert(ctx context.Context, completion *models.Completion) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "habit_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "note", "logged_at"}),
	}).Create(completion).Error
	if err != nil {
		return fmt.Errorf("failed to upsert completion for habit %d: %w", completion.HabitID, err)
	}
	return nil
}

func (r *completionRepository) FindByHabitAndDate(ctx context.Context, habitID int64, date time.Time) (*models.Completion, error) {
	var completion models.Completion
	err := r.db.WithContext(ctx).
		Where("habit_id = ? AND date = ?", habitID, date).
		First(&completion).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find completion for habit %d: %w", habitID, err)
	}
	return &completion, nil
}

// ListCompletedDates returns the dates with completed=true for a habit,
// newest first, starting at onOrBefore. Callers page through the result
// by passing the day before the last returned date.
func (r *completionRepository) ListCompletedDates(ctx context.Context, habitID int64, onOrBefore time.Time, limit int) ([]time.Time, error) {
	var dates []time.Time
	err := r.db.WithContext(ctx).
		Model(&models.Completion{}).
		Where("habit_id = ? AND completed = ? AND date <= ?", habitID, true, onOrBefore).
		Order("date DESC").
		Limit(limit).
		Pluck("date", &dates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list completed dates for habit %d: %w", habitID, err)
	}
	return dates, nil
}

func (r *completionRepository) CountCompletedOn(ctx context.Context, userID int64, date time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Completion{}).
		Where("user_id = ? AND date = ? AND completed = ?", userID, date, true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count completions for user %d: %w", userID, err)
	}
	return count, nil
}
