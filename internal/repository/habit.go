package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kedrick07/habit-tracker/internal/models"
)

// HabitRepository defines the interface for habit data operations. All
// mutations are scoped to the owning user.
type HabitRepository interface {
	Create(ctx context.Context, habit *models.Habit) error
	FindByID(ctx context.Context, id int64) (*models.Habit, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Habit, error)
	Update(ctx context.Context, id, userID int64, fields map[string]interface{}) (bool, error)
	DeleteCascade(ctx context.Context, id, userID int64) (bool, error)
}

type habitRepository struct {
	db *gorm.DB
}

// NewHabitRepository creates a new HabitRepository instance.
func NewHabitRepository(db *gorm.DB) HabitRepository {
	return &habitRepository{db: db}
}

func (r *habitRepository) Create(ctx context.Context, habit *models.Habit) error {
	if err := r.db.WithContext(ctx).Create(habit).Error; err != nil {
		return fmt.Errorf("failed to create habit: %w", err)
	}
	return nil
}

func (r *habitRepository) FindByID(ctx context.Context, id int64) (*models.Habit, error) {
	var habit models.Habit
	err := r.db.WithContext(ctx).First(&habit, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find habit by id %d: %w", id, err)
	}
	return &habit, nil
}

func (r *habitRepository) ListByUser(ctx context.Context, userID int64) ([]models.Habit, error) {
	var habits []models.Habit
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&habits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list habits for user %d: %w", userID, err)
	}
	return habits, nil
}

func (r *habitRepository) Update(ctx context.Context, id, userID int64, fields map[string]interface{}) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Habit{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if result.Error != nil {
		return false, fmt.Errorf("failed to update habit %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// DeleteCascade removes a habit and all of its completions in one
// transaction, so a failure mid-way never leaves orphaned rows.
func (r *habitRepository) DeleteCascade(ctx context.Context, id, userID int64) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", id).Delete(&models.Completion{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Habit{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete habit %d: %w", id, err)
	}
	return deleted, nil
}
