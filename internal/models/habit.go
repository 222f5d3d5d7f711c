package models

import "time"

// Category classifies a habit for filtering and dashboard grouping.
type Category string

const (
	CategoryHealth       Category = "Health"
	CategoryProductivity Category = "Productivity"
	CategoryFinance      Category = "Finance"
	CategoryLearning     Category = "Learning"
	CategoryFitness      Category = "Fitness"
	CategoryMindfulness  Category = "Mindfulness"
	CategoryOther        Category = "Other"
)

// Categories lists every valid habit category.
var Categories = []Category{
	CategoryHealth,
	CategoryProductivity,
	CategoryFinance,
	CategoryLearning,
	CategoryFitness,
	CategoryMindfulness,
	CategoryOther,
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Habit represents a user-defined recurring activity tracked daily.
type Habit struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	UserID      int64     `json:"user_id" gorm:"index;not null"`
	Name        string    `json:"name" gorm:"not null"`
	Category    Category  `json:"category" gorm:"not null"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date" gorm:"type:date"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the database table name for the Habit model.
func (Habit) TableName() string {
	return "habits"
}
