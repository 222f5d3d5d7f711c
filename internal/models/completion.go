package models

import "time"

// Completion records whether a habit was done on one calendar date.
// The (habit_id, date) pair is unique so repeated check-ins for the same
// day update a single row.
type Completion struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	HabitID   int64     `json:"habit_id" gorm:"index:idx_completions_habit_date,unique;not null"`
	UserID    int64     `json:"user_id" gorm:"index;not null"`
	Date      time.Time `json:"date" gorm:"index:idx_completions_habit_date,unique;type:date;not null"`
	Completed bool      `json:"completed"`
	Note      string    `json:"note"`
	LoggedAt  time.Time `json:"logged_at"`
}

// TableName returns the database table name for the Completion model.
func (Completion) TableName() string {
	return "completions"
}
