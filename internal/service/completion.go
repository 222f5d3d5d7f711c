package service

import (
	"context"
	"errors"
	"time"

	"github.com/kedrick07/habit-tracker/internal/metrics"
	"github.com/kedrick07/habit-tracker/internal/models"
	"github.com/kedrick07/habit-tracker/internal/repository"
)

// streakPageSize bounds each store round-trip of the streak scan. The
// scan itself is unbounded, matching the walk-until-gap semantics.
const streakPageSize = 64

// DailyProgress is the completed/total habit ratio for one date.
type DailyProgress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// Percent returns the completion ratio as 0-100. Zero habits is 0%, not
// a division error.
func (p DailyProgress) Percent() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total) * 100
}

// HabitStatus pairs a habit with its streak and today's state for the
// dashboard.
type HabitStatus struct {
	Habit          models.Habit `json:"habit"`
	Streak         int          `json:"streak"`
	CompletedToday bool         `json:"completed_today"`
}

// DashboardSummary is the aggregate view shown after login.
type DashboardSummary struct {
	TotalHabits    int           `json:"total_habits"`
	CompletedToday int           `json:"completed_today"`
	ActiveStreaks  int           `json:"active_streaks"`
	Habits         []HabitStatus `json:"habits"`
}

// CompletionService records daily check-ins and computes streaks.
// Ownership is enforced here for every operation, not just at habit
// CRUD: a habit id that does not belong to the caller is reported as
// ErrHabitNotFound before any completion row is touched.
type CompletionService interface {
	RecordCompletion(ctx context.Context, userID, habitID int64, date time.Time, completed bool, note string) error
	IsCompletedOn(ctx context.Context, userID, habitID int64, date time.Time) (bool, error)
	Toggle(ctx context.Context, userID, habitID int64) (bool, error)
	CurrentStreak(ctx context.Context, userID, habitID int64) (int, error)
	Progress(ctx context.Context, userID int64, date time.Time) (DailyProgress, error)
	Dashboard(ctx context.Context, userID int64) (*DashboardSummary, error)
}

type completionService struct {
	habitRepo      repository.HabitRepository
	completionRepo repository.CompletionRepository
	now            func() time.Time
}

// NewCompletionService creates a new CompletionService instance.
func NewCompletionService(habitRepo repository.HabitRepository, completionRepo repository.CompletionRepository) CompletionService {
	return &completionService{
		habitRepo:      habitRepo,
		completionRepo: completionRepo,
		now:            time.Now,
	}
}

func (s *completionService) ownedHabit(ctx context.Context, userID, habitID int64) (*models.Habit, error) {
	habit, err := s.habitRepo.FindByID(ctx, habitID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrHabitNotFound
	}
	if err != nil {
		return nil, err
	}
	if habit.UserID != userID {
		return nil, ErrHabitNotFound
	}
	return habit, nil
}

// RecordCompletion upserts the completion state for one habit-day. The
// date is normalized before it reaches the store, and repeated calls for
// the same day leave a single row holding the last-written value.
func (s *completionService) RecordCompletion(ctx context.Context, userID, habitID int64, date time.Time, completed bool, note string) error {
	if _, err := s.ownedHabit(ctx, userID, habitID); err != nil {
		return err
	}

	completion := &models.Completion{
		HabitID:   habitID,
		UserID:    userID,
		Date:      models.NormalizeDate(date),
		Completed: completed,
		Note:      note,
		LoggedAt:  s.now().UTC(),
	}
	if err := s.completionRepo.Upsert(ctx, completion); err != nil {
		return err
	}

	metrics.RecordCheckin(completed)
	return nil
}

// IsCompletedOn reports whether the habit was completed on the given
// date. A missing record and an explicit completed=false both read as
// false; the two are not distinguishable through this query.
func (s *completionService) IsCompletedOn(ctx context.Context, userID, habitID int64, date time.Time) (bool, error) {
	if _, err := s.ownedHabit(ctx, userID, habitID); err != nil {
		return false, err
	}
	return s.isCompletedOn(ctx, habitID, date)
}

func (s *completionService) isCompletedOn(ctx context.Context, habitID int64, date time.Time) (bool, error) {
	completion, err := s.completionRepo.FindByHabitAndDate(ctx, habitID, models.NormalizeDate(date))
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return completion.Completed, nil
}

// Toggle flips today's completion state for the habit and returns the
// new state.
func (s *completionService) Toggle(ctx context.Context, userID, habitID int64) (bool, error) {
	today := models.NormalizeDate(s.now())
	done, err := s.IsCompletedOn(ctx, userID, habitID, today)
	if err != nil {
		return false, err
	}
	if err := s.RecordCompletion(ctx, userID, habitID, today, !done, ""); err != nil {
		return false, err
	}
	return !done, nil
}

// CurrentStreak counts consecutive completed days backward from today.
// If today has no completed record the streak is 0 regardless of past
// history. Completed dates are fetched in descending pages and scanned
// in memory; the scan stops at the first gap, exactly as a day-by-day
// walk would.
func (s *completionService) CurrentStreak(ctx context.Context, userID, habitID int64) (int, error) {
	if _, err := s.ownedHabit(ctx, userID, habitID); err != nil {
		return 0, err
	}
	return s.currentStreak(ctx, habitID)
}

func (s *completionService) currentStreak(ctx context.Context, habitID int64) (int, error) {
	streak := 0
	expected := models.NormalizeDate(s.now())

	for {
		dates, err := s.completionRepo.ListCompletedDates(ctx, habitID, expected, streakPageSize)
		if err != nil {
			return 0, err
		}
		if len(dates) == 0 {
			return streak, nil
		}
		for _, date := range dates {
			if !models.NormalizeDate(date).Equal(expected) {
				return streak, nil
			}
			streak++
			expected = expected.AddDate(0, 0, -1)
		}
		if len(dates) < streakPageSize {
			return streak, nil
		}
	}
}

// Progress returns how many of the user's habits are completed on the
// given date. A user with zero habits gets (0, 0).
func (s *completionService) Progress(ctx context.Context, userID int64, date time.Time) (DailyProgress, error) {
	habits, err := s.habitRepo.ListByUser(ctx, userID)
	if err != nil {
		return DailyProgress{}, err
	}
	if len(habits) == 0 {
		return DailyProgress{}, nil
	}

	count, err := s.completionRepo.CountCompletedOn(ctx, userID, models.NormalizeDate(date))
	if err != nil {
		return DailyProgress{}, err
	}
	return DailyProgress{Completed: int(count), Total: len(habits)}, nil
}

// Dashboard assembles the post-login view: totals, today's progress, and
// the per-habit streaks.
func (s *completionService) Dashboard(ctx context.Context, userID int64) (*DashboardSummary, error) {
	habits, err := s.habitRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := models.NormalizeDate(s.now())
	summary := &DashboardSummary{
		TotalHabits: len(habits),
		Habits:      make([]HabitStatus, 0, len(habits)),
	}

	for _, habit := range habits {
		done, err := s.isCompletedOn(ctx, habit.ID, today)
		if err != nil {
			return nil, err
		}
		streak, err := s.currentStreak(ctx, habit.ID)
		if err != nil {
			return nil, err
		}

		if done {
			summary.CompletedToday++
		}
		if streak > 0 {
			summary.ActiveStreaks++
		}
		summary.Habits = append(summary.Habits, HabitStatus{
			Habit:          habit,
			Streak:         streak,
			CompletedToday: done,
		})
	}

	return summary, nil
}
