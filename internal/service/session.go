package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Navigation pages a session can select.
const (
	PageDashboard = "Dashboard"
	PageHabits    = "My Habits"
	PageCheckin   = "Check-in"
)

// ErrUnknownPage is returned when a navigation target is not a known page.
var ErrUnknownPage = errors.New("unknown navigation page")

var navigationPages = map[string]bool{
	PageDashboard: true,
	PageHabits:    true,
	PageCheckin:   true,
}

// Session is the per-user ephemeral state held between requests: who is
// logged in and which page they last selected. It lives in Redis, keyed
// by user, so any instance of the service can serve the next request.
type Session struct {
	LoggedIn bool   `json:"logged_in"`
	UserID   int64  `json:"user_id"`
	Name     string `json:"name"`
	Page     string `json:"page"`
}

// SessionService manages ephemeral session state.
type SessionService interface {
	Start(ctx context.Context, userID int64, name string) error
	Get(ctx context.Context, userID int64) (*Session, error)
	SetNavigation(ctx context.Context, userID int64, page string) error
	Clear(ctx context.Context, userID int64) error
}

type sessionService struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewSessionService creates a new SessionService instance. Sessions
// expire alongside the refresh token, so ttl should match the refresh
// expiry.
func NewSessionService(redisClient *redis.Client, ttl time.Duration) SessionService {
	return &sessionService{redis: redisClient, ttl: ttl}
}

// Start creates or resets the session hash for a user, landing them on
// the dashboard.
func (s *sessionService) Start(ctx context.Context, userID int64, name string) error {
	key := sessionKey(userID)
	if err := s.redis.HSet(ctx, key, "name", name, "page", PageDashboard).Err(); err != nil {
		return fmt.Errorf("failed to start session for user %d: %w", userID, err)
	}
	if err := s.redis.Expire(ctx, key, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session expiry for user %d: %w", userID, err)
	}
	return nil
}

func (s *sessionService) Get(ctx context.Context, userID int64) (*Session, error) {
	fields, err := s.redis.HGetAll(ctx, sessionKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read session for user %d: %w", userID, err)
	}
	if len(fields) == 0 {
		return &Session{LoggedIn: false}, nil
	}
	return &Session{
		LoggedIn: true,
		UserID:   userID,
		Name:     fields["name"],
		Page:     fields["page"],
	}, nil
}

func (s *sessionService) SetNavigation(ctx context.Context, userID int64, page string) error {
	if !navigationPages[page] {
		return ErrUnknownPage
	}
	if err := s.redis.HSet(ctx, sessionKey(userID), "page", page).Err(); err != nil {
		return fmt.Errorf("failed to set navigation for user %d: %w", userID, err)
	}
	return nil
}

// Clear deletes the whole session hash; every key goes at once on
// logout.
func (s *sessionService) Clear(ctx context.Context, userID int64) error {
	if err := s.redis.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear session for user %d: %w", userID, err)
	}
	return nil
}

func sessionKey(userID int64) string {
	return fmt.Sprintf("session:%d", userID)
}
