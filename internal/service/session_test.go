package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

func setupTestSessions(t *testing.T) SessionService {
	t.Helper()
	client, _ := setupTestRedis(t)
	return NewSessionService(client, time.Hour)
}

func TestSession_StartAndGet(t *testing.T) {
	sessions := setupTestSessions(t)

	if err := sessions.Start(context.Background(), 1, "Alice"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	session, err := sessions.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !session.LoggedIn {
		t.Error("Get() after Start() should report logged in")
	}
	if session.Name != "Alice" {
		t.Errorf("session name = %q, want Alice", session.Name)
	}
	if session.Page != PageDashboard {
		t.Errorf("session page = %q, want %q", session.Page, PageDashboard)
	}
}

func TestSession_SetNavigation(t *testing.T) {
	sessions := setupTestSessions(t)

	if err := sessions.Start(context.Background(), 1, "Alice"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := sessions.SetNavigation(context.Background(), 1, PageCheckin); err != nil {
		t.Fatalf("SetNavigation() error = %v", err)
	}

	session, err := sessions.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if session.Page != PageCheckin {
		t.Errorf("session page = %q, want %q", session.Page, PageCheckin)
	}
}

func TestSession_SetNavigationUnknownPage(t *testing.T) {
	sessions := setupTestSessions(t)

	err := sessions.SetNavigation(context.Background(), 1, "Settings")
	if !errors.Is(err, ErrUnknownPage) {
		t.Errorf("SetNavigation() error = %v, want ErrUnknownPage", err)
	}
}

func TestSession_ClearRemovesEverything(t *testing.T) {
	sessions := setupTestSessions(t)

	if err := sessions.Start(context.Background(), 1, "Alice"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := sessions.Clear(context.Background(), 1); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	session, err := sessions.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if session.LoggedIn {
		t.Error("Get() after Clear() should report logged out")
	}
	if session.Name != "" || session.Page != "" {
		t.Error("Clear() should leave no session fields behind")
	}
}
