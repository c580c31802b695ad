package service

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"maideasy/internal/auth"
	"maideasy/internal/auth/repository"
	"maideasy/internal/auth/validator"
	apperrors "maideasy/pkg/errors"
	"maideasy/pkg/events"
	"maideasy/pkg/logger"
	"maideasy/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   logger.ERROR,
		Format:  logger.TEXT,
		Output:  io.Discard,
		Service: "test",
	})
}

func newTestAuthService(t *testing.T) (AuthService, *auth.SessionStore) {
	t.Helper()
	sessions := auth.NewSessionStore(time.Hour)
	t.Cleanup(sessions.Stop)

	svc := NewAuthService(
		repository.NewUserRepository(),
		sessions,
		validator.NewAuthValidator(),
		events.NoopPublisher{},
		testLogger(),
	)
	return svc, sessions
}

func registerInput() *model.RegisterInput {
	return &model.RegisterInput{
		Username: "ravi",
		Password: "secret123",
		Email:    "Ravi@Example.com",
		Name:     "Ravi Kumar",
	}
}

func TestRegister(t *testing.T) {
	svc, _ := newTestAuthService(t)

	user, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if user.ID != 1 {
		t.Errorf("expected id 1, got %d", user.ID)
	}
	if user.Role != model.RoleCustomer {
		t.Errorf("expected customer role, got %q", user.Role)
	}
	if user.Email != "ravi@example.com" {
		t.Errorf("expected lowercased email, got %q", user.Email)
	}
	if user.Password == "secret123" {
		t.Error("password stored in plaintext")
	}
	if user.CreatedAt == "" {
		t.Error("expected CreatedAt to be set")
	}
}

func TestRegisterNeverGrantsAdmin(t *testing.T) {
	svc, _ := newTestAuthService(t)

	user, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role == model.RoleAdmin {
		t.Error("registration must never produce an admin account")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerInput()); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}

	dup := registerInput()
	dup.Email = "other@example.com"
	_, err := svc.Register(ctx, dup)

	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409 conflict, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerInput()); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}

	dup := registerInput()
	dup.Username = "someoneelse"
	dup.Email = "RAVI@example.com"
	_, err := svc.Register(ctx, dup)

	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409 conflict for case-insensitive email match, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestAuthService(t)

	input := registerInput()
	input.Password = "short"
	_, err := svc.Register(context.Background(), input)

	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400 validation error, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, sessions := newTestAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	user, session, err := svc.Login(ctx, &model.LoginInput{Username: "ravi", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("expected user %d, got %d", registered.ID, user.ID)
	}
	if session.Token == "" {
		t.Fatal("expected a session token")
	}

	stored, ok := sessions.Get(session.Token)
	if !ok || stored.UserID != registered.ID {
		t.Error("expected session to be usable after login")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerInput()); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	tests := []struct {
		name  string
		input model.LoginInput
	}{
		{"wrong password", model.LoginInput{Username: "ravi", Password: "wrongpass"}},
		{"unknown user", model.LoginInput{Username: "nobody", Password: "secret123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(ctx, &tt.input)
			appErr := apperrors.AsAppError(err)
			if appErr == nil || appErr.HTTPStatus != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %v", err)
			}
			// Same message either way so callers cannot probe for usernames.
			if appErr.Message != "Invalid username or password" {
				t.Errorf("unexpected message %q", appErr.Message)
			}
		})
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	svc, sessions := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerInput()); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	_, session, err := svc.Login(ctx, &model.LoginInput{Username: "ravi", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	svc.Logout(ctx, session.Token)

	if _, ok := sessions.Get(session.Token); ok {
		t.Error("expected session to be gone after logout")
	}
}

func TestEnsureAdmin(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if err := svc.EnsureAdmin(ctx, "admin", "admin123", "admin@maideasy.com"); err != nil {
		t.Fatalf("EnsureAdmin returned error: %v", err)
	}
	// Second call is a no-op, not a conflict.
	if err := svc.EnsureAdmin(ctx, "admin", "admin123", "admin@maideasy.com"); err != nil {
		t.Fatalf("EnsureAdmin rerun returned error: %v", err)
	}

	user, session, err := svc.Login(ctx, &model.LoginInput{Username: "admin", Password: "admin123"})
	if err != nil {
		t.Fatalf("Login as seeded admin returned error: %v", err)
	}
	if user.Role != model.RoleAdmin || session.Role != model.RoleAdmin {
		t.Error("expected seeded account to carry the admin role")
	}
}

func TestCurrentUser(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	user, err := svc.CurrentUser(ctx, auth.Session{UserID: registered.ID, Role: registered.Role})
	if err != nil {
		t.Fatalf("CurrentUser returned error: %v", err)
	}
	if user.Username != "ravi" {
		t.Errorf("unexpected user %q", user.Username)
	}

	_, err = svc.CurrentUser(ctx, auth.Session{UserID: 999})
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("expected 401 for vanished user, got %v", err)
	}
}
