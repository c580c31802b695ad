package service

import (
	"context"

	"maideasy/internal/auth"
	"maideasy/internal/auth/repository"
	"maideasy/internal/auth/validator"
	apperrors "maideasy/pkg/errors"
	"maideasy/pkg/events"
	"maideasy/pkg/logger"
	"maideasy/pkg/model"
	"maideasy/pkg/sanitizer"
)

type AuthService interface {
	Register(ctx context.Context, input *model.RegisterInput) (model.User, error)
	Login(ctx context.Context, input *model.LoginInput) (model.User, auth.Session, error)
	Logout(ctx context.Context, token string)
	CurrentUser(ctx context.Context, session auth.Session) (model.User, error)
	EnsureAdmin(ctx context.Context, username, password, email string) error
}

type authService struct {
	repo      *repository.UserRepository
	sessions  *auth.SessionStore
	validator *validator.AuthValidator
	publisher events.Publisher
	log       *logger.Logger
}

func NewAuthService(
	repo *repository.UserRepository,
	sessions *auth.SessionStore,
	validator *validator.AuthValidator,
	publisher events.Publisher,
	log *logger.Logger,
) AuthService {
	return &authService{
		repo:      repo,
		sessions:  sessions,
		validator: validator,
		publisher: publisher,
		log:       log,
	}
}

func (s *authService) Register(ctx context.Context, input *model.RegisterInput) (model.User, error) {
	s.sanitizeRegister(input)

	if err := s.validator.ValidateRegister(input); err != nil {
		s.log.Warn("User registration validation failed",
			"username", input.Username,
			"error", err,
		)
		return model.User{}, apperrors.Validation("Validation error", err)
	}

	if _, exists := s.repo.FindByUsername(ctx, input.Username); exists {
		return model.User{}, apperrors.Conflict("Username already taken")
	}
	if _, exists := s.repo.FindByEmail(ctx, input.Email); exists {
		return model.User{}, apperrors.Conflict("Email already registered")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		s.log.Error("Failed to hash password", "username", input.Username, "error", err)
		return model.User{}, apperrors.Internal("Failed to register user", err)
	}

	user := s.repo.Create(ctx, model.User{
		Username: input.Username,
		Password: hash,
		Email:    input.Email,
		Name:     input.Name,
		Role:     model.RoleCustomer,
	})

	s.log.Info("User registered", "id", user.ID, "username", user.Username)
	s.publish(ctx, events.TypeUserRegistered, user.Username, map[string]any{
		"id":    user.ID,
		"email": user.Email,
	})

	return user, nil
}

func (s *authService) Login(ctx context.Context, input *model.LoginInput) (model.User, auth.Session, error) {
	input.Username = sanitizer.TrimAndNormalize(input.Username)

	if err := s.validator.ValidateLogin(input); err != nil {
		return model.User{}, auth.Session{}, apperrors.Validation("Validation error", err)
	}

	user, ok := s.repo.FindByUsername(ctx, input.Username)
	if !ok || !auth.VerifyPassword(input.Password, user.Password) {
		s.log.Warn("Login rejected", "username", input.Username)
		return model.User{}, auth.Session{}, apperrors.Unauthorized("Invalid username or password")
	}

	session := s.sessions.Create(user.ID, user.Role)
	s.log.Info("User logged in", "id", user.ID, "username", user.Username)
	return user, session, nil
}

func (s *authService) Logout(ctx context.Context, token string) {
	s.sessions.Delete(token)
}

func (s *authService) CurrentUser(ctx context.Context, session auth.Session) (model.User, error) {
	user, ok := s.repo.FindByID(ctx, session.UserID)
	if !ok {
		return model.User{}, apperrors.Unauthorized("Session user no longer exists")
	}
	return user, nil
}

// EnsureAdmin seeds the first-run admin account if it is absent.
func (s *authService) EnsureAdmin(ctx context.Context, username, password, email string) error {
	if _, exists := s.repo.FindByUsername(ctx, username); exists {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return apperrors.Internal("Failed to seed admin user", err)
	}

	user := s.repo.Create(ctx, model.User{
		Username: username,
		Password: hash,
		Email:    sanitizer.NormalizeEmail(email),
		Name:     "Admin User",
		Role:     model.RoleAdmin,
	})

	s.log.Info("Admin user seeded", "id", user.ID, "username", user.Username)
	return nil
}

func (s *authService) sanitizeRegister(input *model.RegisterInput) {
	input.Username = sanitizer.TrimAndNormalize(input.Username)
	input.Email = sanitizer.NormalizeEmail(input.Email)
	input.Name = sanitizer.NormalizeName(input.Name)
}

func (s *authService) publish(ctx context.Context, eventType, key string, payload any) {
	if err := s.publisher.Publish(ctx, events.Event{
		Type:    eventType,
		Key:     key,
		Payload: payload,
	}); err != nil {
		s.log.Error("Failed to publish event", "type", eventType, "error", err)
	}
}
