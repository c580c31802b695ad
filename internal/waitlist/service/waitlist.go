package service

import (
	"context"

	"maideasy/internal/waitlist/repository"
	"maideasy/internal/waitlist/validator"
	apperrors "maideasy/pkg/errors"
	"maideasy/pkg/events"
	"maideasy/pkg/logger"
	"maideasy/pkg/model"
	"maideasy/pkg/sanitizer"
)

type WaitlistService interface {
	Join(ctx context.Context, input *model.WaitlistInput) (model.WaitlistEntry, error)
	Count(ctx context.Context) int
}

type waitlistService struct {
	repo      *repository.WaitlistRepository
	validator *validator.WaitlistValidator
	publisher events.Publisher
	log       *logger.Logger
}

func NewWaitlistService(
	repo *repository.WaitlistRepository,
	validator *validator.WaitlistValidator,
	publisher events.Publisher,
	log *logger.Logger,
) WaitlistService {
	return &waitlistService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		log:       log,
	}
}

func (s *waitlistService) Join(ctx context.Context, input *model.WaitlistInput) (model.WaitlistEntry, error) {
	input.Name = sanitizer.NormalizeName(input.Name)
	input.Email = sanitizer.NormalizeEmail(input.Email)
	input.Company = sanitizer.TrimAndNormalize(input.Company)

	if err := s.validator.ValidateInput(input); err != nil {
		s.log.Warn("Waitlist join validation failed", "email", input.Email, "error", err)
		return model.WaitlistEntry{}, apperrors.Validation("Validation error", err)
	}

	// Duplicate email is a conflict, never an update.
	if _, exists := s.repo.FindByEmail(ctx, input.Email); exists {
		return model.WaitlistEntry{}, apperrors.Conflict("Email already registered on waitlist")
	}

	entry := s.repo.Create(ctx, model.WaitlistEntry{
		Name:    input.Name,
		Email:   input.Email,
		Company: input.Company,
	})

	s.log.Info("Waitlist entry created", "id", entry.ID, "email", entry.Email)

	if err := s.publisher.Publish(ctx, events.Event{
		Type:    events.TypeWaitlistJoined,
		Key:     entry.Email,
		Payload: map[string]any{"id": entry.ID, "name": entry.Name},
	}); err != nil {
		s.log.Error("Failed to publish event", "type", events.TypeWaitlistJoined, "error", err)
	}

	return entry, nil
}

func (s *waitlistService) Count(ctx context.Context) int {
	return s.repo.Count(ctx)
}
