package service

import (
	"context"

	"maideasy/internal/maids/repository"
	"maideasy/internal/maids/validator"
	apperrors "maideasy/pkg/errors"
	"maideasy/pkg/events"
	"maideasy/pkg/logger"
	"maideasy/pkg/model"
	"maideasy/pkg/sanitizer"
)

type MaidService interface {
	Register(ctx context.Context, input *model.MaidInput) (model.Maid, error)
	GetAll(ctx context.Context) []model.Maid
	GetByCity(ctx context.Context, city string) []model.Maid
	GetByLocality(ctx context.Context, locality string) []model.Maid
	GetByID(ctx context.Context, id int) (model.Maid, error)
	SetAvailability(ctx context.Context, id int, isAvailable bool) (model.Maid, error)
}

type maidService struct {
	repo      *repository.MaidRepository
	validator *validator.MaidValidator
	publisher events.Publisher
	log       *logger.Logger
}

func NewMaidService(
	repo *repository.MaidRepository,
	validator *validator.MaidValidator,
	publisher events.Publisher,
	log *logger.Logger,
) MaidService {
	return &maidService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		log:       log,
	}
}

func (s *maidService) Register(ctx context.Context, input *model.MaidInput) (model.Maid, error) {
	s.sanitize(input)

	if err := s.validator.ValidateInput(input); err != nil {
		s.log.Warn("Maid registration validation failed", "email", input.Email, "error", err)
		return model.Maid{}, apperrors.Validation("Validation error", err)
	}

	if _, exists := s.repo.FindByEmail(ctx, input.Email); exists {
		return model.Maid{}, apperrors.Conflict("Email already registered")
	}

	maid := s.repo.Create(ctx, model.Maid{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		City:       input.City,
		Locality:   input.Locality,
		Address:    input.Address,
		Experience: input.Experience,
		Services:   input.Services,
	})

	s.log.Info("Maid registered", "id", maid.ID, "email", maid.Email, "city", maid.City)

	if err := s.publisher.Publish(ctx, events.Event{
		Type:    events.TypeMaidRegistered,
		Key:     maid.Email,
		Payload: map[string]any{"id": maid.ID, "city": maid.City, "locality": maid.Locality},
	}); err != nil {
		s.log.Error("Failed to publish event", "type", events.TypeMaidRegistered, "error", err)
	}

	return maid, nil
}

func (s *maidService) GetAll(ctx context.Context) []model.Maid {
	return s.repo.FindAll(ctx)
}

func (s *maidService) GetByCity(ctx context.Context, city string) []model.Maid {
	return s.repo.FindByCity(ctx, sanitizer.NormalizeCity(city))
}

func (s *maidService) GetByLocality(ctx context.Context, locality string) []model.Maid {
	return s.repo.FindByLocality(ctx, sanitizer.NormalizeCity(locality))
}

func (s *maidService) GetByID(ctx context.Context, id int) (model.Maid, error) {
	maid, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return model.Maid{}, apperrors.NotFoundWithID("Maid", id)
	}
	return maid, nil
}

func (s *maidService) SetAvailability(ctx context.Context, id int, isAvailable bool) (model.Maid, error) {
	maid, ok := s.repo.UpdateAvailability(ctx, id, isAvailable)
	if !ok {
		return model.Maid{}, apperrors.NotFoundWithID("Maid", id)
	}

	s.log.Info("Maid availability updated", "id", id, "is_available", isAvailable)
	return maid, nil
}

func (s *maidService) sanitize(input *model.MaidInput) {
	input.Name = sanitizer.NormalizeName(input.Name)
	input.Email = sanitizer.NormalizeEmail(input.Email)
	input.Phone = sanitizer.NormalizePhone(input.Phone)
	input.City = sanitizer.NormalizeCity(input.City)
	input.Locality = sanitizer.NormalizeCity(input.Locality)
	input.Address = sanitizer.TrimAndNormalize(input.Address)
	input.Experience = sanitizer.TrimAndNormalize(input.Experience)
	input.Services = sanitizer.NormalizeServiceTags(input.Services)
}
