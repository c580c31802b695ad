package service

import (
	"context"

	"maideasy/internal/company/repository"
	"maideasy/internal/company/validator"
	apperrors "maideasy/pkg/errors"
	"maideasy/pkg/logger"
	"maideasy/pkg/model"
	"maideasy/pkg/sanitizer"
)

type CompanySettingsService interface {
	Get(ctx context.Context) (model.CompanySettings, error)
	Upsert(ctx context.Context, input *model.CompanySettingsInput) (model.CompanySettings, error)
}

type companySettingsService struct {
	repo      *repository.CompanySettingsRepository
	validator *validator.CompanySettingsValidator
	log       *logger.Logger
}

func NewCompanySettingsService(
	repo *repository.CompanySettingsRepository,
	validator *validator.CompanySettingsValidator,
	log *logger.Logger,
) CompanySettingsService {
	return &companySettingsService{
		repo:      repo,
		validator: validator,
		log:       log,
	}
}

func (s *companySettingsService) Get(ctx context.Context) (model.CompanySettings, error) {
	settings, ok := s.repo.Get(ctx)
	if !ok {
		return model.CompanySettings{}, apperrors.NotFound("Company settings not found")
	}
	return settings, nil
}

func (s *companySettingsService) Upsert(ctx context.Context, input *model.CompanySettingsInput) (model.CompanySettings, error) {
	input.CompanyName = sanitizer.TrimAndNormalize(input.CompanyName)
	input.ContactEmail = sanitizer.NormalizeEmail(input.ContactEmail)
	input.ContactPhone = sanitizer.NormalizePhone(input.ContactPhone)
	input.Address = sanitizer.TrimAndNormalize(input.Address)
	input.Logo = sanitizer.TrimAndNormalize(input.Logo)
	input.ServicesOffered = sanitizer.NormalizeServiceTags(input.ServicesOffered)
	input.OperatingHours = sanitizer.TrimAndNormalize(input.OperatingHours)

	if err := s.validator.ValidateInput(input); err != nil {
		s.log.Warn("Company settings validation failed", "error", err)
		return model.CompanySettings{}, apperrors.Validation("Validation error", err)
	}

	settings := s.repo.Upsert(ctx, model.CompanySettings{
		CompanyName:     input.CompanyName,
		ContactEmail:    input.ContactEmail,
		ContactPhone:    input.ContactPhone,
		Address:         input.Address,
		Logo:            input.Logo,
		ServicesOffered: input.ServicesOffered,
		OperatingHours:  input.OperatingHours,
	})

	s.log.Info("Company settings saved", "company_name", settings.CompanyName)
	return settings, nil
}
