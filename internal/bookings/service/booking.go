package service

import (
	"context"
	"strconv"

	"maideasy/internal/bookings/repository"
	"maideasy/internal/bookings/validator"
	maidrepo "maideasy/internal/maids/repository"
	apperrors "maideasy/pkg/errors"
	"maideasy/pkg/events"
	"maideasy/pkg/logger"
	"maideasy/pkg/model"
	"maideasy/pkg/sanitizer"
)

type BookingService interface {
	Create(ctx context.Context, userID int, input *model.BookingInput) (model.Booking, error)
	GetAll(ctx context.Context) []model.Booking
	GetByUserID(ctx context.Context, userID int) []model.Booking
	GetByMaidID(ctx context.Context, maidID int) []model.Booking
	GetByID(ctx context.Context, id int) (model.Booking, error)
	UpdateStatus(ctx context.Context, id int, input *model.BookingStatusInput) (model.Booking, error)
}

type bookingService struct {
	repo      *repository.BookingRepository
	maids     *maidrepo.MaidRepository
	validator *validator.BookingValidator
	publisher events.Publisher
	log       *logger.Logger
}

func NewBookingService(
	repo *repository.BookingRepository,
	maids *maidrepo.MaidRepository,
	validator *validator.BookingValidator,
	publisher events.Publisher,
	log *logger.Logger,
) BookingService {
	return &bookingService{
		repo:      repo,
		maids:     maids,
		validator: validator,
		publisher: publisher,
		log:       log,
	}
}

func (s *bookingService) Create(ctx context.Context, userID int, input *model.BookingInput) (model.Booking, error) {
	s.sanitize(input)

	if err := s.validator.ValidateInput(input); err != nil {
		s.log.Warn("Booking validation failed", "user_id", userID, "error", err)
		return model.Booking{}, apperrors.Validation("Validation error", err)
	}

	if _, exists := s.maids.FindByID(ctx, input.MaidID); !exists {
		return model.Booking{}, apperrors.NotFoundWithID("Maid", input.MaidID)
	}

	booking := s.repo.Create(ctx, model.Booking{
		UserID:      userID,
		MaidID:      input.MaidID,
		ServiceType: input.ServiceType,
		BookingDate: input.BookingDate,
		BookingTime: input.BookingTime,
		Address:     input.Address,
		Notes:       input.Notes,
	})

	s.log.Info("Booking created",
		"id", booking.ID,
		"user_id", booking.UserID,
		"maid_id", booking.MaidID,
		"status", booking.Status,
	)

	s.publish(ctx, events.TypeBookingCreated, booking.ID, map[string]any{
		"userId": booking.UserID,
		"maidId": booking.MaidID,
		"status": booking.Status,
	})

	return booking, nil
}

func (s *bookingService) GetAll(ctx context.Context) []model.Booking {
	return s.repo.FindAll(ctx)
}

func (s *bookingService) GetByUserID(ctx context.Context, userID int) []model.Booking {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *bookingService) GetByMaidID(ctx context.Context, maidID int) []model.Booking {
	return s.repo.FindByMaidID(ctx, maidID)
}

func (s *bookingService) GetByID(ctx context.Context, id int) (model.Booking, error) {
	booking, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return model.Booking{}, apperrors.NotFoundWithID("Booking", id)
	}
	return booking, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, id int, input *model.BookingStatusInput) (model.Booking, error) {
	if err := s.validator.ValidateStatus(input); err != nil {
		return model.Booking{}, apperrors.Validation("Validation error", err)
	}

	booking, ok := s.repo.UpdateStatus(ctx, id, input.Status)
	if !ok {
		return model.Booking{}, apperrors.NotFoundWithID("Booking", id)
	}

	s.log.Info("Booking status updated", "id", id, "status", booking.Status)
	s.publish(ctx, events.TypeBookingStatusChanged, booking.ID, map[string]any{
		"userId": booking.UserID,
		"maidId": booking.MaidID,
		"status": booking.Status,
	})

	return booking, nil
}

func (s *bookingService) sanitize(input *model.BookingInput) {
	input.ServiceType = sanitizer.TrimAndNormalize(input.ServiceType)
	input.BookingDate = sanitizer.TrimAndNormalize(input.BookingDate)
	input.BookingTime = sanitizer.TrimAndNormalize(input.BookingTime)
	input.Address = sanitizer.TrimAndNormalize(input.Address)
	input.Notes = sanitizer.TrimAndNormalize(input.Notes)
}

func (s *bookingService) publish(ctx context.Context, eventType string, bookingID int, payload any) {
	if err := s.publisher.Publish(ctx, events.Event{
		Type:    eventType,
		Key:     strconv.Itoa(bookingID),
		Payload: payload,
	}); err != nil {
		s.log.Error("Failed to publish event", "type", eventType, "error", err)
	}
}
