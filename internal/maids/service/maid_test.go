package service

import (
	"context"
	"io"
	"net/http"
	"testing"

	"maideasy/internal/maids/repository"
	"maideasy/internal/maids/validator"
	apperrors "maideasy/pkg/errors"
	"maideasy/pkg/events"
	"maideasy/pkg/logger"
	"maideasy/pkg/model"
)

func newTestMaidService() (MaidService, *repository.MaidRepository) {
	repo := repository.NewMaidRepository()
	svc := NewMaidService(
		repo,
		validator.NewMaidValidator(),
		events.NoopPublisher{},
		logger.New(logger.Config{Level: logger.ERROR, Format: logger.TEXT, Output: io.Discard, Service: "test"}),
	)
	return svc, repo
}

func maidInput() *model.MaidInput {
	return &model.MaidInput{
		Name:     "Priya Sharma",
		Email:    "Priya.Sharma@Example.com",
		Phone:    "9876543210",
		City:     "Mumbai",
		Locality: "Andheri",
	}
}

func TestMaidRegister(t *testing.T) {
	svc, _ := newTestMaidService()

	maid, err := svc.Register(context.Background(), maidInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if maid.ID != 1 {
		t.Errorf("expected id 1, got %d", maid.ID)
	}
	if maid.Email != "priya.sharma@example.com" {
		t.Errorf("expected lowercased email, got %q", maid.Email)
	}
	if !maid.IsAvailable {
		t.Error("expected new maid to be available")
	}
	if maid.Services == nil || len(maid.Services) != 0 {
		t.Errorf("expected empty services slice, got %v", maid.Services)
	}
}

func TestMaidRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestMaidService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, maidInput()); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}

	_, err := svc.Register(ctx, maidInput())
	appErr := apperrors.AsAppError(err)
	if appErr.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409 conflict, got %v", err)
	}
}

func TestMaidRegisterValidation(t *testing.T) {
	svc, _ := newTestMaidService()

	input := maidInput()
	input.City = ""
	_, err := svc.Register(context.Background(), input)

	appErr := apperrors.AsAppError(err)
	if appErr.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400 validation error, got %v", err)
	}
}

func TestGetByCityNormalizesQuery(t *testing.T) {
	svc, _ := newTestMaidService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, maidInput()); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	got := svc.GetByCity(ctx, "  mumbai ")
	if len(got) != 1 {
		t.Fatalf("expected 1 maid for padded lowercase city, got %d", len(got))
	}
}

func TestGetByIDUnknown(t *testing.T) {
	svc, _ := newTestMaidService()

	_, err := svc.GetByID(context.Background(), 42)
	appErr := apperrors.AsAppError(err)
	if appErr.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestSetAvailability(t *testing.T) {
	svc, _ := newTestMaidService()
	ctx := context.Background()

	maid, err := svc.Register(ctx, maidInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	updated, err := svc.SetAvailability(ctx, maid.ID, false)
	if err != nil {
		t.Fatalf("SetAvailability returned error: %v", err)
	}
	if updated.IsAvailable {
		t.Error("expected maid to be unavailable")
	}

	_, err = svc.SetAvailability(ctx, 999, true)
	appErr := apperrors.AsAppError(err)
	if appErr.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown maid, got %v", err)
	}
}
