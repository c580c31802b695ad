package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "maideasy/pkg/errors"
	httputil "maideasy/pkg/http"
	"maideasy/pkg/logger"
	"maideasy/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockWaitlistService struct {
	joinFunc  func(ctx context.Context, input *model.WaitlistInput) (model.WaitlistEntry, error)
	countFunc func(ctx context.Context) int
}

func (m *mockWaitlistService) Join(ctx context.Context, input *model.WaitlistInput) (model.WaitlistEntry, error) {
	if m.joinFunc != nil {
		return m.joinFunc(ctx, input)
	}
	return model.WaitlistEntry{}, nil
}

func (m *mockWaitlistService) Count(ctx context.Context) int {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0
}

func newWaitlistRouter(svc *mockWaitlistService) *httprouter.Router {
	log := logger.New(logger.Config{Level: logger.ERROR, Format: logger.TEXT, Output: io.Discard, Service: "test"})
	router := httprouter.New()
	NewWaitlistHandler(svc, log).RegisterRoutes(router)
	return router
}

func TestJoinReturnsCreated(t *testing.T) {
	svc := &mockWaitlistService{
		joinFunc: func(ctx context.Context, input *model.WaitlistInput) (model.WaitlistEntry, error) {
			return model.WaitlistEntry{ID: 1, Name: input.Name, Email: input.Email, JoinedAt: "2024-01-01T00:00:00Z"}, nil
		},
	}
	router := newWaitlistRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/waitlist", strings.NewReader(`{"name":"Asha","email":"asha@example.com"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp httputil.SuccessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Message != "Successfully added to waitlist" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestJoinMalformedBody(t *testing.T) {
	router := newWaitlistRouter(&mockWaitlistService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/waitlist", strings.NewReader(`{"name":`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestJoinConflictPassthrough(t *testing.T) {
	svc := &mockWaitlistService{
		joinFunc: func(ctx context.Context, input *model.WaitlistInput) (model.WaitlistEntry, error) {
			return model.WaitlistEntry{}, apperrors.Conflict("Email already registered on waitlist")
		},
	}
	router := newWaitlistRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/waitlist", strings.NewReader(`{"name":"Asha","email":"asha@example.com"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}

	var resp httputil.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Message != "Email already registered on waitlist" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestCountEndpoint(t *testing.T) {
	svc := &mockWaitlistService{
		countFunc: func(ctx context.Context) int { return 12 },
	}
	router := newWaitlistRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/waitlist/count", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Message string        `json:"message"`
		Data    CountResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Data.Count != 12 {
		t.Errorf("expected count 12, got %d", resp.Data.Count)
	}
}
