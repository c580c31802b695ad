package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"maideasy/internal/auth"
	apperrors "maideasy/pkg/errors"
	"maideasy/pkg/logger"
	"maideasy/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockMaidService struct {
	registerFunc        func(ctx context.Context, input *model.MaidInput) (model.Maid, error)
	getAllFunc          func(ctx context.Context) []model.Maid
	getByCityFunc       func(ctx context.Context, city string) []model.Maid
	getByLocalityFunc   func(ctx context.Context, locality string) []model.Maid
	getByIDFunc         func(ctx context.Context, id int) (model.Maid, error)
	setAvailabilityFunc func(ctx context.Context, id int, isAvailable bool) (model.Maid, error)
}

func (m *mockMaidService) Register(ctx context.Context, input *model.MaidInput) (model.Maid, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, input)
	}
	return model.Maid{}, nil
}

func (m *mockMaidService) GetAll(ctx context.Context) []model.Maid {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return nil
}

func (m *mockMaidService) GetByCity(ctx context.Context, city string) []model.Maid {
	if m.getByCityFunc != nil {
		return m.getByCityFunc(ctx, city)
	}
	return nil
}

func (m *mockMaidService) GetByLocality(ctx context.Context, locality string) []model.Maid {
	if m.getByLocalityFunc != nil {
		return m.getByLocalityFunc(ctx, locality)
	}
	return nil
}

func (m *mockMaidService) GetByID(ctx context.Context, id int) (model.Maid, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return model.Maid{}, apperrors.NotFoundWithID("Maid", id)
}

func (m *mockMaidService) SetAvailability(ctx context.Context, id int, isAvailable bool) (model.Maid, error) {
	if m.setAvailabilityFunc != nil {
		return m.setAvailabilityFunc(ctx, id, isAvailable)
	}
	return model.Maid{}, nil
}

type maidTestEnv struct {
	router   *httprouter.Router
	sessions *auth.SessionStore
}

func newMaidTestEnv(t *testing.T, svc *mockMaidService) *maidTestEnv {
	t.Helper()
	sessions := auth.NewSessionStore(time.Hour)
	t.Cleanup(sessions.Stop)

	log := logger.New(logger.Config{Level: logger.ERROR, Format: logger.TEXT, Output: io.Discard, Service: "test"})
	router := httprouter.New()
	NewMaidHandler(svc, auth.NewMiddleware(sessions, "maideasy_session"), log).RegisterRoutes(router)

	return &maidTestEnv{router: router, sessions: sessions}
}

func TestMaidRegisterEndpoint(t *testing.T) {
	svc := &mockMaidService{
		registerFunc: func(ctx context.Context, input *model.MaidInput) (model.Maid, error) {
			return model.Maid{ID: 1, Name: input.Name, IsAvailable: true}, nil
		},
	}
	env := newMaidTestEnv(t, svc)

	body := `{"name":"Priya Sharma","email":"priya@example.com","phone":"9876543210","city":"Mumbai","locality":"Andheri"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/maids", strings.NewReader(body))
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestMaidDirectoryIsPublic(t *testing.T) {
	svc := &mockMaidService{
		getAllFunc: func(ctx context.Context) []model.Maid {
			return []model.Maid{{ID: 1, Name: "Priya"}}
		},
		getByCityFunc: func(ctx context.Context, city string) []model.Maid {
			return []model.Maid{{ID: 1, Name: "Priya", City: city}}
		},
	}
	env := newMaidTestEnv(t, svc)

	for _, path := range []string{"/api/v1/maids", "/api/v1/maids/city/Mumbai"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200 without auth, got %d", path, rec.Code)
		}
	}
}

func TestMaidGetByIDInvalid(t *testing.T) {
	env := newMaidTestEnv(t, &mockMaidService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/maids/id/zero", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", rec.Code)
	}
}

func TestSetAvailabilityAdminOnly(t *testing.T) {
	var captured *bool
	svc := &mockMaidService{
		setAvailabilityFunc: func(ctx context.Context, id int, isAvailable bool) (model.Maid, error) {
			captured = &isAvailable
			return model.Maid{ID: id, IsAvailable: isAvailable}, nil
		},
	}
	env := newMaidTestEnv(t, svc)

	send := func(session *auth.Session) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/maids/id/1/availability", strings.NewReader(`{"isAvailable":false}`))
		if session != nil {
			req.Header.Set("Authorization", "Bearer "+session.Token)
		}
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		return rec
	}

	if rec := send(nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 anonymous, got %d", rec.Code)
	}

	customer := env.sessions.Create(2, model.RoleCustomer)
	if rec := send(&customer); rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for customer, got %d", rec.Code)
	}
	if captured != nil {
		t.Error("service must not be reached by a non-admin")
	}

	admin := env.sessions.Create(1, model.RoleAdmin)
	rec := send(&admin)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured == nil || *captured != false {
		t.Error("expected service to receive isAvailable=false")
	}

	var resp struct {
		Data model.Maid `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Data.IsAvailable {
		t.Error("expected updated maid in response")
	}
}

func TestSetAvailabilityMissingField(t *testing.T) {
	env := newMaidTestEnv(t, &mockMaidService{})
	admin := env.sessions.Create(1, model.RoleAdmin)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/maids/id/1/availability", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer "+admin.Token)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 when isAvailable is omitted, got %d", rec.Code)
	}
}
