package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"maideasy/internal/auth"
	"maideasy/internal/bookings/service"
	apperrors "maideasy/pkg/errors"
	httputil "maideasy/pkg/http"
	"maideasy/pkg/logger"
	"maideasy/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service    service.BookingService
	middleware *auth.Middleware
	log        *logger.Logger
}

func NewBookingHandler(service service.BookingService, middleware *auth.Middleware, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service:    service,
		middleware: middleware,
		log:        log,
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	session, _ := auth.SessionFromContext(r.Context())

	var input model.BookingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, "Create", apperrors.InvalidInput("Invalid request body"))
		return
	}

	booking, err := h.service.Create(r.Context(), session.UserID, &input)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, "Booking created successfully", booking); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

// List returns every booking for admins and only the caller's own
// bookings for everyone else.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	session, _ := auth.SessionFromContext(r.Context())

	var bookings []model.Booking
	if auth.IsAdmin(session) {
		bookings = h.service.GetAll(r.Context())
	} else {
		bookings = h.service.GetByUserID(r.Context(), session.UserID)
	}

	if err := httputil.WriteSuccess(w, "OK", bookings); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "error", err)
	}
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	session, _ := auth.SessionFromContext(r.Context())

	id, err := parseID(ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	booking, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if !auth.CanManageBooking(session, booking.UserID) {
		h.writeError(w, "GetByID", apperrors.Forbidden("You do not have access to this booking"))
		return
	}

	if err := httputil.WriteSuccess(w, "OK", booking); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "error", err)
	}
}

func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	session, _ := auth.SessionFromContext(r.Context())

	id, err := parseID(ps.ByName("id"))
	if err != nil {
		h.writeError(w, "UpdateStatus", err)
		return
	}

	booking, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, "UpdateStatus", err)
		return
	}

	if !auth.CanManageBooking(session, booking.UserID) {
		h.writeError(w, "UpdateStatus", apperrors.Forbidden("You do not have access to this booking"))
		return
	}

	var input model.BookingStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, "UpdateStatus", apperrors.InvalidInput("Invalid request body"))
		return
	}

	updated, err := h.service.UpdateStatus(r.Context(), id, &input)
	if err != nil {
		h.writeError(w, "UpdateStatus", err)
		return
	}

	if err := httputil.WriteSuccess(w, "Booking status updated", updated); err != nil {
		h.log.Error("failed to write success response", "handler", "UpdateStatus", "error", err)
	}
}

func (h *BookingHandler) GetByMaidID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	session, _ := auth.SessionFromContext(r.Context())
	if !auth.IsAdmin(session) {
		h.writeError(w, "GetByMaidID", apperrors.Forbidden("Admin access required"))
		return
	}

	id, err := parseID(ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByMaidID", err)
		return
	}

	bookings := h.service.GetByMaidID(r.Context(), id)

	if err := httputil.WriteSuccess(w, "OK", bookings); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByMaidID", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bookings", h.middleware.RequireAuth(h.Create))
	router.GET("/api/v1/bookings", h.middleware.RequireAuth(h.List))
	router.GET("/api/v1/bookings/id/:id", h.middleware.RequireAuth(h.GetByID))
	router.PATCH("/api/v1/bookings/id/:id/status", h.middleware.RequireAuth(h.UpdateStatus))
	router.GET("/api/v1/bookings/maid/:id", h.middleware.RequireAuth(h.GetByMaidID))
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, apperrors.InvalidInput("Invalid booking id: " + raw)
	}
	return id, nil
}

func (h *BookingHandler) writeError(w http.ResponseWriter, handlerName string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handlerName, "error", writeErr)
	}
}
