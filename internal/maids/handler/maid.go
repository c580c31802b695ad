package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"maideasy/internal/auth"
	"maideasy/internal/maids/service"
	apperrors "maideasy/pkg/errors"
	httputil "maideasy/pkg/http"
	"maideasy/pkg/logger"
	"maideasy/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type MaidHandler struct {
	service    service.MaidService
	middleware *auth.Middleware
	log        *logger.Logger
}

func NewMaidHandler(service service.MaidService, middleware *auth.Middleware, log *logger.Logger) *MaidHandler {
	return &MaidHandler{
		service:    service,
		middleware: middleware,
		log:        log,
	}
}

func (h *MaidHandler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.MaidInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, "Register", apperrors.InvalidInput("Invalid request body"))
		return
	}

	maid, err := h.service.Register(r.Context(), &input)
	if err != nil {
		h.writeError(w, "Register", err)
		return
	}

	if err := httputil.WriteCreated(w, "Maid registered successfully", maid); err != nil {
		h.log.Error("failed to write created response", "handler", "Register", "error", err)
	}
}

func (h *MaidHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	maids := h.service.GetAll(r.Context())

	if err := httputil.WriteSuccess(w, "OK", maids); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "error", err)
	}
}

func (h *MaidHandler) GetByCity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	maids := h.service.GetByCity(r.Context(), ps.ByName("city"))

	if err := httputil.WriteSuccess(w, "OK", maids); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByCity", "error", err)
	}
}

func (h *MaidHandler) GetByLocality(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	maids := h.service.GetByLocality(r.Context(), ps.ByName("locality"))

	if err := httputil.WriteSuccess(w, "OK", maids); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByLocality", "error", err)
	}
}

func (h *MaidHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := parseID(ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	maid, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, "OK", maid); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "error", err)
	}
}

func (h *MaidHandler) SetAvailability(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	session, _ := auth.SessionFromContext(r.Context())
	if !auth.IsAdmin(session) {
		h.writeError(w, "SetAvailability", apperrors.Forbidden("Admin access required"))
		return
	}

	id, err := parseID(ps.ByName("id"))
	if err != nil {
		h.writeError(w, "SetAvailability", err)
		return
	}

	var input model.MaidAvailabilityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, "SetAvailability", apperrors.InvalidInput("Invalid request body"))
		return
	}
	if input.IsAvailable == nil {
		h.writeError(w, "SetAvailability", apperrors.InvalidInput("isAvailable is required"))
		return
	}

	maid, err := h.service.SetAvailability(r.Context(), id, *input.IsAvailable)
	if err != nil {
		h.writeError(w, "SetAvailability", err)
		return
	}

	if err := httputil.WriteSuccess(w, "Maid availability updated", maid); err != nil {
		h.log.Error("failed to write success response", "handler", "SetAvailability", "error", err)
	}
}

func (h *MaidHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/maids", h.Register)
	router.GET("/api/v1/maids", h.GetAll)
	router.GET("/api/v1/maids/city/:city", h.GetByCity)
	router.GET("/api/v1/maids/locality/:locality", h.GetByLocality)
	router.GET("/api/v1/maids/id/:id", h.GetByID)
	router.PATCH("/api/v1/maids/id/:id/availability", h.middleware.RequireAuth(h.SetAvailability))
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, apperrors.InvalidInput("Invalid maid id: " + raw)
	}
	return id, nil
}

func (h *MaidHandler) writeError(w http.ResponseWriter, handlerName string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handlerName, "error", writeErr)
	}
}
