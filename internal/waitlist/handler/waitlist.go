package handler

import (
	"encoding/json"
	"net/http"

	"maideasy/internal/waitlist/service"
	apperrors "maideasy/pkg/errors"
	httputil "maideasy/pkg/http"
	"maideasy/pkg/logger"
	"maideasy/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type WaitlistHandler struct {
	service service.WaitlistService
	log     *logger.Logger
}

func NewWaitlistHandler(service service.WaitlistService, log *logger.Logger) *WaitlistHandler {
	return &WaitlistHandler{
		service: service,
		log:     log,
	}
}

type CountResponse struct {
	Count int `json:"count"`
}

func (h *WaitlistHandler) Join(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.WaitlistInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, "Join", apperrors.InvalidInput("Invalid request body"))
		return
	}

	entry, err := h.service.Join(r.Context(), &input)
	if err != nil {
		h.writeError(w, "Join", err)
		return
	}

	if err := httputil.WriteCreated(w, "Successfully added to waitlist", entry); err != nil {
		h.log.Error("failed to write created response", "handler", "Join", "error", err)
	}
}

func (h *WaitlistHandler) Count(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	count := h.service.Count(r.Context())

	if err := httputil.WriteSuccess(w, "OK", CountResponse{Count: count}); err != nil {
		h.log.Error("failed to write success response", "handler", "Count", "error", err)
	}
}

func (h *WaitlistHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/waitlist", h.Join)
	router.GET("/api/v1/waitlist/count", h.Count)
}

func (h *WaitlistHandler) writeError(w http.ResponseWriter, handlerName string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handlerName, "error", writeErr)
	}
}
