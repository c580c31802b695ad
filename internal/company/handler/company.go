package handler

import (
	"encoding/json"
	"net/http"

	"maideasy/internal/auth"
	"maideasy/internal/company/service"
	apperrors "maideasy/pkg/errors"
	httputil "maideasy/pkg/http"
	"maideasy/pkg/logger"
	"maideasy/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type CompanySettingsHandler struct {
	service    service.CompanySettingsService
	middleware *auth.Middleware
	log        *logger.Logger
}

func NewCompanySettingsHandler(service service.CompanySettingsService, middleware *auth.Middleware, log *logger.Logger) *CompanySettingsHandler {
	return &CompanySettingsHandler{
		service:    service,
		middleware: middleware,
		log:        log,
	}
}

func (h *CompanySettingsHandler) Get(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	settings, err := h.service.Get(r.Context())
	if err != nil {
		h.writeError(w, "Get", err)
		return
	}

	if err := httputil.WriteSuccess(w, "OK", settings); err != nil {
		h.log.Error("failed to write success response", "handler", "Get", "error", err)
	}
}

func (h *CompanySettingsHandler) Upsert(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	session, _ := auth.SessionFromContext(r.Context())
	if !auth.IsAdmin(session) {
		h.writeError(w, "Upsert", apperrors.Forbidden("Admin access required"))
		return
	}

	var input model.CompanySettingsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, "Upsert", apperrors.InvalidInput("Invalid request body"))
		return
	}

	settings, err := h.service.Upsert(r.Context(), &input)
	if err != nil {
		h.writeError(w, "Upsert", err)
		return
	}

	if err := httputil.WriteSuccess(w, "Company settings saved", settings); err != nil {
		h.log.Error("failed to write success response", "handler", "Upsert", "error", err)
	}
}

func (h *CompanySettingsHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/company-settings", h.Get)
	router.POST("/api/v1/company-settings", h.middleware.RequireAuth(h.Upsert))
}

func (h *CompanySettingsHandler) writeError(w http.ResponseWriter, handlerName string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handlerName, "error", writeErr)
	}
}
