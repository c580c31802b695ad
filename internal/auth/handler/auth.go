package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"maideasy/internal/auth"
	"maideasy/internal/auth/service"
	apperrors "maideasy/pkg/errors"
	httputil "maideasy/pkg/http"
	"maideasy/pkg/logger"
	"maideasy/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type AuthHandler struct {
	service    service.AuthService
	middleware *auth.Middleware
	cookieName string
	log        *logger.Logger
}

func NewAuthHandler(service service.AuthService, middleware *auth.Middleware, cookieName string, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		service:    service,
		middleware: middleware,
		cookieName: cookieName,
		log:        log,
	}
}

type LoginResponse struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, "Register", apperrors.InvalidInput("Invalid request body"))
		return
	}

	user, err := h.service.Register(r.Context(), &input)
	if err != nil {
		h.writeError(w, "Register", err)
		return
	}

	if err := httputil.WriteCreated(w, "Registration successful", user); err != nil {
		h.log.Error("failed to write created response", "handler", "Register", "error", err)
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, "Login", apperrors.InvalidInput("Invalid request body"))
		return
	}

	user, session, err := h.service.Login(r.Context(), &input)
	if err != nil {
		h.writeError(w, "Login", err)
		return
	}

	h.setSessionCookie(w, session.Token, session.ExpiresAt)
	if err := httputil.WriteSuccess(w, "Login successful", LoginResponse{User: user, Token: session.Token}); err != nil {
		h.log.Error("failed to write success response", "handler", "Login", "error", err)
	}
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.service.Logout(r.Context(), h.middleware.ExtractToken(r))
	h.clearSessionCookie(w)

	if err := httputil.WriteSuccess(w, "Logout successful", nil); err != nil {
		h.log.Error("failed to write success response", "handler", "Logout", "error", err)
	}
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		h.writeError(w, "Me", apperrors.Unauthorized("Authentication required"))
		return
	}

	user, err := h.service.CurrentUser(r.Context(), session)
	if err != nil {
		h.writeError(w, "Me", err)
		return
	}

	if err := httputil.WriteSuccess(w, "OK", user); err != nil {
		h.log.Error("failed to write success response", "handler", "Me", "error", err)
	}
}

func (h *AuthHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/auth/register", h.Register)
	router.POST("/api/v1/auth/login", h.Login)
	router.POST("/api/v1/auth/logout", h.middleware.RequireAuth(h.Logout))
	router.GET("/api/v1/auth/me", h.middleware.RequireAuth(h.Me))
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) writeError(w http.ResponseWriter, handlerName string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handlerName, "error", writeErr)
	}
}
