package auth

import (
	"context"
	"net/http"
	"strings"

	apperrors "maideasy/pkg/errors"
	httputil "maideasy/pkg/http"

	"github.com/julienschmidt/httprouter"
)

type contextKey string

const sessionKey contextKey = "session"

// Middleware resolves the session token carried by a request, either as an
// Authorization bearer token or as the session cookie.
type Middleware struct {
	store      *SessionStore
	cookieName string
}

func NewMiddleware(store *SessionStore, cookieName string) *Middleware {
	return &Middleware{
		store:      store,
		cookieName: cookieName,
	}
}

// RequireAuth rejects anonymous requests with 401 and puts the session in the
// request context for downstream policy checks.
func (m *Middleware) RequireAuth(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		session, ok := m.resolve(r)
		if !ok {
			_ = httputil.WriteError(w, apperrors.Unauthorized("Authentication required"))
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, session)
		next(w, r.WithContext(ctx), ps)
	}
}

// OptionalAuth attaches the session when present and proceeds regardless.
func (m *Middleware) OptionalAuth(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if session, ok := m.resolve(r); ok {
			r = r.WithContext(context.WithValue(r.Context(), sessionKey, session))
		}
		next(w, r, ps)
	}
}

func (m *Middleware) resolve(r *http.Request) (Session, bool) {
	return m.store.Get(m.ExtractToken(r))
}

func (m *Middleware) ExtractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}

	if cookie, err := r.Cookie(m.cookieName); err == nil {
		return cookie.Value
	}
	return ""
}

func SessionFromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(sessionKey).(Session)
	return session, ok
}
