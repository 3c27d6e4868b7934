package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/crrd/internal/logger"
	"github.com/MKhiriev/crrd/internal/service"
	"github.com/MKhiriev/crrd/internal/utils"
)

// withSession resolves the session cookie, when present, and stores the
// session in the request context under [utils.SessionCtxKey].
//
// A missing, forged, or expired cookie is not an error here: the request
// simply proceeds anonymously. A stale cookie is expired on the client so
// the browser stops sending it. Pages that need a user are wrapped with
// requireSession.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(h.cookie.name)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		log := logger.FromRequest(r)

		session, err := h.services.SessionService.ResumeSession(ctx, cookie.Value)
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			log.Debug().Msg("stale session cookie")
			h.clearSessionCookie(w)
			next.ServeHTTP(w, r)
			return
		case err != nil:
			log.Err(err).Str("func", "*Handler.withSession").Msg("error resuming session")
			next.ServeHTTP(w, r)
			return
		}

		l := log.WithUserID(session.UserID)
		ctx = l.WithContext(utils.WithSession(ctx, session))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireSession redirects anonymous visitors to the login page. The wrapped
// handler never runs for them, so no mutation can happen.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetSessionFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(h.cookie.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
