package http

import (
	"net/http"

	"github.com/MKhiriev/crrd/internal/logger"
	"github.com/MKhiriev/crrd/internal/utils"
	"github.com/MKhiriev/crrd/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	form, err := utils.ParseForm(w, r)
	if err != nil {
		writeError(w, r, err, "*Handler.register")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, models.Credentials{
		Email:    form.Get("email"),
		Password: form.Get("password"),
		Vanity:   form.Get("vanity"),
	})
	h.metrics.authEvent(eventRegister, err)
	if err != nil {
		writeError(w, r, err, "*Handler.register")
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", registeredUser.UserID).Msg("user registered")
	http.Redirect(w, r, "/login", http.StatusFound)
}

// login verifies credentials and replaces whatever session the client held
// with a fresh one.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	form, err := utils.ParseForm(w, r)
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, models.Credentials{
		Email:    form.Get("email"),
		Password: form.Get("password"),
	})
	h.metrics.authEvent(eventLogin, err)
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	if cookie, err := r.Cookie(h.cookie.name); err == nil && cookie.Value != "" {
		if err := h.services.SessionService.EndSession(ctx, cookie.Value); err != nil {
			log.Warn().Err(err).Str("func", "*Handler.login").Msg("error ending previous session")
		}
	}

	session, err := h.services.SessionService.StartSession(ctx, foundUser)
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	log.Debug().Int64("user_id", foundUser.UserID).Msg("user successfully logged in")

	h.setSessionCookie(w, session.Cookie)
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var err error
	if cookie, cookieErr := r.Cookie(h.cookie.name); cookieErr == nil && cookie.Value != "" {
		err = h.services.SessionService.EndSession(ctx, cookie.Value)
		if err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.logout").Msg("error ending session")
		}
	}
	h.metrics.authEvent(eventLogout, err)

	h.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
