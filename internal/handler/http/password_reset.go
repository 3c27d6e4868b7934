package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/crrd/internal/app"
	"github.com/MKhiriev/crrd/internal/utils"
	"github.com/MKhiriev/crrd/models"
	"github.com/go-chi/chi/v5"
)

// forgotPassword answers every well-formed submission identically. Whether
// a reset link was mailed is never visible to the caller.
func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	form, err := utils.ParseForm(w, r)
	if err != nil {
		writeError(w, r, err, "*Handler.forgotPassword")
		return
	}

	err = h.services.PasswordResetService.RequestReset(r.Context(), form.Get("email"))
	h.metrics.authEvent(eventResetRequest, err)
	if err != nil {
		writeError(w, r, err, "*Handler.forgotPassword")
		return
	}

	writeJSON(w, r, models.MessageResponse{Message: app.MsgResetRequested}, http.StatusOK)
}

func (h *Handler) showResetPassword(w http.ResponseWriter, r *http.Request) {
	token, err := resetTokenParam(r)
	if err != nil {
		writeError(w, r, err, "*Handler.showResetPassword")
		return
	}

	if _, err := h.services.PasswordResetService.ValidateToken(r.Context(), token); err != nil {
		writeError(w, r, err, "*Handler.showResetPassword")
		return
	}

	writeJSON(w, r, resetPasswordForm(token), http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	token, err := resetTokenParam(r)
	if err != nil {
		writeError(w, r, err, "*Handler.resetPassword")
		return
	}

	form, err := utils.ParseForm(w, r)
	if err != nil {
		writeError(w, r, err, "*Handler.resetPassword")
		return
	}

	err = h.services.PasswordResetService.ResetPassword(r.Context(), token, form.Get("password"))
	h.metrics.authEvent(eventReset, err)
	if err != nil {
		writeError(w, r, err, "*Handler.resetPassword")
		return
	}

	// every session of the account is gone, including this one
	h.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}

func resetTokenParam(r *http.Request) (string, error) {
	token := strings.TrimSpace(chi.URLParam(r, "token"))
	if token == "" {
		return "", ErrMissingResetToken
	}
	return token, nil
}
