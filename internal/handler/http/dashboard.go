package http

import (
	"net/http"

	"github.com/MKhiriev/crrd/internal/logger"
	"github.com/MKhiriev/crrd/internal/utils"
	"github.com/MKhiriev/crrd/models"
)

func (h *Handler) showDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoSessionInContext, "*Handler.showDashboard")
		return
	}

	user, err := h.services.ProfileService.GetOwnProfile(ctx, session.UserID)
	if err != nil {
		writeError(w, r, err, "*Handler.showDashboard")
		return
	}

	writeJSON(w, r, models.DashboardResponse{
		User:            user,
		Form:            dashboardForm(!user.HasVanity()),
		VanityClaimable: !user.HasVanity(),
	}, http.StatusOK)
}

// updateDashboard overwrites the caller's profile and, when a vanity is
// submitted, claims it. The user id always comes from the session, never
// from the form.
func (h *Handler) updateDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoSessionInContext, "*Handler.updateDashboard")
		return
	}

	form, err := utils.ParseForm(w, r)
	if err != nil {
		writeError(w, r, err, "*Handler.updateDashboard")
		return
	}

	update := models.DashboardUpdate{
		Profile: models.Profile{
			DisplayName: form.Get("display_name"),
			AvatarURL:   form.Get("avatar_url"),
			Bio:         form.Get("bio"),
			CardSize:    form.Get("card_size"),
			Twitter:     form.Get("twitter"),
			GitHub:      form.Get("github"),
			Website:     form.Get("website"),
		},
		Vanity: form.Get("vanity"),
	}

	updatedUser, err := h.services.ProfileService.UpdateDashboard(ctx, session.UserID, update)
	if update.Vanity != "" && session.Vanity == "" {
		h.metrics.authEvent(eventClaimVanity, err)
	}
	if err != nil {
		writeError(w, r, err, "*Handler.updateDashboard")
		return
	}

	if updatedUser.Vanity != session.Vanity {
		if _, err := h.services.SessionService.RefreshVanity(ctx, session, updatedUser.Vanity); err != nil {
			log.Warn().Err(err).Str("func", "*Handler.updateDashboard").Msg("error refreshing session vanity")
		}
	}

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (h *Handler) avatarUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoSessionInContext, "*Handler.avatarUpload")
		return
	}

	upload, err := h.services.ProfileService.CreateAvatarUpload(ctx, session.UserID)
	if err != nil {
		writeError(w, r, err, "*Handler.avatarUpload")
		return
	}

	writeJSON(w, r, upload, http.StatusOK)
}
