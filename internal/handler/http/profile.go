package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// publicProfile renders the public fields of the account owning the vanity
// in the path. Email, id and password hash are never part of the response.
func (h *Handler) publicProfile(w http.ResponseWriter, r *http.Request) {
	vanity := chi.URLParam(r, "vanity")

	profile, err := h.services.ProfileService.GetPublicProfile(r.Context(), vanity)
	if err != nil {
		writeError(w, r, err, "*Handler.publicProfile")
		return
	}

	writeJSON(w, r, profile, http.StatusOK)
}
