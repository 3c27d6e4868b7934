package http

import (
	"net/http"

	"github.com/MKhiriev/crrd/internal/app"
	"github.com/MKhiriev/crrd/internal/logger"
	"github.com/MKhiriev/crrd/models"
)

func (h *Handler) landing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(app.MsgWelcome))
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())

	writeJSON(w, r, buildInfo, http.StatusOK)
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		if err := h.health.Ping(r.Context()); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.healthz").Msg("health check failed")
			writeJSON(w, r, models.HealthResponse{Status: app.MsgServiceUnavailable}, http.StatusServiceUnavailable)
			return
		}
	}

	writeJSON(w, r, models.HealthResponse{Status: "ok"}, http.StatusOK)
}
