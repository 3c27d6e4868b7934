package http

import (
	"net/http"

	"github.com/MKhiriev/crrd/internal/logger"
	"github.com/MKhiriev/crrd/internal/utils"
)

// writeJSON wraps utils.WriteJSON and logs encoding failures.
func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeJSON").Msg("error writing response")
	}
}
