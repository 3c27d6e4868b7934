package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/crrd/internal/app"
	"github.com/MKhiriev/crrd/internal/logger"
	"github.com/MKhiriev/crrd/internal/service"
	"github.com/MKhiriev/crrd/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrEmailAlreadyRegistered:  http.StatusConflict,
	service.ErrVanityTaken:             http.StatusConflict,
	service.ErrVanityAlreadyClaimed:    http.StatusConflict,
	service.ErrUserNotFound:            http.StatusNotFound,
	service.ErrProfileNotFound:         http.StatusNotFound,
	service.ErrAvatarsDisabled:         http.StatusNotFound,
	service.ErrTokenIsExpiredOrInvalid: http.StatusBadRequest,
	ErrMissingResetToken:               http.StatusBadRequest,
	utils.ErrUnsupportedBody:           http.StatusBadRequest,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:     app.MsgInvalidDataProvided,
	service.ErrInvalidCredentials:      app.MsgInvalidCredentials,
	service.ErrEmailAlreadyRegistered:  app.MsgEmailAlreadyRegistered,
	service.ErrVanityTaken:             app.MsgVanityTaken,
	service.ErrVanityAlreadyClaimed:    app.MsgVanityAlreadyClaimed,
	service.ErrUserNotFound:            app.MsgProfileNotFound,
	service.ErrProfileNotFound:         app.MsgProfileNotFound,
	service.ErrAvatarsDisabled:         app.MsgAvatarsDisabled,
	service.ErrTokenIsExpiredOrInvalid: app.MsgTokenIsExpiredOrInvalid,
	ErrMissingResetToken:               app.MsgTokenIsExpiredOrInvalid,
	utils.ErrUnsupportedBody:           app.MsgInvalidDataProvided,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

// writeError answers with the status and user-facing message mapped from err.
// Unmapped errors are logged as failures and reported as 500.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}
	http.Error(w, messageFromError(err), status)
}
