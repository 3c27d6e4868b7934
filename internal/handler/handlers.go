package handler

import (
	"github.com/MKhiriev/crrd/internal/config"
	"github.com/MKhiriev/crrd/internal/handler/http"
	"github.com/MKhiriev/crrd/internal/logger"
	"github.com/MKhiriev/crrd/internal/ratelimit"
	"github.com/MKhiriev/crrd/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// Dependencies are the non-service collaborators of the transport layer.
// Health may be nil, in which case /healthz always reports ok.
type Dependencies struct {
	Limiter ratelimit.Limiter
	Health  http.HealthChecker
}

func NewHandlers(services *service.Services, deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, deps.Limiter, deps.Health, cfg, logger),
	}, nil
}
