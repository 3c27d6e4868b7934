package http

import (
	"context"
	"time"

	"github.com/MKhiriev/crrd/internal/config"
	"github.com/MKhiriev/crrd/internal/logger"
	"github.com/MKhiriev/crrd/internal/ratelimit"
	"github.com/MKhiriev/crrd/internal/service"
)

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	limiter  ratelimit.Limiter
	health   HealthChecker
	metrics  *metrics

	cookie         cookieSettings
	authRateLimit  int
	authRateWindow time.Duration
	requestTimeout time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// cookieSettings describes the session cookie written on login.
type cookieSettings struct {
	name   string
	secure bool
	maxAge time.Duration
}

func NewHandler(services *service.Services, limiter ratelimit.Limiter, health HealthChecker, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		limiter:  limiter,
		health:   health,
		metrics:  newMetrics(),
		cookie: cookieSettings{
			name:   cfg.Session.CookieName,
			secure: cfg.Session.SecureCookie,
			maxAge: cfg.Session.Duration,
		},
		authRateLimit:  cfg.App.AuthRateLimit,
		authRateWindow: cfg.App.AuthRateWindow,
		requestTimeout: cfg.Server.RequestTimeout,
		now:            time.Now,
		logger:         logger,
	}
}
