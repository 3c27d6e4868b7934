package service

import (
	"github.com/MKhiriev/crrd/internal/adapter"
	"github.com/MKhiriev/crrd/internal/config"
	"github.com/MKhiriev/crrd/internal/logger"
	"github.com/MKhiriev/crrd/internal/store"
	"github.com/MKhiriev/crrd/models"
)

type Services struct {
	AuthService          AuthService
	SessionService       SessionService
	ProfileService       ProfileService
	PasswordResetService PasswordResetService
	AppInfoService       AppInfoService
}

// Adapters groups the outbound integrations used by the services.
// AvatarStorage may be nil.
type Adapters struct {
	Mailer        adapter.Mailer
	AvatarStorage adapter.AvatarStorage
}

func NewServices(storages store.Storages, adapters Adapters, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	sessionService := NewSessionService(storages.SessionStorage, cfg, logger)

	return &Services{
		AuthService:          NewAuthService(storages.UserRepository, logger),
		SessionService:       sessionService,
		ProfileService:       NewProfileService(storages.UserRepository, adapters.AvatarStorage, logger),
		PasswordResetService: NewPasswordResetService(storages.UserRepository, sessionService, adapters.Mailer, cfg.App, logger),
		AppInfoService:       NewAppInfoService(buildInfo, logger),
	}
}
