package service

import (
	"github.com/MKhiriev/portfolio-admin/internal/config"
	"github.com/MKhiriev/portfolio-admin/internal/logger"
	"github.com/MKhiriev/portfolio-admin/internal/mailer"
	"github.com/MKhiriev/portfolio-admin/internal/store"
)

// Services aggregates every business-logic component the handlers depend on.
type Services struct {
	AuthService    AuthService
	OTPService     OTPService
	MessageService MessageService
}

// NewServices wires the repositories and the mail sender into the full
// service layer.
func NewServices(storages *store.Storages, sender mailer.Sender, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.CredentialRepository, storages.AttemptStore, cfg.Auth, logger),
		OTPService:     NewOTPService(storages.OTPRepository, sender, cfg.Auth, logger),
		MessageService: NewMessageService(storages.MessageRepository, logger),
	}
}
