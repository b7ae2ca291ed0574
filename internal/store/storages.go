package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/portfolio-admin/internal/config"
	"github.com/MKhiriev/portfolio-admin/internal/logger"
)

// Storages aggregates every persistence component the services depend on.
type Storages struct {
	OTPRepository        OTPRepository
	MessageRepository    MessageRepository
	CredentialRepository CredentialRepository
	AttemptStore         AttemptStore
}

// NewStorages opens the embedded database, applies pending migrations, and
// wires all repositories plus the in-memory attempt store.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		OTPRepository:        NewOTPRepository(db, log),
		MessageRepository:    NewMessageRepository(db, log),
		CredentialRepository: NewCredentialRepository(db, log),
		AttemptStore:         NewAttemptStore(),
	}, nil
}
