package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/portfolio-admin/internal/logger"
)

// credentialID is the fixed primary key of the single credential row.
// Exactly one admin credential exists system-wide; there are no user accounts.
const credentialID = 1

// credentialRepository is the SQLite-backed implementation of
// [CredentialRepository]. The password-change flow writes the new hash here,
// and the stored row overrides the configured hash on subsequent logins.
type credentialRepository struct {
	logger *logger.Logger
	db     *DB

	// now is injected for tests; defaults to time.Now.
	now func() time.Time
}

// NewCredentialRepository constructs a [CredentialRepository] backed by the
// provided database connection and logger.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// PasswordHash returns the stored override hash.
//
// Error handling:
//   - No override row → [ErrNoCredentialStored].
//   - Any other driver-level error → wrapped [ErrScanningRow].
func (r *credentialRepository) PasswordHash(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("password_hash").
		From("credentials").
		Where(sq.Eq{"id": credentialID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.PasswordHash").Msg("error building query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var hash string
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoCredentialStored
		}

		log.Err(err).Str("func", "*credentialRepository.PasswordHash").Msg("error scanning row")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return hash, nil
}

// SavePasswordHash stores hash as the new override, replacing any prior one.
func (r *credentialRepository) SavePasswordHash(ctx context.Context, hash string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("credentials").
		Columns("id", "password_hash", "updated_at").
		Values(credentialID, hash, r.now()).
		Suffix("ON CONFLICT(id) DO UPDATE SET password_hash = excluded.password_hash, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.SavePasswordHash").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*credentialRepository.SavePasswordHash").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
