package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/portfolio-admin/internal/logger"
	"github.com/MKhiriev/portfolio-admin/models"
)

// otpRepository is the SQLite-backed implementation of [OTPRepository].
// Keeping the codes in the embedded database (instead of a flat file reloaded
// on every verification) makes the restart-survival behaviour an explicit
// durability contract.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type otpRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOTPRepository constructs an [OTPRepository] backed by the provided
// database connection and logger.
func NewOTPRepository(db *DB, logger *logger.Logger) OTPRepository {
	logger.Debug().Msg("creating otp repository")
	return &otpRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert stores the code for its email, overwriting any existing row.
// One live code per email is a table-level invariant: email is the primary key
// and the conflict clause replaces the previous code and expiry in place.
func (r *otpRepository) Upsert(ctx context.Context, code models.OTPCode) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("otp_codes").
		Columns("email", "code", "expires_at").
		Values(code.Email, code.Code, code.ExpiresAt).
		Suffix("ON CONFLICT(email) DO UPDATE SET code = excluded.code, expires_at = excluded.expires_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*otpRepository.Upsert").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*otpRepository.Upsert").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Find returns the stored code for the email.
//
// Error handling:
//   - No matching row → [ErrOTPNotFound].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *otpRepository) Find(ctx context.Context, email string) (models.OTPCode, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("email", "code", "expires_at").
		From("otp_codes").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*otpRepository.Find").Msg("error building query")
		return models.OTPCode{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var code models.OTPCode
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&code.Email, &code.Code, &code.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.OTPCode{}, ErrOTPNotFound
		}

		log.Err(err).Str("func", "*otpRepository.Find").Msg("error scanning row")
		return models.OTPCode{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return code, nil
}

// Delete removes the stored code for the email. Single use is enforced by
// calling Delete immediately after a successful verification.
func (r *otpRepository) Delete(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("otp_codes").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*otpRepository.Delete").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*otpRepository.Delete").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// PurgeExpired removes every code whose expiry lies at or before now.
// Called opportunistically after each store operation, not from a background
// timer.
func (r *otpRepository) PurgeExpired(ctx context.Context, now time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("otp_codes").
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*otpRepository.PurgeExpired").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*otpRepository.PurgeExpired").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
