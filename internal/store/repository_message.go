package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/portfolio-admin/internal/logger"
	"github.com/MKhiriev/portfolio-admin/models"
)

// messageRepository is the SQLite-backed implementation of [MessageRepository].
type messageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMessageRepository constructs a [MessageRepository] backed by the provided
// database connection and logger.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// Save stores a new contact-form message.
func (r *messageRepository) Save(ctx context.Context, message models.ContactMessage) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("messages").
		Columns("id", "name", "email", "message", "date", "read").
		Values(message.ID, message.Name, message.Email, message.Message, message.Date, message.Read).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.Save").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*messageRepository.Save").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// List returns all stored messages, newest first.
func (r *messageRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("id", "name", "email", "message", "date", "read").
		From("messages").
		OrderBy("date DESC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.List").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.List").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.ContactMessage, 0)
	for rows.Next() {
		var message models.ContactMessage
		if err := rows.Scan(&message.ID, &message.Name, &message.Email, &message.Message, &message.Date, &message.Read); err != nil {
			log.Err(err).Str("func", "*messageRepository.List").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*messageRepository.List").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}

// Update overwrites the read flag of each given message, matched by ID.
// All updates run inside a single transaction; an unknown ID rolls the whole
// batch back with [ErrMessageNotFound].
func (r *messageRepository) Update(ctx context.Context, messages []models.ContactMessage) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.Update").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, message := range messages {
		query, args, err := sq.Update("messages").
			Set("read", message.Read).
			Where(sq.Eq{"id": message.ID}).
			ToSql()
		if err != nil {
			log.Err(err).Str("func", "*messageRepository.Update").Msg("error building query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "*messageRepository.Update").Msg("error executing statement")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			log.Err(err).Str("func", "*messageRepository.Update").Msg("error reading rows affected")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			log.Error().Str("id", message.ID).Msg("message to update was not found")
			return ErrMessageNotFound
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*messageRepository.Update").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
