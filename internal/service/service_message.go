package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/portfolio-admin/internal/logger"
	"github.com/MKhiriev/portfolio-admin/internal/store"
	"github.com/MKhiriev/portfolio-admin/models"
	"github.com/google/uuid"
)

// emailPattern accepts anything shaped like local@domain.tld. Deliverability
// is not checked; the address is only used for display in the admin panel.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	minNameLength    = 2
	minMessageLength = 10
)

type messageService struct {
	messages store.MessageRepository
	logger   *logger.Logger

	now func() time.Time
}

// NewMessageService wires the message repository into a [MessageService].
func NewMessageService(messages store.MessageRepository, logger *logger.Logger) MessageService {
	return &messageService{
		messages: messages,
		logger:   logger,
		now:      time.Now,
	}
}

// Submit validates and normalizes the submission, assigns it an ID and a
// receipt time, and stores it unread.
func (s *messageService) Submit(ctx context.Context, request models.ContactRequest) (models.ContactMessage, error) {
	log := logger.FromContext(ctx)

	name := strings.TrimSpace(request.Name)
	email := strings.ToLower(strings.TrimSpace(request.Email))
	body := strings.TrimSpace(request.Message)

	if utf8.RuneCountInString(name) < minNameLength {
		return models.ContactMessage{}, ErrInvalidName
	}
	if !emailPattern.MatchString(email) {
		return models.ContactMessage{}, ErrInvalidEmail
	}
	if utf8.RuneCountInString(body) < minMessageLength {
		return models.ContactMessage{}, ErrShortMessage
	}

	message := models.ContactMessage{
		ID:      uuid.NewString(),
		Name:    name,
		Email:   email,
		Message: body,
		Date:    s.now(),
		Read:    false,
	}

	if err := s.messages.Save(ctx, message); err != nil {
		log.Err(err).Str("func", "Submit").Msg("error saving contact message")
		return models.ContactMessage{}, fmt.Errorf("error saving contact message: %w", err)
	}

	log.Info().Str("message_id", message.ID).Msg("contact message received")
	return message, nil
}

// List returns all stored messages, newest first.
func (s *messageService) List(ctx context.Context) ([]models.ContactMessage, error) {
	return s.messages.List(ctx)
}

// MarkRead overwrites the read flag of each given message, matched by ID.
func (s *messageService) MarkRead(ctx context.Context, messages []models.ContactMessage) error {
	return s.messages.Update(ctx, messages)
}
