package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/folio-api/internal/domain"
	"github.com/phrazzld/folio-api/internal/platform/logger"
	"github.com/phrazzld/folio-api/internal/redact"
	"github.com/phrazzld/folio-api/internal/store"
)

// ContactReply is the acknowledgement shown to visitors.
const ContactReply = "Thank you for your message! I'll get back to you soon."

// ContactService accepts public contact form submissions.
type ContactService struct {
	messages store.Table[domain.ContactMessage]
	timeFunc func() time.Time // Injectable for testing
	logger   *slog.Logger
}

// NewContactService creates a ContactService storing into messages.
func NewContactService(messages store.Table[domain.ContactMessage], logger *slog.Logger) *ContactService {
	if messages == nil {
		panic("messages cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactService{
		messages: messages,
		timeFunc: time.Now,
		logger:   logger.With(slog.String("component", "contact_service")),
	}
}

// Submit validates and stores a message. Nothing is written when validation
// fails.
func (s *ContactService) Submit(ctx context.Context, in domain.ContactInput) (domain.ContactReceipt, error) {
	if err := domain.Validate(in); err != nil {
		return domain.ContactReceipt{}, err
	}

	if _, err := s.messages.Insert(ctx, in.Assignments()); err != nil {
		return domain.ContactReceipt{}, NewServiceError("contact", "submit", "failed to store message", err)
	}

	subject := ""
	if in.Subject != nil {
		subject = *in.Subject
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("new contact message",
		slog.String("name", in.Name),
		slog.String("email", redact.String(in.Email)),
		slog.String("subject", subject))

	return domain.ContactReceipt{
		Success:   true,
		Message:   ContactReply,
		Timestamp: s.timeFunc().Format(time.RFC3339),
	}, nil
}
