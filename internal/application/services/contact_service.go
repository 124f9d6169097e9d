package services

import (
	"fmt"
	"strings"

	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/email"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/logging"
)

// ContactService forwards contact form submissions by email
type ContactService struct {
	logger *logging.ChanneledLogger
	mailer *email.Client
}

// NewContactService creates a new contact service. The mailer may be nil
// when outbound email is not configured.
func NewContactService(logger *logging.ChanneledLogger, mailer *email.Client) *ContactService {
	return &ContactService{logger: logger, mailer: mailer}
}

// Enabled reports whether outbound email is configured
func (s *ContactService) Enabled() bool {
	return s.mailer != nil
}

// Submit validates and forwards one contact form submission
func (s *ContactService) Submit(name, replyTo, message string) error {
	name = strings.TrimSpace(name)
	replyTo = strings.TrimSpace(replyTo)
	message = strings.TrimSpace(message)

	if name == "" || message == "" {
		return fmt.Errorf("name and message are required")
	}
	if s.mailer == nil {
		return fmt.Errorf("contact email is not configured")
	}

	if err := s.mailer.SendContactMessage(name, replyTo, message); err != nil {
		s.logger.Mail().Error("Failed to send contact message", "name", name, "error", err.Error())
		return err
	}
	s.logger.Mail().Info("Contact message forwarded", "name", name)
	return nil
}
