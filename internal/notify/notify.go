package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"sunstate/server/internal/models"
)

// Service composes and dispatches contact-form notifications to the
// brokerage's enquiry inbox.
type Service struct {
	mailer    Mailer
	logger    *logrus.Logger
	recipient string
	sender    string
	location  *time.Location
}

// NewService creates a notification service. Timestamps in the composed body
// use the Brisbane timezone; if tzdata is unavailable a fixed AEST offset is
// used (Queensland has no daylight saving).
func NewService(mailer Mailer, recipient, sender string, logger *logrus.Logger) *Service {
	loc, err := time.LoadLocation("Australia/Brisbane")
	if err != nil {
		logger.WithError(err).Warn("Failed to load Brisbane timezone, using fixed AEST offset")
		loc = time.FixedZone("AEST", 10*60*60)
	}

	return &Service{
		mailer:    mailer,
		logger:    logger,
		recipient: recipient,
		sender:    sender,
		location:  loc,
	}
}

// ComposeContact builds the plaintext notification body for a contact
// submission. clientIP may be empty when no forwarding header was present.
func (s *Service) ComposeContact(sub models.ContactSubmission, clientIP string) string {
	subject := sub.Subject
	if subject == "" {
		subject = "General enquiry"
	}
	phone := sub.Phone
	if phone == "" {
		phone = "Not provided"
	}

	body := fmt.Sprintf(
		"New contact form submission\n"+
			"===========================\n\n"+
			"Name:    %s\n"+
			"Email:   %s\n"+
			"Phone:   %s\n"+
			"Subject: %s\n\n"+
			"Message:\n%s\n\n"+
			"Received: %s",
		sub.Name,
		sub.Email,
		phone,
		subject,
		sub.Message,
		time.Now().In(s.location).Format("Mon, 2 Jan 2006 15:04:05 MST"),
	)

	if clientIP != "" {
		body += fmt.Sprintf("\nClient IP: %s", clientIP)
	}
	return body
}

// DispatchContact composes the notification and hands it to the mailer.
func (s *Service) DispatchContact(ctx context.Context, sub models.ContactSubmission, clientIP string) error {
	msg := Message{
		To:      s.recipient,
		From:    s.sender,
		Subject: "Website enquiry from " + sub.Name,
		Body:    s.ComposeContact(sub, clientIP),
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to dispatch contact notification: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"email":   sub.Email,
		"subject": msg.Subject,
	}).Info("Contact notification dispatched")
	return nil
}
