package wizard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"sunstate/server/internal/models"
)

// SimulatedSubmitter stands in for the listing backend. It waits a fixed
// delay and then acknowledges the submission. Replace it with a real
// Submitter to integrate an actual backend without touching the wizard.
type SimulatedSubmitter struct {
	delay  time.Duration
	logger *logrus.Logger
}

func NewSimulatedSubmitter(delay time.Duration, logger *logrus.Logger) *SimulatedSubmitter {
	return &SimulatedSubmitter{delay: delay, logger: logger}
}

func (s *SimulatedSubmitter) Submit(ctx context.Context, listing models.ListingSubmission) (models.SubmissionAck, error) {
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return models.SubmissionAck{}, ctx.Err()
	}

	ack := models.SubmissionAck{
		Reference:   uuid.NewString(),
		SubmittedAt: time.Now().UTC(),
	}

	s.logger.WithFields(logrus.Fields{
		"session_id":    listing.SessionID,
		"property_type": listing.Draft.PropertyType,
		"address":       listing.Draft.Address,
		"reference":     ack.Reference,
	}).Info("Listing submission accepted")

	return ack, nil
}
