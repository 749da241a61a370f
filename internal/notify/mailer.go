package notify

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/sirupsen/logrus"
)

// Message is a plaintext email notification.
type Message struct {
	To      string
	From    string
	Subject string
	Body    string
}

// Mailer delivers a notification message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SESMailer delivers notifications through AWS SES.
type SESMailer struct {
	client *ses.Client
}

func NewSESMailer(ctx context.Context, region string) (*SESMailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SESMailer{client: ses.NewFromConfig(cfg)}, nil
}

func (m *SESMailer) Send(ctx context.Context, msg Message) error {
	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: &msg.From,
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: &msg.Subject},
			Body: &types.Body{
				Text: &types.Content{Data: &msg.Body},
			},
		},
	})
	return err
}

// LogMailer writes the composed notification to the log instead of sending
// it. Used in development mode.
type LogMailer struct {
	logger *logrus.Logger
}

func NewLogMailer(logger *logrus.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.logger.WithFields(logrus.Fields{
		"to":      msg.To,
		"subject": msg.Subject,
	}).Info("Contact notification (not sent):\n" + msg.Body)
	return nil
}

// NoopMailer accepts every message without delivering it. Used when no
// delivery credentials are configured; the caller still reports success.
type NoopMailer struct{}

func (NoopMailer) Send(context.Context, Message) error {
	return nil
}
