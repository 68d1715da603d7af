package services

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/models"
)

// Notifier pushes operator notifications when a visitor submits the contact
// form. Both channels are fire-and-forget: a delivery failure is logged and
// never surfaced to the visitor.
type Notifier struct {
	cfg    map[string]string
	logger zerolog.Logger
}

func NewNotifier(cfg map[string]string) *Notifier {
	return &Notifier{
		cfg:    cfg,
		logger: log.With().Str("serviceName", "notifier").Logger(),
	}
}

// ContactMessageReceived notifies the operator about a new message over
// every configured channel. Channels without credentials are skipped.
func (n *Notifier) ContactMessageReceived(msg *models.ContactMessage) {
	if to := config.GetString(n.cfg, "NOTIFY_EMAIL", ""); to != "" {
		subject := fmt.Sprintf("New contact message: %s", msg.Subject)
		body := fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message)
		if err := SendEmail(n.cfg, subject, body, []string{to}); err != nil {
			n.logger.Error().Err(err).Str("messageID", msg.ID.String()).Msg("Failed to send contact notification email")
		}
	}

	if to := config.GetString(n.cfg, "NOTIFY_SMS_TO", ""); to != "" {
		if err := n.sendSMS(to, fmt.Sprintf("New portfolio contact from %s: %s", msg.Name, msg.Subject)); err != nil {
			n.logger.Error().Err(err).Str("messageID", msg.ID.String()).Msg("Failed to send contact notification SMS")
		}
	}
}

func (n *Notifier) sendSMS(to, body string) error {
	sid := config.GetString(n.cfg, "TWILIO_ACCOUNT_SID", "")
	token := config.GetString(n.cfg, "TWILIO_AUTH_TOKEN", "")
	from := config.GetString(n.cfg, "TWILIO_FROM_NUMBER", "")
	if sid == "" || token == "" || from == "" {
		return fmt.Errorf("twilio credentials are not configured")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: sid,
		Password: token,
	})

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)

	_, err := client.Api.CreateMessage(params)
	return err
}
