package notify

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/studcouncil/council-api/internal/config"
	"github.com/studcouncil/council-api/internal/model"
)

// EmailChannel relays the alert over email via Resend. It is disabled
// unless the API key and both addresses are configured.
type EmailChannel struct {
	client *resend.Client
	from   string
	to     string
}

// NewEmailChannel builds the channel from notify config.
func NewEmailChannel(cfg config.NotifyConfig) *EmailChannel {
	var client *resend.Client
	if cfg.ResendAPIKey != "" {
		client = resend.NewClient(cfg.ResendAPIKey)
	}

	return &EmailChannel{
		client: client,
		from:   cfg.EmailFrom,
		to:     cfg.EmailTo,
	}
}

func (e *EmailChannel) Name() string {
	return "email"
}

func (e *EmailChannel) Enabled() bool {
	return e.client != nil && e.from != "" && e.to != ""
}

// Send relays the formatted alert as a plain-text email.
func (e *EmailChannel) Send(ctx context.Context, f model.Feedback) error {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Council API <%s>", e.from),
		To:      []string{e.to},
		Subject: FormatSubject(f),
		Text:    FormatMessage(f),
	}

	if _, err := e.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
