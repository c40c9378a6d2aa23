// Package notify sends best-effort alerts after a feedback submission.
//
// Two symmetric delivery channels exist: a Telegram chat message and a
// Resend email. A channel whose credentials are absent from config is a
// silent no-op. Delivery failures are logged and discarded — the
// dispatcher never raises, never retries, and never influences the
// write that triggered it.
package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/studcouncil/council-api/internal/config"
	"github.com/studcouncil/council-api/internal/model"
)

// Channel is a single outbound delivery mechanism.
type Channel interface {
	// Name identifies the channel in logs.
	Name() string

	// Enabled reports whether the channel has the credentials it needs.
	Enabled() bool

	// Send delivers the alert for one feedback record.
	Send(ctx context.Context, f model.Feedback) error
}

// Dispatcher fans a feedback record out to all configured channels.
type Dispatcher struct {
	channels []Channel
	logger   *zerolog.Logger
}

// NewDispatcher builds a dispatcher with the telegram and email
// channels from config.
func NewDispatcher(cfg *config.Config, logger *zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		channels: []Channel{
			NewTelegramChannel(cfg.Notify),
			NewEmailChannel(cfg.Notify),
		},
		logger: logger,
	}
}

// NewDispatcherWithChannels builds a dispatcher over explicit channels.
func NewDispatcherWithChannels(logger *zerolog.Logger, channels ...Channel) *Dispatcher {
	return &Dispatcher{
		channels: channels,
		logger:   logger,
	}
}

// Enabled reports whether at least one channel is configured.
func (d *Dispatcher) Enabled() bool {
	for _, ch := range d.channels {
		if ch.Enabled() {
			return true
		}
	}
	return false
}

// Dispatch sends the alert on every enabled channel.
//
// It deliberately has no error return: failures are absorbed here so
// callers cannot accidentally couple the primary write to delivery.
func (d *Dispatcher) Dispatch(ctx context.Context, f model.Feedback) {
	for _, ch := range d.channels {
		if !ch.Enabled() {
			continue
		}

		if err := ch.Send(ctx, f); err != nil {
			d.logger.Warn().
				Err(err).
				Str("channel", ch.Name()).
				Int64("feedback_id", f.ID).
				Msg("notification delivery failed")
			continue
		}

		d.logger.Info().
			Str("channel", ch.Name()).
			Int64("feedback_id", f.ID).
			Msg("notification delivered")
	}
}
