package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studcouncil/council-api/internal/config"
	"github.com/studcouncil/council-api/internal/model"
)

func nopLogger() *zerolog.Logger {
	log := zerolog.Nop()
	return &log
}

type recordingChannel struct {
	name    string
	enabled bool
	err     error
	sent    []model.Feedback
}

func (c *recordingChannel) Name() string  { return c.name }
func (c *recordingChannel) Enabled() bool { return c.enabled }

func (c *recordingChannel) Send(ctx context.Context, f model.Feedback) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, f)
	return nil
}

func TestDispatcherSkipsDisabledChannels(t *testing.T) {
	on := &recordingChannel{name: "on", enabled: true}
	off := &recordingChannel{name: "off", enabled: false}
	d := NewDispatcherWithChannels(nopLogger(), on, off)

	d.Dispatch(context.Background(), model.Feedback{ID: 1, Type: "question", Name: "Dana", Message: "hi"})

	assert.Len(t, on.sent, 1)
	assert.Empty(t, off.sent)
}

func TestDispatcherContinuesPastFailure(t *testing.T) {
	failing := &recordingChannel{name: "broken", enabled: true, err: errors.New("unreachable")}
	working := &recordingChannel{name: "ok", enabled: true}
	d := NewDispatcherWithChannels(nopLogger(), failing, working)

	d.Dispatch(context.Background(), model.Feedback{ID: 2})

	assert.Len(t, working.sent, 1, "a failing channel must not block the others")
}

func TestDispatcherEnabled(t *testing.T) {
	d := NewDispatcherWithChannels(nopLogger(), &recordingChannel{enabled: false})
	assert.False(t, d.Enabled())

	d = NewDispatcherWithChannels(nopLogger(), &recordingChannel{enabled: false}, &recordingChannel{enabled: true})
	assert.True(t, d.Enabled())
}

func TestTelegramChannelDisabledWithoutCredentials(t *testing.T) {
	assert.False(t, NewTelegramChannel(config.NotifyConfig{}).Enabled())
	assert.False(t, NewTelegramChannel(config.NotifyConfig{TelegramBotToken: "t"}).Enabled())
	assert.False(t, NewTelegramChannel(config.NotifyConfig{TelegramChatID: "c"}).Enabled())
	assert.True(t, NewTelegramChannel(config.NotifyConfig{TelegramBotToken: "t", TelegramChatID: "c"}).Enabled())
}

func TestTelegramChannelSend(t *testing.T) {
	var gotPath string
	var gotBody sendMessageRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ch := NewTelegramChannelWithBase(config.NotifyConfig{
		TelegramBotToken: "123:abc",
		TelegramChatID:   "-100200",
	}, srv.URL)

	err := ch.Send(context.Background(), model.Feedback{
		Type:    model.FeedbackTypeQuestion,
		Name:    "Dana",
		Email:   "dana@example.com",
		Title:   "Schedules",
		Message: "When does the council meet?",
	})

	require.NoError(t, err)
	assert.Equal(t, "/bot123:abc/sendMessage", gotPath)
	assert.Equal(t, "-100200", gotBody.ChatID)
	assert.Contains(t, gotBody.Text, "New Question")
	assert.Contains(t, gotBody.Text, "Name: Dana")
	assert.Contains(t, gotBody.Text, "When does the council meet?")
}

func TestTelegramChannelSendNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"ok":false,"description":"bot was blocked"}`))
	}))
	defer srv.Close()

	ch := NewTelegramChannelWithBase(config.NotifyConfig{
		TelegramBotToken: "123:abc",
		TelegramChatID:   "-100200",
	}, srv.URL)

	err := ch.Send(context.Background(), model.Feedback{Type: "feedback", Name: "Alex", Message: "hi"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "bot was blocked")
}

func TestEmailChannelDisabledWithoutCredentials(t *testing.T) {
	assert.False(t, NewEmailChannel(config.NotifyConfig{}).Enabled())
	assert.False(t, NewEmailChannel(config.NotifyConfig{ResendAPIKey: "re_x"}).Enabled())
	assert.False(t, NewEmailChannel(config.NotifyConfig{
		ResendAPIKey: "re_x",
		EmailFrom:    "alerts@example.com",
	}).Enabled())
	assert.True(t, NewEmailChannel(config.NotifyConfig{
		ResendAPIKey: "re_x",
		EmailFrom:    "alerts@example.com",
		EmailTo:      "council@example.com",
	}).Enabled())
}
