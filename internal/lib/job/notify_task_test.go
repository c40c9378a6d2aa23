package job

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studcouncil/council-api/internal/model"
)

func TestNewFeedbackNotifyTask(t *testing.T) {
	f := model.Feedback{
		ID:        17,
		Type:      "initiative",
		Name:      "Alex",
		Email:     "alex@example.com",
		Title:     "Recycling",
		Message:   "More bins please",
		CreatedAt: time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC),
	}

	task, err := NewFeedbackNotifyTask(f)
	require.NoError(t, err)
	assert.Equal(t, TaskFeedbackNotify, task.Type())

	var payload FeedbackNotifyPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, f, payload.Feedback(), "payload must reconstruct the full record")
}
