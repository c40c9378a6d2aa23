package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFeedbackResponseFormatsTimestamp(t *testing.T) {
	f := Feedback{
		ID:        3,
		Type:      FeedbackTypeQuestion,
		Name:      "Dana",
		Message:   "hi",
		CreatedAt: time.Date(2025, 8, 31, 9, 5, 7, 123456789, time.UTC),
	}

	got := f.Response()

	assert.Equal(t, "2025-08-31 09:05:07", got.CreatedAt, "sub-second precision is dropped")
	assert.Equal(t, int64(3), got.ID)
}

func TestNewsPostResponseFormatsDate(t *testing.T) {
	n := NewsPost{ID: 1, Title: "t", Content: "c", Author: "a", Date: time.Date(2025, 8, 30, 15, 0, 0, 0, time.UTC)}

	got := n.Response()

	assert.Equal(t, "2025-08-30", got.Date, "time of day never appears in the date")
}
