package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/studcouncil/council-api/internal/model"
)

func TestTypeLabel(t *testing.T) {
	assert.Equal(t, "Review", TypeLabel(model.FeedbackTypeReview))
	assert.Equal(t, "Initiative", TypeLabel(model.FeedbackTypeInitiative))
	assert.Equal(t, "Question", TypeLabel(model.FeedbackTypeQuestion))

	// The type column is free text; unknown values pass through.
	assert.Equal(t, "complaint", TypeLabel("complaint"))
}

func TestFormatMessage(t *testing.T) {
	got := FormatMessage(model.Feedback{
		Type:    model.FeedbackTypeInitiative,
		Name:    "Alex",
		Email:   "alex@example.com",
		Title:   "Recycling",
		Message: "More bins please",
	})

	assert.Equal(t, "New Initiative\n\nName: Alex\nEmail: alex@example.com\nTitle: Recycling\n\nMore bins please", got)
}

func TestFormatMessageEmptyTitle(t *testing.T) {
	got := FormatMessage(model.Feedback{
		Type:    model.FeedbackTypeReview,
		Name:    "Alex",
		Message: "hi",
	})

	assert.Contains(t, got, "Title: not specified")
}

func TestFormatSubject(t *testing.T) {
	got := FormatSubject(model.Feedback{Type: model.FeedbackTypeQuestion, Name: "Dana"})

	assert.Equal(t, "New Question from Dana", got)
}
