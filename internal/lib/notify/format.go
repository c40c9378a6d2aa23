package notify

import (
	"fmt"

	"github.com/studcouncil/council-api/internal/model"
)

// typeLabels maps feedback categories to the headers used in outbound
// messages. The column is free text, so unknown categories pass through
// as-is.
var typeLabels = map[string]string{
	model.FeedbackTypeReview:     "Review",
	model.FeedbackTypeInitiative: "Initiative",
	model.FeedbackTypeQuestion:   "Question",
}

// titlePlaceholder stands in for an omitted title.
const titlePlaceholder = "not specified"

// TypeLabel returns the human-readable label for a feedback category.
func TypeLabel(feedbackType string) string {
	if label, ok := typeLabels[feedbackType]; ok {
		return label
	}
	return feedbackType
}

// FormatMessage renders the human-readable alert body for a feedback
// record: the category header, then name, email, title, and message.
func FormatMessage(f model.Feedback) string {
	title := f.Title
	if title == "" {
		title = titlePlaceholder
	}

	return fmt.Sprintf("New %s\n\nName: %s\nEmail: %s\nTitle: %s\n\n%s",
		TypeLabel(f.Type),
		f.Name,
		f.Email,
		title,
		f.Message,
	)
}

// FormatSubject renders the subject line used by the email channel.
func FormatSubject(f model.Feedback) string {
	return fmt.Sprintf("New %s from %s", TypeLabel(f.Type), f.Name)
}
