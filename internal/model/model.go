// Package model defines the persisted record types and their wire
// representations.
//
// Records keep native time types for database scanning; the JSON shapes
// returned to clients render timestamps as plain strings, which is why
// each record has a separate response struct.
package model

import "time"

// Feedback category values the frontend submits. The column is free
// text, so these are labels rather than an enforced enum.
const (
	FeedbackTypeReview     = "feedback"
	FeedbackTypeInitiative = "initiative"
	FeedbackTypeQuestion   = "question"
)

// Feedback is a user-submitted message tagged with a category.
// Records are immutable after insert.
type Feedback struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedbackResponse is the client-facing shape of a feedback record.
type FeedbackResponse struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// Response converts a record into its wire shape.
func (f Feedback) Response() FeedbackResponse {
	return FeedbackResponse{
		ID:        f.ID,
		Type:      f.Type,
		Name:      f.Name,
		Email:     f.Email,
		Title:     f.Title,
		Message:   f.Message,
		CreatedAt: f.CreatedAt.Format(time.DateTime),
	}
}

// NewsPost is an authored article. The date is assigned by the database
// on insert and never modified by updates.
type NewsPost struct {
	ID      int64     `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Author  string    `json:"author"`
	Date    time.Time `json:"date"`
}

// NewsPostResponse is the client-facing shape of a news post.
type NewsPostResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
	Date    string `json:"date"`
}

// Response converts a post into its wire shape.
func (n NewsPost) Response() NewsPostResponse {
	return NewsPostResponse{
		ID:      n.ID,
		Title:   n.Title,
		Content: n.Content,
		Author:  n.Author,
		Date:    n.Date.Format(time.DateOnly),
	}
}
