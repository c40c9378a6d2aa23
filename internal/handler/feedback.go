package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/studcouncil/council-api/internal/model"
	"github.com/studcouncil/council-api/internal/server"
	"github.com/studcouncil/council-api/internal/validation"
)

// FeedbackService is the business surface the feedback handler needs.
type FeedbackService interface {
	List(ctx context.Context, feedbackType string) ([]model.Feedback, error)
	Create(ctx context.Context, f model.Feedback) (model.Feedback, error)
}

// FeedbackHandler serves the feedback resource: listing with an
// optional category filter and immutable submissions.
type FeedbackHandler struct {
	Handler
	service FeedbackService
}

// NewFeedbackHandler constructs a FeedbackHandler.
func NewFeedbackHandler(s *server.Server, svc FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

// ListFeedbackRequest carries the optional exact-match category filter.
type ListFeedbackRequest struct {
	Type string `query:"type"`
}

func (r *ListFeedbackRequest) Validate() error {
	return nil
}

// CreateFeedbackRequest is a feedback submission. Type, name, and
// message are required; email and title default to empty strings.
type CreateFeedbackRequest struct {
	Type    string `json:"type" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email"`
	Title   string `json:"title"`
	Message string `json:"message" validate:"required"`
}

func (r *CreateFeedbackRequest) Validate() error {
	return validation.Struct(r)
}

// ListFeedbackResponse wraps the listing under the "feedback" key.
type ListFeedbackResponse struct {
	Feedback []model.FeedbackResponse `json:"feedback"`
}

// CreateFeedbackResponse acknowledges a stored submission.
type CreateFeedbackResponse struct {
	ID      int64 `json:"id"`
	Success bool  `json:"success"`
}

// List returns feedback records newest-first, filtered by category when
// ?type= is present.
func (h *FeedbackHandler) List(c echo.Context, req *ListFeedbackRequest) (ListFeedbackResponse, error) {
	items, err := h.service.List(c.Request().Context(), req.Type)
	if err != nil {
		return ListFeedbackResponse{}, err
	}

	responses := make([]model.FeedbackResponse, 0, len(items))
	for _, f := range items {
		responses = append(responses, f.Response())
	}

	return ListFeedbackResponse{Feedback: responses}, nil
}

// Create stores a submission and returns the assigned id. The
// best-effort notification fires inside the service after the insert
// commits.
func (h *FeedbackHandler) Create(c echo.Context, req *CreateFeedbackRequest) (CreateFeedbackResponse, error) {
	stored, err := h.service.Create(c.Request().Context(), model.Feedback{
		Type:    req.Type,
		Name:    req.Name,
		Email:   req.Email,
		Title:   req.Title,
		Message: req.Message,
	})
	if err != nil {
		return CreateFeedbackResponse{}, err
	}

	return CreateFeedbackResponse{ID: stored.ID, Success: true}, nil
}
