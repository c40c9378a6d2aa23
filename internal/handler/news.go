package handler

import (
	"context"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/studcouncil/council-api/internal/errs"
	"github.com/studcouncil/council-api/internal/model"
	"github.com/studcouncil/council-api/internal/server"
	"github.com/studcouncil/council-api/internal/validation"
)

// NewsService is the business surface the news handler needs.
type NewsService interface {
	List(ctx context.Context) ([]model.NewsPost, error)
	Create(ctx context.Context, n model.NewsPost) (model.NewsPost, error)
	Update(ctx context.Context, n model.NewsPost) (model.NewsPost, error)
	Delete(ctx context.Context, id int64) error
}

// NewsHandler serves full CRUD over news posts.
type NewsHandler struct {
	Handler
	service NewsService
}

// NewNewsHandler constructs a NewsHandler.
func NewNewsHandler(s *server.Server, svc NewsService) *NewsHandler {
	return &NewsHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

// ListNewsRequest has no parameters; listing is always complete and
// newest-first.
type ListNewsRequest struct{}

func (r *ListNewsRequest) Validate() error {
	return nil
}

// CreateNewsRequest is a new post. All three fields are required.
type CreateNewsRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Author  string `json:"author" validate:"required"`
}

func (r *CreateNewsRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateNewsRequest rewrites an existing post in place. The id must be
// non-zero and all three fields non-empty.
type UpdateNewsRequest struct {
	ID      int64  `json:"id" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Author  string `json:"author" validate:"required"`
}

func (r *UpdateNewsRequest) Validate() error {
	return validation.Struct(r)
}

// DeleteNewsRequest identifies the post via the ?id= query parameter.
type DeleteNewsRequest struct {
	ID string `query:"id"`

	id int64
}

// Validate enforces the contract's dedicated missing-id message and
// parses the identifier.
func (r *DeleteNewsRequest) Validate() error {
	if r.ID == "" {
		return errs.NewBadRequestError(errs.MsgMissingIDParameter, nil, nil)
	}

	id, err := strconv.ParseInt(r.ID, 10, 64)
	if err != nil {
		return errs.NewBadRequestError(errs.MsgMissingIDParameter, nil, []errs.FieldError{
			{Field: "id", Error: "must be an integer"},
		})
	}

	r.id = id
	return nil
}

// ListNewsResponse wraps the listing under the "news" key.
type ListNewsResponse struct {
	News []model.NewsPostResponse `json:"news"`
}

// DeleteNewsResponse acknowledges a delete.
type DeleteNewsResponse struct {
	Success bool `json:"success"`
}

// List returns all posts ordered date descending, id descending.
func (h *NewsHandler) List(c echo.Context, req *ListNewsRequest) (ListNewsResponse, error) {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return ListNewsResponse{}, err
	}

	responses := make([]model.NewsPostResponse, 0, len(items))
	for _, n := range items {
		responses = append(responses, n.Response())
	}

	return ListNewsResponse{News: responses}, nil
}

// Create inserts a post and returns the full stored record.
func (h *NewsHandler) Create(c echo.Context, req *CreateNewsRequest) (model.NewsPostResponse, error) {
	stored, err := h.service.Create(c.Request().Context(), model.NewsPost{
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
	})
	if err != nil {
		return model.NewsPostResponse{}, err
	}

	return stored.Response(), nil
}

// Update rewrites a post and returns the full updated record. Unknown
// ids surface as 404.
func (h *NewsHandler) Update(c echo.Context, req *UpdateNewsRequest) (model.NewsPostResponse, error) {
	updated, err := h.service.Update(c.Request().Context(), model.NewsPost{
		ID:      req.ID,
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
	})
	if err != nil {
		return model.NewsPostResponse{}, err
	}

	return updated.Response(), nil
}

// Delete removes a post; unknown ids still succeed.
func (h *NewsHandler) Delete(c echo.Context, req *DeleteNewsRequest) (DeleteNewsResponse, error) {
	if err := h.service.Delete(c.Request().Context(), req.id); err != nil {
		return DeleteNewsResponse{}, err
	}

	return DeleteNewsResponse{Success: true}, nil
}
