package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/studcouncil/council-api/internal/errs"
	"github.com/studcouncil/council-api/internal/model"
)

// NewsStore is the persistence surface the news service needs.
type NewsStore interface {
	List(ctx context.Context) ([]model.NewsPost, error)
	Insert(ctx context.Context, n model.NewsPost) (model.NewsPost, error)
	Update(ctx context.Context, n model.NewsPost) (model.NewsPost, error)
	Delete(ctx context.Context, id int64) error
}

// NewsService implements the news CRUD rules.
type NewsService struct {
	store NewsStore
}

// NewNewsService constructs a NewsService.
func NewNewsService(store NewsStore) *NewsService {
	return &NewsService{store: store}
}

// List returns all posts, newest date first with descending-id
// tie-break.
func (s *NewsService) List(ctx context.Context) ([]model.NewsPost, error) {
	return s.store.List(ctx)
}

// Create inserts a post; the database assigns id and date.
func (s *NewsService) Create(ctx context.Context, n model.NewsPost) (model.NewsPost, error) {
	return s.store.Insert(ctx, n)
}

// Update rewrites a post in place. Updating an unknown id is a 404.
func (s *NewsService) Update(ctx context.Context, n model.NewsPost) (model.NewsPost, error) {
	updated, err := s.store.Update(ctx, n)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.NewsPost{}, errs.NewNotFoundError("News not found", nil)
		}
		return model.NewsPost{}, err
	}

	return updated, nil
}

// Delete removes a post. Unknown ids are a successful no-op; delete is
// not existence-checked.
func (s *NewsService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
