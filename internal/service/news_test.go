package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studcouncil/council-api/internal/errs"
	"github.com/studcouncil/council-api/internal/model"
)

type fakeNewsStore struct {
	posts     []model.NewsPost
	updateErr error
	deletedID int64
}

func (f *fakeNewsStore) List(ctx context.Context) ([]model.NewsPost, error) {
	return f.posts, nil
}

func (f *fakeNewsStore) Insert(ctx context.Context, n model.NewsPost) (model.NewsPost, error) {
	n.ID = int64(len(f.posts) + 1)
	n.Date = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	f.posts = append(f.posts, n)
	return n, nil
}

func (f *fakeNewsStore) Update(ctx context.Context, n model.NewsPost) (model.NewsPost, error) {
	if f.updateErr != nil {
		return model.NewsPost{}, f.updateErr
	}
	return n, nil
}

func (f *fakeNewsStore) Delete(ctx context.Context, id int64) error {
	f.deletedID = id
	return nil
}

func TestNewsUpdateMapsMissingRowTo404(t *testing.T) {
	svc := NewNewsService(&fakeNewsStore{updateErr: pgx.ErrNoRows})

	_, err := svc.Update(context.Background(), model.NewsPost{ID: 42, Title: "x", Content: "y", Author: "z"})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "News not found", httpErr.Message)
}

func TestNewsUpdatePassesThroughOtherErrors(t *testing.T) {
	svc := NewNewsService(&fakeNewsStore{updateErr: context.DeadlineExceeded})

	_, err := svc.Update(context.Background(), model.NewsPost{ID: 1})

	require.Error(t, err)
	var httpErr *errs.HTTPError
	assert.NotErrorAs(t, err, &httpErr)
}

func TestNewsDeleteUnknownIDIsNoOp(t *testing.T) {
	store := &fakeNewsStore{}
	svc := NewNewsService(store)

	err := svc.Delete(context.Background(), 999)

	require.NoError(t, err)
	assert.Equal(t, int64(999), store.deletedID)
}

func TestNewsCreateReturnsStoredRecord(t *testing.T) {
	svc := NewNewsService(&fakeNewsStore{})

	got, err := svc.Create(context.Background(), model.NewsPost{Title: "Elections", Content: "Vote", Author: "Council"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.False(t, got.Date.IsZero())
}
