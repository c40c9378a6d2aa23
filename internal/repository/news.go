package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studcouncil/council-api/internal/model"
)

// NewsRepository persists news posts.
type NewsRepository struct {
	pool *pgxpool.Pool
}

// NewNewsRepository constructs a NewsRepository.
func NewNewsRepository(pool *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{pool: pool}
}

// List returns all posts, newest date first. Posts sharing a date are
// ordered by descending id so the most recently inserted wins the tie.
func (r *NewsRepository) List(ctx context.Context) ([]model.NewsPost, error) {
	const query = `SELECT id, title, content, author, date FROM news ORDER BY date DESC, id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.NewsPost, 0)
	for rows.Next() {
		var n model.NewsPost
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Author, &n.Date); err != nil {
			return nil, err
		}
		items = append(items, n)
	}

	return items, rows.Err()
}

// Insert stores a new post. The id and date are assigned by the
// database and returned on the stored record.
func (r *NewsRepository) Insert(ctx context.Context, n model.NewsPost) (model.NewsPost, error) {
	const query = `
		INSERT INTO news (title, content, author)
		VALUES ($1, $2, $3)
		RETURNING id, title, content, author, date`

	var stored model.NewsPost
	err := r.pool.QueryRow(ctx, query, n.Title, n.Content, n.Author).
		Scan(&stored.ID, &stored.Title, &stored.Content, &stored.Author, &stored.Date)
	if err != nil {
		return model.NewsPost{}, err
	}

	return stored, nil
}

// Update rewrites title, content, and author in place; the date is
// never touched. Returns pgx.ErrNoRows when no post matches the id.
func (r *NewsRepository) Update(ctx context.Context, n model.NewsPost) (model.NewsPost, error) {
	const query = `
		UPDATE news SET title = $1, content = $2, author = $3
		WHERE id = $4
		RETURNING id, title, content, author, date`

	var stored model.NewsPost
	err := r.pool.QueryRow(ctx, query, n.Title, n.Content, n.Author, n.ID).
		Scan(&stored.ID, &stored.Title, &stored.Content, &stored.Author, &stored.Date)
	if err != nil {
		return model.NewsPost{}, err
	}

	return stored, nil
}

// Delete removes the post with the given id. Deleting an id that does
// not exist is a successful no-op.
func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM news WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id)
	return err
}
