package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studcouncil/council-api/internal/model"
)

// FeedbackRepository persists feedback records. Records are insert-only;
// no update or delete exists.
type FeedbackRepository struct {
	pool *pgxpool.Pool
}

// NewFeedbackRepository constructs a FeedbackRepository.
func NewFeedbackRepository(pool *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{pool: pool}
}

// List returns feedback records newest-first, optionally filtered by an
// exact category match when feedbackType is non-empty.
func (r *FeedbackRepository) List(ctx context.Context, feedbackType string) ([]model.Feedback, error) {
	const base = `SELECT id, type, name, email, title, message, created_at FROM feedback`

	query := base + ` ORDER BY created_at DESC`
	args := []any{}
	if feedbackType != "" {
		query = base + ` WHERE type = $1 ORDER BY created_at DESC`
		args = append(args, feedbackType)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Feedback, 0)
	for rows.Next() {
		var f model.Feedback
		if err := rows.Scan(&f.ID, &f.Type, &f.Name, &f.Email, &f.Title, &f.Message, &f.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, f)
	}

	return items, rows.Err()
}

// Insert stores a new feedback record. The id and creation timestamp
// are assigned by the database and returned on the stored record.
func (r *FeedbackRepository) Insert(ctx context.Context, f model.Feedback) (model.Feedback, error) {
	const query = `
		INSERT INTO feedback (type, name, email, title, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query, f.Type, f.Name, f.Email, f.Title, f.Message).
		Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return model.Feedback{}, err
	}

	return f, nil
}
