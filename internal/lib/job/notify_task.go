package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"github.com/studcouncil/council-api/internal/model"
)

// TaskFeedbackNotify is the job type name stored in Redis.
const TaskFeedbackNotify = "notify:feedback"

// FeedbackNotifyPayload carries the committed feedback record to the
// worker. The full record rides along so the worker needs no store
// round-trip.
type FeedbackNotifyPayload struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Feedback reconstructs the record from the payload.
func (p FeedbackNotifyPayload) Feedback() model.Feedback {
	return model.Feedback{
		ID:        p.ID,
		Type:      p.Type,
		Name:      p.Name,
		Email:     p.Email,
		Title:     p.Title,
		Message:   p.Message,
		CreatedAt: p.CreatedAt,
	}
}

// NewFeedbackNotifyTask constructs the Asynq task for one committed
// feedback record.
//
// MaxRetry is zero: notification delivery is fire-and-forget, a failed
// attempt must not be replayed.
func NewFeedbackNotifyTask(f model.Feedback) (*asynq.Task, error) {
	payload, err := json.Marshal(FeedbackNotifyPayload{
		ID:        f.ID,
		Type:      f.Type,
		Name:      f.Name,
		Email:     f.Email,
		Title:     f.Title,
		Message:   f.Message,
		CreatedAt: f.CreatedAt,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskFeedbackNotify,
		payload,
		asynq.MaxRetry(0),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
