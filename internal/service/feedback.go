package service

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/studcouncil/council-api/internal/lib/job"
	"github.com/studcouncil/council-api/internal/model"
)

// FeedbackStore is the persistence surface the feedback service needs.
type FeedbackStore interface {
	List(ctx context.Context, feedbackType string) ([]model.Feedback, error)
	Insert(ctx context.Context, f model.Feedback) (model.Feedback, error)
}

// Notifier dispatches best-effort alerts for committed feedback.
type Notifier interface {
	Enabled() bool
	Dispatch(ctx context.Context, f model.Feedback)
}

// NotifyEnqueuer pushes notification tasks onto the job queue.
// *asynq.Client satisfies it.
type NotifyEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// FeedbackService implements the feedback business rules: immutable
// records, newest-first listing, and a notification fired after every
// successful insert whose outcome never reaches the caller.
type FeedbackService struct {
	store    FeedbackStore
	notifier Notifier
	queue    NotifyEnqueuer
	logger   *zerolog.Logger
}

// NewFeedbackService constructs a FeedbackService. queue may be nil, in
// which case notifications dispatch inline.
func NewFeedbackService(store FeedbackStore, notifier Notifier, queue NotifyEnqueuer, logger *zerolog.Logger) *FeedbackService {
	return &FeedbackService{
		store:    store,
		notifier: notifier,
		queue:    queue,
		logger:   logger,
	}
}

// List returns feedback records newest-first, optionally filtered by
// category.
func (s *FeedbackService) List(ctx context.Context, feedbackType string) ([]model.Feedback, error) {
	return s.store.List(ctx, feedbackType)
}

// Create inserts a feedback record and then fires the best-effort
// notification. The insert's commit strictly precedes the notification
// attempt, and nothing on the notification path can fail the request.
func (s *FeedbackService) Create(ctx context.Context, f model.Feedback) (model.Feedback, error) {
	stored, err := s.store.Insert(ctx, f)
	if err != nil {
		return model.Feedback{}, err
	}

	s.notify(ctx, stored)

	return stored, nil
}

// notify hands the committed record to the queue when one is running,
// or to the dispatcher directly otherwise. Failures are logged and
// discarded.
func (s *FeedbackService) notify(ctx context.Context, f model.Feedback) {
	if s.notifier == nil || !s.notifier.Enabled() {
		return
	}

	if s.queue != nil {
		task, err := job.NewFeedbackNotifyTask(f)
		if err == nil {
			_, err = s.queue.Enqueue(task)
		}
		if err != nil {
			s.logger.Warn().
				Err(err).
				Int64("feedback_id", f.ID).
				Msg("failed to enqueue feedback notification")
		}
		return
	}

	s.notifier.Dispatch(ctx, f)
}
