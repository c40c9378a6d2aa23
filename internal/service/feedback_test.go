package service

import (
	"context"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studcouncil/council-api/internal/lib/job"
	"github.com/studcouncil/council-api/internal/model"
)

type fakeFeedbackStore struct {
	records   []model.Feedback
	listType  string
	insertErr error
}

func (f *fakeFeedbackStore) List(ctx context.Context, feedbackType string) ([]model.Feedback, error) {
	f.listType = feedbackType
	return f.records, nil
}

func (f *fakeFeedbackStore) Insert(ctx context.Context, fb model.Feedback) (model.Feedback, error) {
	if f.insertErr != nil {
		return model.Feedback{}, f.insertErr
	}
	fb.ID = int64(len(f.records) + 1)
	fb.CreatedAt = time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)
	f.records = append(f.records, fb)
	return fb, nil
}

type fakeNotifier struct {
	enabled    bool
	dispatched []model.Feedback
}

func (n *fakeNotifier) Enabled() bool { return n.enabled }

func (n *fakeNotifier) Dispatch(ctx context.Context, f model.Feedback) {
	n.dispatched = append(n.dispatched, f)
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (q *fakeEnqueuer) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if q.err != nil {
		return nil, q.err
	}
	q.tasks = append(q.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func testLogger() *zerolog.Logger {
	log := zerolog.Nop()
	return &log
}

func TestFeedbackCreateDispatchesInline(t *testing.T) {
	store := &fakeFeedbackStore{}
	notifier := &fakeNotifier{enabled: true}
	svc := NewFeedbackService(store, notifier, nil, testLogger())

	stored, err := svc.Create(context.Background(), model.Feedback{
		Type:    "question",
		Name:    "Dana",
		Message: "When is the next meeting?",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ID)
	assert.False(t, stored.CreatedAt.IsZero())

	require.Len(t, notifier.dispatched, 1)
	assert.Equal(t, stored, notifier.dispatched[0], "notification must carry the committed record")
}

func TestFeedbackCreatePrefersQueue(t *testing.T) {
	store := &fakeFeedbackStore{}
	notifier := &fakeNotifier{enabled: true}
	queue := &fakeEnqueuer{}
	svc := NewFeedbackService(store, notifier, queue, testLogger())

	_, err := svc.Create(context.Background(), model.Feedback{Type: "feedback", Name: "Alex", Message: "hi"})

	require.NoError(t, err)
	require.Len(t, queue.tasks, 1)
	assert.Equal(t, job.TaskFeedbackNotify, queue.tasks[0].Type())
	assert.Empty(t, notifier.dispatched, "queue path must not also dispatch inline")
}

func TestFeedbackCreateSwallowsEnqueueError(t *testing.T) {
	store := &fakeFeedbackStore{}
	queue := &fakeEnqueuer{err: errors.New("redis down")}
	svc := NewFeedbackService(store, &fakeNotifier{enabled: true}, queue, testLogger())

	stored, err := svc.Create(context.Background(), model.Feedback{Type: "feedback", Name: "Alex", Message: "hi"})

	require.NoError(t, err, "enqueue failure must not fail the request")
	assert.Equal(t, int64(1), stored.ID)
}

func TestFeedbackCreateSkipsDisabledNotifier(t *testing.T) {
	store := &fakeFeedbackStore{}
	notifier := &fakeNotifier{enabled: false}
	queue := &fakeEnqueuer{}
	svc := NewFeedbackService(store, notifier, queue, testLogger())

	_, err := svc.Create(context.Background(), model.Feedback{Type: "feedback", Name: "Alex", Message: "hi"})

	require.NoError(t, err)
	assert.Empty(t, queue.tasks)
	assert.Empty(t, notifier.dispatched)
}

func TestFeedbackCreateInsertErrorSkipsNotification(t *testing.T) {
	store := &fakeFeedbackStore{insertErr: errors.New("constraint violation")}
	notifier := &fakeNotifier{enabled: true}
	svc := NewFeedbackService(store, notifier, nil, testLogger())

	_, err := svc.Create(context.Background(), model.Feedback{Type: "feedback", Name: "Alex", Message: "hi"})

	require.Error(t, err)
	assert.Empty(t, notifier.dispatched, "no notification without a committed insert")
}

func TestFeedbackListPassesFilter(t *testing.T) {
	store := &fakeFeedbackStore{records: []model.Feedback{{ID: 1, Type: "initiative"}}}
	svc := NewFeedbackService(store, nil, nil, testLogger())

	got, err := svc.List(context.Background(), "initiative")

	require.NoError(t, err)
	assert.Equal(t, "initiative", store.listType)
	assert.Len(t, got, 1)
}
