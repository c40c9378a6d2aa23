// Package job provides background job processing using Asynq.
//
// The queue exists to carry notification dispatch off the request path:
// a feedback POST enqueues a task and returns, and a worker delivers
// the alert. Asynq is Redis-backed, so the whole package is only wired
// when a redis address is configured; otherwise the service layer
// dispatches notifications inline.
package job

import (
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/studcouncil/council-api/internal/config"
	"github.com/studcouncil/council-api/internal/lib/notify"
)

// JobService holds the Asynq client (enqueue) and server (worker
// execution) plus the dispatcher the workers deliver through.
type JobService struct {
	// Client enqueues tasks into Redis.
	Client *asynq.Client

	server     *asynq.Server
	logger     *zerolog.Logger
	dispatcher *notify.Dispatcher
}

// NewJobService creates a JobService backed by the configured Redis.
func NewJobService(logger *zerolog.Logger, cfg *config.Config, dispatcher *notify.Dispatcher) *JobService {
	redisAddr := cfg.Redis.Address

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})

	// Notifications are the only workload; a small worker pool with a
	// single default queue is plenty.
	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	return &JobService{
		Client:     client,
		server:     server,
		logger:     logger,
		dispatcher: dispatcher,
	}
}

// Start registers task handlers and starts the worker server.
// asynq's Start returns immediately; workers run in the background.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskFeedbackNotify, j.handleFeedbackNotifyTask)

	j.logger.Info().Msg("starting background job server")

	if err := j.server.Start(mux); err != nil {
		return err
	}

	return nil
}

// Stop gracefully stops the worker server and closes the client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	j.Client.Close()
}
