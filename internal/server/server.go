// Package server defines the application container that composes the
// app's main dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger
//   - database pool
//   - optional redis client and background job worker (asynq)
//   - notification dispatcher
//   - http.Server
//
// It provides constructors and start/shutdown logic to run the
// application cleanly.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/studcouncil/council-api/internal/config"
	"github.com/studcouncil/council-api/internal/database"
	"github.com/studcouncil/council-api/internal/lib/job"
	"github.com/studcouncil/council-api/internal/lib/notify"
)

// Server is the application container that holds shared resources.
// It is not the HTTP server itself; it wraps one.
type Server struct {
	// Config holds all environment-sourced values for the app.
	Config *config.Config

	// Logger is the application's main structured logger.
	Logger *zerolog.Logger

	// DB holds the PostgreSQL pool wrapper.
	DB *database.Database

	// Redis is the client backing the job queue. Nil when no redis
	// address is configured.
	Redis *redis.Client

	// Notifier is the best-effort notification dispatcher.
	Notifier *notify.Dispatcher

	// Job runs the background notification workers. Nil when the queue
	// is disabled; the service layer then dispatches inline.
	Job *job.JobService

	// httpServer is configured in SetupHTTPServer and run in Start.
	httpServer *http.Server
}

// New constructs a Server and initializes core dependencies.
//
// The database must be reachable; redis is optional — if it is
// configured but unreachable, the queue is disabled and startup
// continues, since notifications degrade to inline dispatch.
func New(cfg *config.Config, logger *zerolog.Logger) (*Server, error) {
	db, err := database.New(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	dispatcher := notify.NewDispatcher(cfg, logger)

	server := &Server{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Notifier: dispatcher,
	}

	if cfg.JobsEnabled() {
		redisClient := redis.NewClient(&redis.Options{
			Addr: cfg.Redis.Address,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Error().Err(err).Msg("failed to connect to Redis, notifications will dispatch inline")
			_ = redisClient.Close()
		} else {
			jobService := job.NewJobService(logger, cfg, dispatcher)
			if err := jobService.Start(); err != nil {
				db.Close()
				return nil, fmt.Errorf("failed to start job service: %w", err)
			}

			server.Redis = redisClient
			server.Job = jobService
		}
	}

	return server, nil
}

// SetupHTTPServer configures the internal net/http server. The handler
// is the echo router with its middleware stack.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:    ":" + s.Config.Server.Port,
		Handler: handler,

		// Timeouts protect against slow clients; config stores seconds.
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It requires SetupHTTPServer first and
// blocks until the server stops or errors.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and its dependencies:
// inflight requests finish until ctx expires, then the job workers,
// redis client, and database pool are released.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	if s.Job != nil {
		s.Job.Stop()
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			s.Logger.Error().Err(err).Msg("failed to close redis client")
		}
	}

	if err := s.DB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	return nil
}
