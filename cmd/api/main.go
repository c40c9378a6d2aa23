package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/studcouncil/council-api/internal/config"
	"github.com/studcouncil/council-api/internal/database"
	"github.com/studcouncil/council-api/internal/handler"
	"github.com/studcouncil/council-api/internal/logger"
	"github.com/studcouncil/council-api/internal/middleware"
	"github.com/studcouncil/council-api/internal/repository"
	"github.com/studcouncil/council-api/internal/router"
	"github.com/studcouncil/council-api/internal/server"
	"github.com/studcouncil/council-api/internal/service"
)

// shutdownTimeout bounds graceful shutdown: inflight requests get this
// long to finish before the process exits.
const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.New()
	if err != nil {
		// config.New logs fatally on load failures; this guards the
		// path where it returns an error instead.
		os.Exit(1)
	}

	log := logger.New(cfg)

	if err := database.Migrate(context.Background(), &log, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to run database migrations")
	}

	srv, err := server.New(cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	mws := middleware.NewMiddlewares(srv)
	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)

	e := router.New(mws, handlers)
	srv.SetupHTTPServer(e)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
		os.Exit(1)
	}

	log.Info().Msg("shutdown complete")
}
