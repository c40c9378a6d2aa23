package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/studcouncil/council-api/internal/middleware"
	"github.com/studcouncil/council-api/internal/server"
	"github.com/studcouncil/council-api/internal/validation"
)

// Handler is the base handler type holding shared application
// dependencies. Concrete handlers embed it to reach config, logger, and
// the rest of *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. Returned by value: the struct
// only holds a pointer, so copies are cheap and share the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint function: it receives a validated
// request payload and returns the response body or an error.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// Handle wraps a typed endpoint function with the shared request
// pipeline: binding, validation, structured logging with timings, and
// JSON response writing with the given success status.
//
// Req is the request struct type; a fresh *Req is allocated per call so
// concurrent requests never share state.
func Handle[Req any, PReq interface {
	*Req
	validation.Validatable
}, Res any](h Handler, fn func(c echo.Context, req PReq) (Res, error), status int) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := PReq(new(Req))
		return handleRequest(c, req, func(c echo.Context, req PReq) (any, error) {
			return fn(c, req)
		}, status)
	}
}

// handleRequest is the shared execution pipeline for all handlers.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	fn func(c echo.Context, req Req) (any, error),
	status int,
) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "handler").
		Str("method", c.Request().Method).
		Str("route", c.Path()).
		Logger()

	logger.Debug().Msg("handling request")

	validationStart := time.Now()
	if err := validation.BindAndValidate(c, req); err != nil {
		logger.Warn().
			Err(err).
			Dur("validation_duration", time.Since(validationStart)).
			Msg("request validation failed")
		return err
	}

	result, err := fn(c, req)
	if err != nil {
		logger.Error().
			Err(err).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")
		return err
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return c.JSON(status, result)
}
