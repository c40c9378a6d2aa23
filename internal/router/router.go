// Package router initializes the HTTP router (using Echo).
//
// It registers the middleware chain and maps each resource path to its
// handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/studcouncil/council-api/internal/handler"
	"github.com/studcouncil/council-api/internal/middleware"
)

// New builds the echo instance with the full middleware chain and all
// routes registered.
func New(mws *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = mws.Global.GlobalErrorHandler

	e.Use(mws.Global.Recover())
	e.Use(middleware.RequestID())
	e.Use(mws.ContextEnhancer.EnhanceContext())
	e.Use(mws.Global.RequestLogger())
	e.Use(middleware.CORSHeaders())
	if rl := mws.Global.RateLimiter(); rl != nil {
		e.Use(rl)
	}

	registerFeedbackRoutes(e, h)
	registerNewsRoutes(e, h)
	registerSystemRoutes(e, h)

	return e
}
