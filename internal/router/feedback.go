package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studcouncil/council-api/internal/handler"
	"github.com/studcouncil/council-api/internal/middleware"
)

// registerFeedbackRoutes maps the feedback resource. Any other method
// on the path falls through to the router's method-not-allowed error,
// which the global error handler turns into the contract's 405 body.
func registerFeedbackRoutes(r *echo.Echo, h *handler.Handlers) {
	r.OPTIONS("/feedback", middleware.Preflight(middleware.FeedbackAllowMethods))
	r.GET("/feedback", handler.Handle(h.Feedback.Handler, h.Feedback.List, http.StatusOK))
	r.POST("/feedback", handler.Handle(h.Feedback.Handler, h.Feedback.Create, http.StatusCreated))
}
