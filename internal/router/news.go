package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studcouncil/council-api/internal/handler"
	"github.com/studcouncil/council-api/internal/middleware"
)

// registerNewsRoutes maps the news resource.
func registerNewsRoutes(r *echo.Echo, h *handler.Handlers) {
	r.OPTIONS("/news", middleware.Preflight(middleware.NewsAllowMethods))
	r.GET("/news", handler.Handle(h.News.Handler, h.News.List, http.StatusOK))
	r.POST("/news", handler.Handle(h.News.Handler, h.News.Create, http.StatusCreated))
	r.PUT("/news", handler.Handle(h.News.Handler, h.News.Update, http.StatusOK))
	r.DELETE("/news", handler.Handle(h.News.Handler, h.News.Delete, http.StatusOK))
}
