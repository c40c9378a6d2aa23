package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Allowed method lists advertised on preflight, per resource.
const (
	FeedbackAllowMethods = "GET, POST, OPTIONS"
	NewsAllowMethods     = "GET, POST, PUT, DELETE, OPTIONS"
)

// corsMaxAge lets browsers cache the preflight result for a day.
const corsMaxAge = "86400"

// CORSHeaders sets Access-Control-Allow-Origin on every response. The
// API is open, so the origin is always the wildcard. Registered at the
// root so error responses (404/405/500) carry the header too.
func CORSHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, "*")
			return next(c)
		}
	}
}

// Preflight returns the handler registered on each resource's OPTIONS
// route. It answers 200 with an empty body and the resource's allowed
// methods, touching no other component — preflight must succeed even
// when the store is down.
func Preflight(allowMethods string) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set(echo.HeaderAccessControlAllowMethods, allowMethods)
		h.Set(echo.HeaderAccessControlAllowHeaders, echo.HeaderContentType)
		h.Set(echo.HeaderAccessControlMaxAge, corsMaxAge)
		return c.NoContent(http.StatusOK)
	}
}
