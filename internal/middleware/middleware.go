// Package middleware contains the HTTP middleware chain.
//
// It covers request correlation ids, request-scoped loggers, CORS
// headers, rate limiting, panic recovery, per-request logging, and the
// global error handler that converts every failure into the API's
// stable {"error": "..."} response shape.
package middleware
