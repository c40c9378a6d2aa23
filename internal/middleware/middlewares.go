package middleware

import (
	"github.com/studcouncil/council-api/internal/server"
)

// Middlewares groups all middleware components used by the HTTP server.
//
// Build once, reuse during router setup: each component gets its shared
// dependencies from *server.Server here instead of being wired ad hoc
// throughout routing code.
type Middlewares struct {
	// Global holds middleware used across the whole API: CORS headers,
	// request logging, recovery, rate limiting, and the global error
	// handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped
	// logger (request_id, method, path, ip).
	ContextEnhancer *ContextEnhancer
}

// NewMiddlewares constructs all middleware components using the
// application container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
	}
}
