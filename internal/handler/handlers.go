package handler

import (
	"github.com/studcouncil/council-api/internal/server"
	"github.com/studcouncil/council-api/internal/service"
)

// Handlers is the container that groups all HTTP handlers, so router
// setup passes one object around instead of many.
type Handlers struct {
	Feedback *FeedbackHandler
	News     *NewsHandler
	Health   *HealthHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Feedback: NewFeedbackHandler(s, services.Feedback),
		News:     NewNewsHandler(s, services.News),
		Health:   NewHealthHandler(s),
	}
}
