package repository

import (
	"github.com/studcouncil/council-api/internal/server"
)

// Repositories is the container for all repository instances.
type Repositories struct {
	Feedback *FeedbackRepository
	News     *NewsRepository
}

// NewRepositories constructs the repository container over the shared
// connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Feedback: NewFeedbackRepository(s.DB.Pool),
		News:     NewNewsRepository(s.DB.Pool),
	}
}
