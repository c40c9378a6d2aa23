package service

import (
	"github.com/studcouncil/council-api/internal/repository"
	"github.com/studcouncil/council-api/internal/server"
)

// Services is the container for all service instances.
type Services struct {
	Feedback *FeedbackService
	News     *NewsService
}

// NewServices constructs the service container.
//
// When the job queue is running, feedback notifications are enqueued;
// otherwise the dispatcher is invoked inline after the insert commits.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	var queue NotifyEnqueuer
	if s.Job != nil {
		queue = s.Job.Client
	}

	return &Services{
		Feedback: NewFeedbackService(repos.Feedback, s.Notifier, queue, s.Logger),
		News:     NewNewsService(repos.News),
	}
}
