package application

import (
	"time"

	"github.com/funnelbot/leadintake/internal/config"
	"github.com/funnelbot/leadintake/internal/repository"
)

type Services struct {
	Form        *FormService
	Resume      *ResumeService
	Attribution *AttributionService
	Analytics   *AnalyticsService
	Tracker     *TrackerService
	Admin       *AdminService
}

func New(repos *repository.Repos) *Services {
	attribution := NewAttributionService(repos)
	return &Services{
		Form:        NewFormService(repos, attribution),
		Resume:      NewResumeService(repos),
		Attribution: attribution,
		Analytics:   NewAnalyticsService(repos, time.Duration(config.ReminderThreshold)*time.Minute),
		Tracker:     NewTrackerService(repos),
		Admin:       NewAdminService(repos),
	}
}
