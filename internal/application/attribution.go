package application

import (
	"github.com/funnelbot/leadintake/internal/domain/attribution"
	"github.com/funnelbot/leadintake/internal/repository"
)

// AttributionService resolves deep-link tokens to lead sources. It is
// best-effort throughout: nothing here may block form entry.
type AttributionService struct {
	repos *repository.Repos
}

func NewAttributionService(repos *repository.Repos) *AttributionService {
	return &AttributionService{repos: repos}
}

// Resolve parses the start parameter and checks buyer codes against the
// buyers table. A deactivated buyer no longer earns credit; an unknown
// code or a lookup failure keeps the raw token so the lead can still be
// reconciled later.
func (s *AttributionService) Resolve(param string, userID int64) attribution.Attribution {
	attr := attribution.Parse(param, userID)
	if attr.Type != attribution.TypeBuyer {
		return attr
	}
	if b, err := s.repos.Buyer.GetByCode(attr.Value); err == nil && !b.Active {
		return attribution.Attribution{}
	}
	return attr
}
