package handlers

import (
	"github.com/funnelbot/leadintake/internal/application"
	"github.com/funnelbot/leadintake/internal/repository"
)

type Handlers struct {
	Admin     *AdminHandler
	Analytics *AnalyticsHandler
	Buyer     *BuyerHandler
}

func New(svc *application.Services, repos *repository.Repos) *Handlers {
	return &Handlers{
		Admin:     NewAdminHandler(svc.Admin),
		Analytics: NewAnalyticsHandler(svc.Analytics),
		Buyer:     NewBuyerHandler(repos),
	}
}
