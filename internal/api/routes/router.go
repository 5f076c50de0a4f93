package routes

import (
	"github.com/funnelbot/leadintake/internal/api/handlers"
	"github.com/funnelbot/leadintake/internal/api/middleware"
	"github.com/funnelbot/leadintake/internal/application"
	"github.com/funnelbot/leadintake/internal/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) (*repository.Repos, *application.Services) {
	repos := repository.NewRepositories(db)
	services := application.New(repos)
	h := handlers.New(services, repos)

	r.POST("/admin/login", h.Admin.Login)

	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware())
	{
		admin.GET("/submissions", h.Analytics.ListSubmissions)
		admin.GET("/submissions/stats", h.Analytics.GetSubmissionStats)
		admin.PUT("/submissions/:user_id/processed", h.Analytics.MarkProcessed)

		admin.GET("/funnel", h.Analytics.GetFunnel)
		admin.GET("/ws/funnel", func(c *gin.Context) {
			handlers.StreamFunnel(c, services.Analytics)
		})

		admin.GET("/buyers", h.Buyer.ListBuyers)
		admin.POST("/buyers", h.Buyer.CreateBuyer)
		admin.PUT("/buyers/:code", h.Buyer.UpdateBuyer)

		admin.GET("/actions", h.Analytics.ListActions)
		admin.GET("/referrals/:user_id/count", h.Analytics.GetReferralCount)
	}

	return repos, services
}
