package main

import (
	"context"
	"log"
	"time"

	"github.com/funnelbot/leadintake/internal/api/middleware"
	"github.com/funnelbot/leadintake/internal/api/routes"
	"github.com/funnelbot/leadintake/internal/application"
	"github.com/funnelbot/leadintake/internal/config"
	"github.com/funnelbot/leadintake/internal/config/db"
	"github.com/funnelbot/leadintake/internal/domain/action"
	adminuser "github.com/funnelbot/leadintake/internal/domain/admin"
	"github.com/funnelbot/leadintake/internal/domain/buyer"
	"github.com/funnelbot/leadintake/internal/domain/session"
	"github.com/funnelbot/leadintake/internal/domain/submission"
	"github.com/funnelbot/leadintake/internal/notify"
	"github.com/funnelbot/leadintake/internal/scheduler"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&session.FormSession{},
		&submission.CompletedSubmission{},
		&buyer.Buyer{},
		&action.UserAction{},
		&adminuser.AdminUser{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	repos, services := routes.RegisterRoutes(router, db.DB)

	if err := services.Admin.Bootstrap(config.AdminUsername, config.AdminPassword); err != nil {
		log.Fatalf("Failed to bootstrap admin account: %v", err)
	}

	// Reminder scheduler runs only when a delivery endpoint is configured
	if config.NotifyWebhookURL != "" {
		sched := scheduler.NewReminderScheduler(
			repos.Session,
			notify.NewWebhookNotifier(config.NotifyWebhookURL),
			application.NudgeFor,
			time.Duration(config.ReminderInterval)*time.Minute,
			time.Duration(config.ReminderThreshold)*time.Minute,
		)
		go func() {
			if err := sched.Start(context.Background()); err != nil && err != context.Canceled {
				log.Printf("Reminder scheduler exited: %v", err)
			}
		}()
	} else {
		log.Println("NOTIFY_WEBHOOK_URL not set, reminder scheduler disabled")
	}

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
