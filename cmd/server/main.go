// cmd/server/main.go
package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/alertemeds/alertemeds-backend/internal/api"
	"github.com/alertemeds/alertemeds-backend/internal/auth"
	"github.com/alertemeds/alertemeds-backend/internal/config"
	"github.com/alertemeds/alertemeds-backend/internal/controller"
	"github.com/alertemeds/alertemeds-backend/internal/db"
	"github.com/alertemeds/alertemeds-backend/internal/handler"
	"github.com/alertemeds/alertemeds-backend/internal/logger"
	"github.com/alertemeds/alertemeds-backend/internal/metrics"
	"github.com/alertemeds/alertemeds-backend/internal/queue"
	"github.com/alertemeds/alertemeds-backend/internal/ratelimit"
	"github.com/alertemeds/alertemeds-backend/internal/repository"
	"github.com/alertemeds/alertemeds-backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	conn, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer conn.Close()

	q, err := queue.Connect(cfg.Queue.URL, cfg.Queue.Name)
	if err != nil {
		log.Fatal("failed to connect to queue", zap.Error(err))
	}
	defer q.Close()

	// Repositories
	userRepo := &repository.UserRepository{DB: conn}
	contactRepo := &repository.ContactRepository{DB: conn}
	campaignRepo := &repository.CampaignRepository{DB: conn}
	emailRepo := &repository.EmailRepository{DB: conn}
	medicationRepo := &repository.MedicationRepository{DB: conn}
	alertRepo := &repository.AlertRepository{DB: conn}
	familyRepo := &repository.FamilyMemberRepository{DB: conn}
	reminderRepo := &repository.ReminderRepository{DB: conn}
	reportRepo := &repository.ShortageReportRepository{DB: conn}
	rateLimitRepo := &repository.RateLimitRepository{DB: conn}

	// Services
	campaignService := &service.CampaignService{
		CampaignRepo: campaignRepo,
		EmailRepo:    emailRepo,
		ContactRepo:  contactRepo,
		Queue:        q,
		Logger:       log,
	}
	alertService := &service.AlertService{
		AlertRepo:      alertRepo,
		MedicationRepo: medicationRepo,
	}
	syncService := &service.SyncService{
		Feed:           service.NoopFeed{},
		MedicationRepo: medicationRepo,
		Logger:         log,
	}
	reminderService := &service.ReminderService{
		ReminderRepo:   reminderRepo,
		UserRepo:       userRepo,
		MedicationRepo: medicationRepo,
		Notifier:       &service.LogNotifier{Logger: log},
		Logger:         log,
	}

	limiter := ratelimit.NewLimiter(rateLimitRepo, log)
	gate := auth.NewAdminGate(cfg.Auth.AdminEmails, userRepo, log)

	// HTTP surface
	authHandler := &handler.AuthHandler{UserRepo: userRepo, JWTSecret: cfg.Auth.JWTSecret, Logger: log}
	medicationHandler := &handler.MedicationHandler{MedicationRepo: medicationRepo, ReportRepo: reportRepo, Logger: log}
	alertHandler := &handler.AlertHandler{AlertService: alertService, Logger: log}
	familyHandler := &handler.FamilyMemberHandler{Repo: familyRepo, Logger: log}
	reminderHandler := &handler.ReminderHandler{Repo: reminderRepo, Logger: log}
	reportHandler := &handler.ReportHandler{ReportRepo: reportRepo, MedicationRepo: medicationRepo, Logger: log}
	trackHandler := &handler.TrackHandler{CampaignService: campaignService, Logger: log}
	cronHandler := &handler.CronHandler{
		SyncService:     syncService,
		ReminderService: reminderService,
		MaxDuration:     time.Duration(cfg.Cron.MaxDurationSeconds) * time.Second,
		Logger:          log,
	}
	campaignController := &controller.CampaignController{CampaignService: campaignService, Logger: log}

	window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
	publicLimit := ratelimit.Middleware(limiter, "public", cfg.RateLimit.MaxRequests, window)
	loginLimit := ratelimit.Middleware(limiter, "login", 10, window)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method("GET", "/metrics", metrics.Handler())
	r.Get("/track/{trackingId}", trackHandler.Open)

	r.Group(func(r chi.Router) {
		r.Use(publicLimit)
		r.Get("/medications", medicationHandler.List)
		r.Get("/medications/{id}", medicationHandler.Get)
		r.Post("/reports", reportHandler.Create)
		r.Post("/auth/register", authHandler.Register)
	})

	r.Group(func(r chi.Router) {
		r.Use(loginLimit)
		r.Post("/auth/login", authHandler.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSession(cfg.Auth.JWTSecret))

		r.Get("/alerts", alertHandler.List)
		r.Post("/alerts", alertHandler.Create)
		r.Delete("/alerts/{id}", alertHandler.Delete)

		r.Get("/family-members", familyHandler.List)
		r.Post("/family-members", familyHandler.Create)
		r.Put("/family-members/{id}", familyHandler.Update)
		r.Delete("/family-members/{id}", familyHandler.Delete)

		r.Get("/reminders", reminderHandler.List)
		r.Post("/reminders", reminderHandler.Create)
		r.Put("/reminders/{id}", reminderHandler.Update)
		r.Delete("/reminders/{id}", reminderHandler.Delete)

		r.Route("/admin", func(r chi.Router) {
			r.Use(gate.RequireAdmin)

			r.Post("/campaigns", campaignController.CreateCampaign)
			r.Get("/campaigns", campaignController.ListCampaigns)
			r.Get("/campaigns/{id}", campaignController.GetCampaign)
			r.Get("/campaigns/{id}/emails", campaignController.ListEmails)
			r.Get("/campaigns/{id}/stats", campaignController.GetStats)
			r.Post("/campaigns/{id}/generate", campaignController.GenerateEmails)
			r.Post("/campaigns/{id}/send", campaignController.SendCampaign)
			r.Patch("/emails/{id}", campaignController.ReviewEmail)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireCronToken(cfg.Cron.Token))
		r.Post("/cron/sync", cronHandler.SyncMedications)
		r.Post("/cron/reminders", cronHandler.DispatchReminders)
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("server listening", zap.String("addr", addr), zap.String("env", cfg.App.Environment))
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
