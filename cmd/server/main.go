package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "bloodbank-backend/internal/api/http"
	"bloodbank-backend/internal/config"
	"bloodbank-backend/internal/logger"
	"bloodbank-backend/internal/repository"
	"bloodbank-backend/internal/repository/memory"
	"bloodbank-backend/internal/repository/postgres"
	"bloodbank-backend/internal/security"
	"bloodbank-backend/internal/service"
)

// repos groups one implementation of every repository interface, picked by
// the configured store type.
type repos struct {
	users         repository.UserRepository
	inventory     repository.InventoryRepository
	requests      repository.RequestRepository
	camps         repository.CampRepository
	appointments  repository.AppointmentRepository
	donations     repository.DonationRepository
	notifications repository.NotificationRepository
}

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Blood Bank Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "store", cfg.Store.Type)

	st, closeStore, err := buildStore(cfg)
	if err != nil {
		logger.Error("Failed to initialize store", "error", err)
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer closeStore()

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email)
	authSvc := service.NewAuthService(st.users, tokenManager)
	invSvc := service.NewInventoryService(st.inventory, st.users, st.notifications)
	reqSvc := service.NewRequestService(st.requests, st.users, invSvc, st.notifications, emailSvc)
	campSvc := service.NewCampService(st.camps, st.appointments, st.donations, st.users, invSvc, st.notifications, emailSvc)
	adminSvc := service.NewAdminService(st.users, st.inventory, st.requests, st.camps)
	noteSvc := service.NewNotificationService(st.notifications)

	router := httpapi.NewRouter(httpapi.Services{
		Auth:         authSvc,
		Inventory:    invSvc,
		Request:      reqSvc,
		Camp:         campSvc,
		Admin:        adminSvc,
		Notification: noteSvc,
	}, tokenManager)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}

// buildStore wires the configured backend. The memory store starts seeded
// with the demo dataset so the API is usable without a database.
func buildStore(cfg *config.Config) (*repos, func(), error) {
	if cfg.Store.Type == "memory" {
		st := memory.NewStore()
		if err := st.Seed(context.Background()); err != nil {
			return nil, nil, err
		}
		logger.Info("Using seeded in-memory store")
		return &repos{
			users:         st.UserRepository,
			inventory:     st.InventoryRepository,
			requests:      st.RequestRepository,
			camps:         st.CampRepository,
			appointments:  st.AppointmentRepository,
			donations:     st.DonationRepository,
			notifications: st.NotificationRepository,
		}, func() {}, nil
	}

	logger.Debug("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		return nil, nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, err
	}
	logger.Info("Database connection established")

	st := postgres.NewStore(db)
	return &repos{
		users:         st.UserRepository,
		inventory:     st.InventoryRepository,
		requests:      st.RequestRepository,
		camps:         st.CampRepository,
		appointments:  st.AppointmentRepository,
		donations:     st.DonationRepository,
		notifications: st.NotificationRepository,
	}, func() { db.Close() }, nil
}
