package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/ecosphere/ecosphere-api/internal/catalog"
	"github.com/ecosphere/ecosphere-api/internal/config"
	"github.com/ecosphere/ecosphere-api/internal/database"
	"github.com/ecosphere/ecosphere-api/internal/handlers"
	"github.com/ecosphere/ecosphere-api/internal/jobs"
	"github.com/ecosphere/ecosphere-api/internal/repository"
	"github.com/ecosphere/ecosphere-api/internal/routing"
	cronjobs "github.com/ecosphere/ecosphere-api/internal/scheduler"
	"github.com/ecosphere/ecosphere-api/internal/services"
	"github.com/ecosphere/ecosphere-api/internal/ws"
	"github.com/ecosphere/ecosphere-api/pkg/logger"
	"github.com/ecosphere/ecosphere-api/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Connect to MongoDB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	// --- Repositories ---
	userRepo := repository.NewUserRepository(db)
	rewardRepo := repository.NewRewardRepository(db)
	challengeRepo := repository.NewChallengeRepository(db)
	eventRepo := repository.NewEventRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	tripRepo := repository.NewTripRepository(db)

	if cfg.SeedCatalog {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := rewardRepo.Seed(ctx, catalog.Rewards()); err != nil {
			log.Fatalf("Failed to seed rewards: %v", err)
		}
		if err := challengeRepo.Seed(ctx, catalog.Challenges()); err != nil {
			log.Fatalf("Failed to seed challenges: %v", err)
		}
		if err := eventRepo.Seed(ctx, catalog.Events()); err != nil {
			log.Fatalf("Failed to seed events: %v", err)
		}
		cancel()
		logger.Log.Info("Catalog seeded")
	}

	// --- WebSocket hub ---
	hub := ws.NewHub()
	go hub.Run()

	// --- Services ---
	notificationService := services.NewNotificationService(notificationRepo)
	leaderboardService := services.NewLeaderboardService(userRepo, hub)
	userService := services.NewUserService(userRepo)
	rewardService := services.NewRewardService(rewardRepo, userRepo, notificationService, leaderboardService)
	challengeService := services.NewChallengeService(challengeRepo, userRepo, notificationService, leaderboardService, services.CatalogScorer{})
	eventService := services.NewEventService(eventRepo, userRepo, notificationService, leaderboardService)
	tripService := services.NewTripService(tripRepo, userRepo, notificationService, leaderboardService)
	optimizer := routing.NewOptimizer(rand.New(rand.NewSource(time.Now().UnixNano())))

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService, cfg)
	rewardHandler := handlers.NewRewardHandler(rewardService, userService)
	challengeHandler := handlers.NewChallengeHandler(challengeService, userService)
	eventHandler := handlers.NewEventHandler(eventService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	tripHandler := handlers.NewTripHandler(tripService)
	routeHandler := handlers.NewRouteHandler(optimizer)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// --- Background jobs ---
	streakMonitor := jobs.NewStreakMonitor(userRepo)
	cronRunner := cronjobs.StartMaintenanceJobs(streakMonitor, notificationService)
	defer cronRunner.Stop()

	adminHandler := handlers.NewAdminHandler(streakMonitor, notificationService)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()

	// Public user routes
	router.HandleFunc("/users/register", userHandler.RegisterUserHandler).Methods("POST")
	router.HandleFunc("/users/login", userHandler.LoginUserHandler).Methods("POST")

	// Protected user routes
	protectedUserRoutes := router.PathPrefix("/users").Subrouter()
	protectedUserRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedUserRoutes.HandleFunc("/{id}", userHandler.GetUserHandler).Methods("GET")
	protectedUserRoutes.HandleFunc("/{id}", userHandler.UpdateUserHandler).Methods("PATCH")

	// Reward routes: public catalog (personalized when a token is sent),
	// protected redemption
	rewardRoutes := router.PathPrefix("/rewards").Subrouter()
	rewardRoutes.Use(middleware.OptionalAuthMiddleware(cfg.JWTSecret))
	rewardRoutes.HandleFunc("", rewardHandler.GetRewardsHandler).Methods("GET")

	protectedRewardRoutes := router.PathPrefix("/rewards").Subrouter()
	protectedRewardRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedRewardRoutes.HandleFunc("/{id}/redeem", rewardHandler.RedeemRewardHandler).Methods("POST")
	protectedRewardRoutes.HandleFunc("/redemptions", rewardHandler.GetRedemptionsHandler).Methods("GET")

	// Challenge routes
	challengeRoutes := router.PathPrefix("/challenges").Subrouter()
	challengeRoutes.Use(middleware.OptionalAuthMiddleware(cfg.JWTSecret))
	challengeRoutes.HandleFunc("", challengeHandler.GetChallengesHandler).Methods("GET")

	protectedChallengeRoutes := router.PathPrefix("/challenges").Subrouter()
	protectedChallengeRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedChallengeRoutes.HandleFunc("/{id}/complete", challengeHandler.CompleteChallengeHandler).Methods("POST")

	// Event routes
	router.HandleFunc("/events", eventHandler.GetEventsHandler).Methods("GET")

	protectedEventRoutes := router.PathPrefix("/events").Subrouter()
	protectedEventRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedEventRoutes.HandleFunc("/{id}/register", eventHandler.RegisterEventHandler).Methods("POST")

	// Leaderboard
	router.HandleFunc("/leaderboard", leaderboardHandler.GetLeaderboardHandler).Methods("GET")
	router.Handle("/ws/leaderboard", hub)

	// Trip routes
	protectedTripRoutes := router.PathPrefix("/trips").Subrouter()
	protectedTripRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedTripRoutes.HandleFunc("", tripHandler.LogTripHandler).Methods("POST")
	protectedTripRoutes.HandleFunc("", tripHandler.GetTripsHandler).Methods("GET")

	// Route optimizer
	router.HandleFunc("/routes/optimize", routeHandler.OptimizeRouteHandler).Methods("GET")

	// Notification routes keep their explicit userId contract; tokens are
	// honored when present so callers cannot touch other users' feeds
	notificationRoutes := router.PathPrefix("/notifications").Subrouter()
	notificationRoutes.Use(middleware.OptionalAuthMiddleware(cfg.JWTSecret))
	notificationRoutes.HandleFunc("", notificationHandler.GetNotificationsHandler).Methods("GET")
	notificationRoutes.HandleFunc("", notificationHandler.MarkReadHandler).Methods("POST")

	// Admin routes
	adminRoutes := router.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	adminRoutes.Use(middleware.RequireRole("admin"))
	adminRoutes.HandleFunc("/maintenance/streak-scan", adminHandler.RunStreakScanHandler).Methods("POST")
	adminRoutes.HandleFunc("/maintenance/notification-cleanup", adminHandler.RunNotificationCleanupHandler).Methods("POST")

	// Liveness
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)

	fmt.Printf("Server running on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
