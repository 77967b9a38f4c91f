package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/birdiehq/scorekeeper/config"
	"github.com/birdiehq/scorekeeper/db"
	"github.com/birdiehq/scorekeeper/handlers"
	"github.com/birdiehq/scorekeeper/live"
	"github.com/birdiehq/scorekeeper/repositories"
	api "github.com/birdiehq/scorekeeper/routes"
	"github.com/birdiehq/scorekeeper/services"
	"github.com/birdiehq/scorekeeper/storage"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
)

// How often standings are recomputed and pushed to connected scoreboards.
const broadcastInterval = 30 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	// Player photo storage is optional; without R2 config uploads return 503.
	var uploader storage.FileUploader
	if cfg.R2Configured() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Warn("R2 storage not configured, player photo uploads disabled")
	}

	wsHub := live.NewHub()
	go wsHub.Run()
	logger.Info("live update hub started")

	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	holeRepo := repositories.NewPostgresHoleRepository(dbConn)
	roundRepo := repositories.NewPostgresRoundRepository(dbConn)
	calcuttaRepo := repositories.NewPostgresCalcuttaRepository(dbConn)
	userRepo := repositories.NewPostgresUserRepository(dbConn)
	logger.Info("repositories initialized")

	emailService := services.NewEmailService(cfg)
	authService := services.NewAuthService(userRepo)
	playerService := services.NewPlayerService(playerRepo, uploader)
	holeService := services.NewHoleService(holeRepo)
	roundService := services.NewRoundService(roundRepo, playerRepo, wsHub, emailService, logger)
	scorecardService := services.NewScorecardService(calcuttaRepo, roundRepo)
	leaderboardService := services.NewLeaderboardService(roundRepo, wsHub, logger)
	logger.Info("services initialized")

	// Periodic standings broadcast keeps late joiners and idle scoreboards
	// in sync even if they missed a round submission.
	go func() {
		ticker := time.NewTicker(broadcastInterval)
		defer ticker.Stop()
		logger.Info("leaderboard broadcast scheduler started", slog.Duration("interval", broadcastInterval))

		if err := leaderboardService.BroadcastStandings(context.Background()); err != nil {
			logger.Error("scheduler: initial broadcast failed", slog.Any("error", err))
		}

		for range ticker.C {
			if err := leaderboardService.BroadcastStandings(context.Background()); err != nil {
				logger.Error("scheduler: periodic broadcast failed", slog.Any("error", err))
			}
		}
	}()

	h := api.Handlers{
		Auth:        handlers.NewAuthHandler(authService, cfg.JWTSecretKey),
		Player:      handlers.NewPlayerHandler(playerService),
		Hole:        handlers.NewHoleHandler(holeService),
		Round:       handlers.NewRoundHandler(roundService),
		Calcutta:    handlers.NewCalcuttaHandler(scorecardService),
		Leaderboard: handlers.NewLeaderboardHandler(leaderboardService),
		WebSocket:   handlers.NewWebSocketHandler(wsHub),
	}
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(router, h, cfg.JWTSecretKey, cfg.CORSAllowedOrigins)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		} else {
			logger.Info("server stopped gracefully")
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		} else {
			logger.Info("server shutdown complete")
		}
	}
	logger.Info("application exited")
}
