package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dhairyapractice/Solo-leveling/internal/badge"
	"github.com/dhairyapractice/Solo-leveling/internal/bootstrap"
	"github.com/dhairyapractice/Solo-leveling/internal/concurrency"
	"github.com/dhairyapractice/Solo-leveling/internal/config"
	"github.com/dhairyapractice/Solo-leveling/internal/database"
	"github.com/dhairyapractice/Solo-leveling/internal/hunter"
	"github.com/dhairyapractice/Solo-leveling/internal/server"
	"github.com/dhairyapractice/Solo-leveling/internal/shop"
	"github.com/dhairyapractice/Solo-leveling/internal/storage"
	"github.com/dhairyapractice/Solo-leveling/internal/worker"
)

const (
	dbMaxConns        = 25
	dbMaxConnIdleTime = 30 * time.Minute
	dbMaxConnLifetime = time.Hour

	shutdownTimeout = 30 * time.Second
)

// @title Solo Leveling API
// @version 1.0
// @description Self-improvement tracker with RPG progression: quests, boss battles, goals, shop and badges.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConns, dbMaxConnIdleTime, dbMaxConnLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	locks := concurrency.NewLockManager()

	badgeService, err := badge.NewService(repos.Badge, repos.Hunter)
	if err != nil {
		slog.Error("Badge service setup failed", "error", err)
		os.Exit(1)
	}
	hunterService := hunter.NewService(repos.Hunter, badgeService, locks)
	shopService := shop.NewService(repos.Shop, locks)

	// Object storage is optional; image routes answer 503 without it.
	var imageStore storage.Service
	if cfg.SpacesBucket != "" {
		imageStore, err = storage.NewSpacesService(cfg.SpacesKey, cfg.SpacesSecret, cfg.SpacesRegion, cfg.SpacesBucket)
		if err != nil {
			slog.Error("Object storage setup failed", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("SPACES_BUCKET not set, image uploads disabled")
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, hunterService, shopService, badgeService, imageStore)

	dailyReset := worker.NewDailyResetWorker(hunterService)
	weeklyReset := worker.NewWeeklyResetWorker(hunterService)
	dailyReset.Start()
	weeklyReset.Start()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:  srv,
		Workers: []*worker.ResetWorker{dailyReset, weeklyReset},
		DBPool:  dbPool,
	})
}
