package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/api"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/config"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/database"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/marketfeed"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/model"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/repository"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/scheduler"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/service"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/valuation"
	"github.com/herdfolio/Livestock-Portfolio-Backend/pkg/logger"
)

func main() {
	log := logger.Must(logger.New())
	defer log.Sync() //nolint:errcheck

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}

	// Open database connection and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	log.Info("connected to database", zap.String("path", cfg.Database.Path))

	// Create repositories
	herdRepo := repository.NewHerdRepository(db)
	priceRepo := repository.NewPriceRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Market feed is optional; without a URL prices are entered manually.
	var feed marketfeed.Client
	if cfg.Feed.BaseURL != "" {
		feed = marketfeed.NewClient(cfg.Feed)
	}

	engine := valuation.NewEngine(buildAssumptions(cfg.Valuation))

	// Create services
	systemService := service.NewSystemService(db)
	herdService := service.NewHerdService(herdRepo, log)
	priceService := service.NewPriceService(priceRepo, feed, log)
	portfolioService := service.NewPortfolioService(herdRepo, priceRepo, snapshotRepo, engine, log)
	snapshotService := service.NewSnapshotService(portfolioService, snapshotRepo, log)

	// Create router
	router, err := api.NewRouter(systemService, herdService, priceService, portfolioService, snapshotService, cfg, log)
	if err != nil {
		log.Fatal("failed to build router", zap.Error(err))
	}

	// Background jobs
	if cfg.Scheduler.Enabled {
		sched := scheduler.NewScheduler(cfg.Scheduler, priceService, snapshotService, log)
		sched.Start()
		defer sched.Stop()
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("starting server", zap.String("addr", cfg.Server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}

// buildAssumptions applies deployment overrides on top of the engine
// defaults. Zero-valued config fields keep the default.
func buildAssumptions(cfg config.ValuationConfig) valuation.Assumptions {
	a := valuation.DefaultAssumptions()

	if cfg.MortalityRate > 0 {
		a.MortalityRate = cfg.MortalityRate
	}
	if cfg.MonthlyCarryCost > 0 {
		a.MonthlyCarryCost = cfg.MonthlyCarryCost
	}
	if cfg.FallbackPricePerKg > 0 {
		a.FallbackPricePerKg = cfg.FallbackPricePerKg
	}
	if cfg.ReferenceCalfWeightKg > 0 {
		a.ReferenceCalfWeightKg = cfg.ReferenceCalfWeightKg
	}
	if cfg.CattleGestationDays > 0 {
		a.GestationDays[model.SpeciesCattle] = cfg.CattleGestationDays
	}
	if cfg.SheepGestationDays > 0 {
		a.GestationDays[model.SpeciesSheep] = cfg.SheepGestationDays
	}
	if cfg.GoatGestationDays > 0 {
		a.GestationDays[model.SpeciesGoats] = cfg.GoatGestationDays
	}
	if cfg.PigGestationDays > 0 {
		a.GestationDays[model.SpeciesPigs] = cfg.PigGestationDays
	}

	return a
}
