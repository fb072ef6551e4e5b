package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/config"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/service"
)

// Scheduler manages the background jobs: the morning market price
// refresh and the portfolio snapshot recompute that follows it.
type Scheduler struct {
	cron        *cron.Cron
	priceSvc    *service.PriceService
	snapshotSvc *service.SnapshotService
	cfg         config.SchedulerConfig
	logger      *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.SchedulerConfig, priceSvc *service.PriceService, snapshotSvc *service.SnapshotService, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:        cron.New(),
		priceSvc:    priceSvc,
		snapshotSvc: snapshotSvc,
		cfg:         cfg,
		logger:      logger,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler",
		zap.String("price_refresh_cron", s.cfg.PriceRefreshCron),
		zap.String("snapshot_cron", s.cfg.SnapshotCron))

	if _, err := s.cron.AddFunc(s.cfg.PriceRefreshCron, s.refreshPrices); err != nil {
		s.logger.Error("failed to schedule price refresh", zap.Error(err))
	}
	if _, err := s.cron.AddFunc(s.cfg.SnapshotCron, s.refreshSnapshot); err != nil {
		s.logger.Error("failed to schedule snapshot refresh", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler. Running jobs are allowed to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) refreshPrices() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	count, err := s.priceSvc.Refresh(ctx)
	if err != nil {
		s.logger.Error("scheduled price refresh failed", zap.Error(err))
		return
	}
	s.logger.Info("scheduled price refresh complete", zap.Int("quotes", count))
}

func (s *Scheduler) refreshSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	refreshed, err := s.snapshotSvc.Refresh(ctx)
	if err != nil {
		s.logger.Error("scheduled snapshot refresh failed", zap.Error(err))
		return
	}
	s.logger.Info("scheduled snapshot refresh complete", zap.Bool("refreshed", refreshed))
}
