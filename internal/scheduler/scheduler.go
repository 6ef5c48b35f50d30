// Package scheduler runs the monthly market report export on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dtroode/rewards-server/internal/logger"
	"github.com/dtroode/rewards-server/internal/model"
)

// DefaultSchedule runs at 03:00 on the first day of every month.
const DefaultSchedule = "0 3 1 * *"

type Exporter interface {
	ExportPreviousMonth(ctx context.Context) (model.MarketReport, error)
}

type Scheduler struct {
	cron     *cron.Cron
	exporter Exporter
	logger   *logger.Logger
	schedule string
	timeout  time.Duration
}

func New(exporter Exporter, logger *logger.Logger, schedule string, timeout time.Duration) *Scheduler {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	if schedule == "" {
		schedule = DefaultSchedule
	}
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC), cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger))),
		exporter: exporter,
		logger:   logger,
		schedule: schedule,
		timeout:  timeout,
	}
}

// Start registers the export job and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.runExport); err != nil {
		return fmt.Errorf("failed to schedule export job: %w", err)
	}
	s.logger.Info("scheduled market report export", "schedule", s.schedule)

	s.cron.Start()
	return nil
}

// Stop waits for a running job until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) runExport() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	report, err := s.exporter.ExportPreviousMonth(ctx)
	if err != nil {
		s.logger.Error("market report export failed", "error", err)
		return
	}
	s.logger.Info("market report export finished", "month", report.Month, "segments", len(report.Segments))
}
