// Package jobs runs the background schedules of the dashboard.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/storeline-pos/storeline/internal/accounting"
)

// Scheduler owns the cron loop. Its only schedule today is the overdue
// invoice sweep.
type Scheduler struct {
	cron      *cron.Cron
	invoices  *accounting.Service
	sweepSpec string
	logger    *slog.Logger
	now       func() time.Time
}

func NewScheduler(logger *slog.Logger, invoices *accounting.Service, sweepSpec string) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		invoices:  invoices,
		sweepSpec: sweepSpec,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.sweepSpec, s.runOverdueSweep); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("scheduler started", slog.String("overdue_sweep", s.sweepSpec))
	return nil
}

// Stop halts the cron loop and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) runOverdueSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	moved, err := s.invoices.SweepOverdue(ctx, s.now())
	if err != nil {
		s.logger.Error("overdue sweep failed", slog.Any("error", err))
		return
	}
	if moved > 0 {
		s.logger.Info("overdue sweep moved invoices", slog.Int("count", moved))
	}
}
