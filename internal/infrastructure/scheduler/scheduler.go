// Package scheduler runs the periodic reconciliation sweep: a cron-triggered
// bulk resend that registers any source records the event stream missed.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/jobsboard/integration-bridge/internal/application/resend"
)

// Config holds reconciliation scheduler settings.
type Config struct {
	// CronSchedule is a standard 5-field cron expression
	CronSchedule string
	// RunTimeout bounds a single reconciliation sweep
	RunTimeout time.Duration
}

// Scheduler triggers reconciliation sweeps on a cron schedule. A sweep walks
// every employer and job in the source system and registers the ones with no
// mapping yet; mapped records are left untouched.
type Scheduler struct {
	cron    *cron.Cron
	resend  *resend.Service
	config  Config
	logger  *zap.Logger
	running bool
}

// New creates a reconciliation scheduler.
func New(resendService *resend.Service, config Config, log *zap.Logger) *Scheduler {
	if config.RunTimeout <= 0 {
		config.RunTimeout = 30 * time.Minute
	}
	return &Scheduler{
		cron:   cron.New(),
		resend: resendService,
		config: config,
		logger: log.Named("scheduler"),
	}
}

// Start registers the cron entry and starts the scheduler.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.config.CronSchedule, s.runSweep); err != nil {
		return err
	}
	s.cron.Start()
	s.running = true
	s.logger.Info("Reconciliation scheduler started", zap.String("schedule", s.config.CronSchedule))
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	if !s.running {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.running = false
	s.logger.Info("Reconciliation scheduler stopped")
}

// runSweep performs one reconciliation pass over employers then jobs. Jobs
// reference employer mappings, so employers go first.
func (s *Scheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.RunTimeout)
	defer cancel()

	start := time.Now()
	s.logger.Info("Reconciliation sweep started")

	employerResult, err := s.resend.ResendEmployers(ctx, nil, false)
	if err != nil {
		s.logger.Error("Employer reconciliation failed", zap.Error(err))
		return
	}

	jobResult, err := s.resend.ResendJobs(ctx, nil, false)
	if err != nil {
		s.logger.Error("Job reconciliation failed", zap.Error(err))
		return
	}

	s.logger.Info("Reconciliation sweep completed",
		zap.Int64("employers_sent", employerResult.ItemCount),
		zap.Int64("employers_total", employerResult.TotalCount),
		zap.Int64("jobs_sent", jobResult.ItemCount),
		zap.Int64("jobs_total", jobResult.TotalCount),
		zap.Duration("elapsed", time.Since(start)),
	)
}
