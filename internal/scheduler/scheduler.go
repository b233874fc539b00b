package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/arabyads/influencer-service/internal/infrastructure/metrics"
)

// Scheduler runs the reconciliation jobs on cron schedules. Jobs are
// independent: one failing never keeps another from running.
type Scheduler struct {
	cron    *cron.Cron
	metrics *metrics.ReconciliationMetrics
}

func New(timezone string, m *metrics.ReconciliationMetrics) (*Scheduler, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("loading scheduler timezone %q: %w", timezone, err)
	}
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(location)),
		metrics: m,
	}, nil
}

// Register schedules a named job. Runs are logged and measured; panics are
// confined to the run that raised them.
func (s *Scheduler) Register(name, spec string, job func() error) error {
	_, err := s.cron.AddFunc(spec, func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("scheduled job panicked", "job", name, "panic", r)
				s.metrics.RecordRun(name, "panic", 0)
			}
		}()

		slog.Info("scheduled job started", "job", name)
		started := time.Now()
		if err := job(); err != nil {
			slog.Error("scheduled job failed", "job", name, "error", err.Error())
			s.metrics.RecordRun(name, "error", time.Since(started).Seconds())
			return
		}
		slog.Info("scheduled job finished", "job", name, "duration", time.Since(started).String())
		s.metrics.RecordRun(name, "ok", time.Since(started).Seconds())
	})
	if err != nil {
		return fmt.Errorf("scheduling job %q: %w", name, err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
