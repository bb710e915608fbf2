// Package background runs the telemetry simulator on a fixed interval with
// an explicit start/stop lifecycle.
package background

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"coldmart/internal/jobs"
)

// Scheduler owns the gocron scheduler and the simulator job registered on
// it. Unlike a bare ticker it can be shut down cleanly, and tests can drive
// it with a fake clock.
type Scheduler struct {
	scheduler gocron.Scheduler
	simulator *jobs.TelemetrySimulator
	logger    *zap.Logger
}

func NewScheduler(simulator *jobs.TelemetrySimulator, interval time.Duration, clock clockwork.Clock, logger *zap.Logger) (*Scheduler, error) {
	scheduler, err := gocron.NewScheduler(gocron.WithClock(clock))
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	s := &Scheduler{
		scheduler: scheduler,
		simulator: simulator,
		logger:    logger,
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.runTick),
		gocron.WithName("sensor-telemetry"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("register telemetry job: %w", err)
	}
	return s, nil
}

// Start begins ticking. Returns immediately; ticks run on the scheduler's
// goroutine.
func (s *Scheduler) Start() {
	s.logger.Info("starting telemetry scheduler")
	s.scheduler.Start()
}

// Stop shuts the scheduler down and waits for a running tick to finish.
func (s *Scheduler) Stop() error {
	s.logger.Info("stopping telemetry scheduler")
	return s.scheduler.Shutdown()
}

func (s *Scheduler) runTick() {
	if err := s.simulator.Tick(context.Background()); err != nil {
		s.logger.Error("telemetry tick failed", zap.Error(err))
	}
}
