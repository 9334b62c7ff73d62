// Package scheduler runs recomputation jobs on fixed intervals.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/katiamach/alaska-weather-api/internal/logger"
)

// Job is a named unit of work repeated every Interval.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Scheduler runs jobs independently of each other. Runs of different jobs are
// not ordered, and a slow run delays only the next tick of its own job.
type Scheduler struct {
	clock clockwork.Clock
	jobs  []Job
}

// New creates new Scheduler.
func New(clock clockwork.Clock, jobs ...Job) *Scheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Scheduler{
		clock: clock,
		jobs:  jobs,
	}
}

// Run starts every job, runs it once immediately and then on every tick until
// ctx is cancelled. It blocks until all jobs have stopped.
func (s *Scheduler) Run(ctx context.Context) {
	var wg sync.WaitGroup

	for _, job := range s.jobs {
		wg.Add(1)
		go func(job Job) {
			defer wg.Done()
			s.loop(ctx, job)
		}(job)
	}

	wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, job Job) {
	logger.Info(fmt.Sprintf("Scheduling %s every %s", job.Name, job.Interval))

	ticker := s.clock.NewTicker(job.Interval)
	defer ticker.Stop()

	s.runOnce(ctx, job)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			s.runOnce(ctx, job)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context, job Job) {
	if err := job.Run(ctx); err != nil {
		logger.Error(fmt.Errorf("job %s failed: %w", job.Name, err))
	}
}
