// Package scheduler runs recurring jobs on a cron schedule. Used by the
// remind command to surface the current best task periodically.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
)

// Scheduler wraps a cron runner.
type Scheduler struct {
	c *cron.Cron
}

// New creates a scheduler. Standard 5-field cron expressions.
func New() *Scheduler {
	return &Scheduler{c: cron.New()}
}

// AddCron registers a recurring job. Returns an error for an invalid
// expression.
func (s *Scheduler) AddCron(expr string, job func()) error {
	if _, err := s.c.AddFunc(expr, job); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}
	return nil
}

// Run starts the scheduler and blocks until ctx is cancelled, then stops
// and waits for running jobs to finish.
func (s *Scheduler) Run(ctx context.Context) {
	s.c.Start()
	<-ctx.Done()
	stopCtx := s.c.Stop()
	<-stopCtx.Done()
}

// Entries returns the number of registered jobs.
func (s *Scheduler) Entries() int {
	return len(s.c.Entries())
}
