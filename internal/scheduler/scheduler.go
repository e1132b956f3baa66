// Package scheduler triggers periodic tasks on a task queue. Timing is best
// effort: ticks missed while the process is busy are coalesced, not replayed.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Enqueuer is the part of the task queue the scheduler needs.
type Enqueuer interface {
	Enqueue(ctx context.Context, kind string, payload any) error
	EnqueueAfter(ctx context.Context, delay time.Duration, kind string, payload any) error
}

type Job struct {
	Name     string
	Interval time.Duration
	Kind     string
}

type Scheduler struct {
	queue  Enqueuer
	logger *slog.Logger

	mu   sync.Mutex
	jobs []Job
}

func New(queue Enqueuer, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{queue: queue, logger: logger}
}

// RegisterPeriodic adds a job that enqueues kind every interval once Run starts.
func (s *Scheduler) RegisterPeriodic(name string, interval time.Duration, kind string) error {
	if interval <= 0 {
		return fmt.Errorf("register %s: interval must be positive, got %s", name, interval)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, job := range s.jobs {
		if job.Name == name {
			return fmt.Errorf("register %s: job already registered", name)
		}
	}
	s.jobs = append(s.jobs, Job{Name: name, Interval: interval, Kind: kind})
	return nil
}

// ScheduleAfter enqueues a one-off task that runs after delay.
func (s *Scheduler) ScheduleAfter(ctx context.Context, delay time.Duration, kind string, payload any) error {
	return s.queue.EnqueueAfter(ctx, delay, kind, payload)
}

func (s *Scheduler) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Job(nil), s.jobs...)
}

// Run ticks every registered job until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	jobs := s.Jobs()
	var wg sync.WaitGroup
	for _, job := range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.runJob(ctx, job)
		}()
	}
	s.logger.Info("scheduler started", "jobs", len(jobs))
	wg.Wait()
	return nil
}

func (s *Scheduler) runJob(ctx context.Context, job Job) {
	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.queue.Enqueue(ctx, job.Kind, nil); err != nil {
				s.logger.Error("failed to trigger periodic job", "job", job.Name, "kind", job.Kind, "error", err)
				continue
			}
			s.logger.Debug("periodic job triggered", "job", job.Name, "kind", job.Kind)
		}
	}
}
