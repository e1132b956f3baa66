// Package taskqueue runs deferred units of work on a pool of workers. Each task
// is retried on its own, so one failing task never affects the others.
package taskqueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/avast/retry-go"
	"github.com/google/uuid"
)

var (
	ErrUnknownKind = errors.New("no handler registered for task kind")
	ErrQueueFull   = errors.New("task queue is full")
)

// Handler executes one task. Wrap an error with retry.Unrecoverable to skip
// the remaining attempts.
type Handler func(ctx context.Context, payload json.RawMessage) error

type Task struct {
	ID      string
	Kind    string
	Payload json.RawMessage
}

type Config struct {
	Workers       int
	QueueSize     int
	RetryAttempts uint
	RetryDelay    time.Duration
}

// Stats counts finished tasks since the queue was created.
type Stats struct {
	Succeeded int64
	Failed    int64
	Dropped   int64
}

type Queue struct {
	cfg    Config
	logger *slog.Logger

	handlersMu sync.RWMutex
	handlers   map[string]Handler

	mu      sync.Mutex
	pending []Task
	queued  int
	ready   chan struct{}

	inflight sync.WaitGroup

	succeeded atomic.Int64
	failed    atomic.Int64
	dropped   atomic.Int64
}

func New(cfg Config, logger *slog.Logger) *Queue {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &Queue{
		cfg:      cfg,
		logger:   logger,
		handlers: make(map[string]Handler),
		ready:    make(chan struct{}, 1),
	}
}

// Handle registers the handler for kind, replacing any previous one.
func (q *Queue) Handle(kind string, handler Handler) {
	q.handlersMu.Lock()
	defer q.handlersMu.Unlock()
	q.handlers[kind] = handler
}

func (q *Queue) handler(kind string) (Handler, bool) {
	q.handlersMu.RLock()
	defer q.handlersMu.RUnlock()
	h, ok := q.handlers[kind]
	return h, ok
}

// Enqueue schedules a task to run as soon as a worker is free.
func (q *Queue) Enqueue(ctx context.Context, kind string, payload any) error {
	return q.EnqueueAfter(ctx, 0, kind, payload)
}

// EnqueueAfter schedules a task to run once delay has elapsed.
func (q *Queue) EnqueueAfter(ctx context.Context, delay time.Duration, kind string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := q.handler(kind); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	task, err := newTask(kind, payload)
	if err != nil {
		return err
	}

	q.mu.Lock()
	if q.cfg.QueueSize > 0 && q.queued >= q.cfg.QueueSize {
		q.mu.Unlock()
		return fmt.Errorf("%w: %d tasks pending", ErrQueueFull, q.cfg.QueueSize)
	}
	q.queued++
	q.inflight.Add(1)
	q.mu.Unlock()

	if delay <= 0 {
		q.push(task)
	} else {
		time.AfterFunc(delay, func() { q.push(task) })
	}
	q.logger.Debug("task enqueued", "task_id", task.ID, "kind", kind, "delay", delay)
	return nil
}

func newTask(kind string, payload any) (Task, error) {
	var raw json.RawMessage
	switch p := payload.(type) {
	case nil:
	case json.RawMessage:
		raw = p
	default:
		b, err := json.Marshal(payload)
		if err != nil {
			return Task{}, fmt.Errorf("encode %s payload: %w", kind, err)
		}
		raw = b
	}
	return Task{ID: uuid.NewString(), Kind: kind, Payload: raw}, nil
}

func (q *Queue) push(task Task) {
	q.mu.Lock()
	q.pending = append(q.pending, task)
	q.mu.Unlock()
	q.signal()
}

func (q *Queue) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}

func (q *Queue) next(ctx context.Context) (Task, bool) {
	for {
		q.mu.Lock()
		if len(q.pending) > 0 {
			task := q.pending[0]
			q.pending = q.pending[1:]
			more := len(q.pending) > 0
			q.mu.Unlock()
			if more {
				q.signal()
			}
			return task, true
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return Task{}, false
		case <-q.ready:
		}
	}
}

// Run starts the workers and blocks until ctx is done and every worker has
// finished its current task.
func (q *Queue) Run(ctx context.Context) error {
	q.logger.Info("task queue started", "workers", q.cfg.Workers)
	var wg sync.WaitGroup
	for i := 0; i < q.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				task, ok := q.next(ctx)
				if !ok {
					return
				}
				q.process(ctx, task)
			}
		}()
	}
	wg.Wait()
	q.logger.Info("task queue stopped")
	return nil
}

// Wait blocks until every task enqueued so far, delayed ones included, has
// finished, or until ctx is done. Tasks enqueued by running tasks are waited
// for too.
func (q *Queue) Wait(ctx context.Context) error {
	idle := make(chan struct{})
	go func() {
		q.inflight.Wait()
		close(idle)
	}()
	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *Queue) Stats() Stats {
	return Stats{
		Succeeded: q.succeeded.Load(),
		Failed:    q.failed.Load(),
		Dropped:   q.dropped.Load(),
	}
}

func (q *Queue) process(ctx context.Context, task Task) {
	defer func() {
		q.mu.Lock()
		q.queued--
		q.mu.Unlock()
		q.inflight.Done()
	}()

	logger := q.logger.With("task_id", task.ID, "kind", task.Kind)
	handler, ok := q.handler(task.Kind)
	if !ok {
		logger.Warn("dropping task without handler")
		q.dropped.Add(1)
		return
	}

	start := time.Now()
	err := retry.Do(
		func() error {
			return safeCall(ctx, handler, task.Payload)
		},
		retry.Context(ctx),
		retry.Attempts(q.cfg.RetryAttempts+1),
		retry.Delay(q.cfg.RetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Debug("task attempt failed", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		q.failed.Add(1)
		logger.Error("task failed", "error", err, "duration", time.Since(start))
		return
	}
	q.succeeded.Add(1)
	logger.Debug("task finished", "duration", time.Since(start))
}

func safeCall(ctx context.Context, handler Handler, payload json.RawMessage) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return handler(ctx, payload)
}
