// Package syncer sequences ingestion and reconciliation and wires them to the task queue.
package syncer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go"

	"github.com/at-ishikawa/lcsolved/internal/catalog"
	"github.com/at-ishikawa/lcsolved/internal/flashcard"
	"github.com/at-ishikawa/lcsolved/internal/reconcile"
	"github.com/at-ishikawa/lcsolved/internal/taskqueue"
)

const (
	TaskCatalogRefresh = "catalog.refresh"
	TaskFlashcardSync  = "flashcards.sync"
)

//go:generate mockgen -source=orchestrator.go -destination=../mocks/syncer/mock_orchestrator.go -package=mock_syncer

// Scheduler registers periodic triggers and deferred one-off tasks.
type Scheduler interface {
	RegisterPeriodic(name string, interval time.Duration, kind string) error
	ScheduleAfter(ctx context.Context, delay time.Duration, kind string, payload any) error
}

// Registrar binds task kinds to handlers.
type Registrar interface {
	Handle(kind string, handler taskqueue.Handler)
}

type CatalogIngester interface {
	Ingest(ctx context.Context) (*catalog.IngestResult, error)
	HandleInsertQuestion(ctx context.Context, payload json.RawMessage) error
}

type FlashcardIngester interface {
	Ingest(ctx context.Context) (*flashcard.IngestResult, error)
}

type SolvedReconciler interface {
	Reconcile(ctx context.Context) (*reconcile.Result, error)
}

type Config struct {
	SettleDelay       time.Duration
	CatalogInterval   time.Duration
	FlashcardInterval time.Duration
}

type Orchestrator struct {
	cfg        Config
	catalog    CatalogIngester
	flashcards FlashcardIngester
	reconciler SolvedReconciler
	scheduler  Scheduler
	logger     *slog.Logger
}

func New(cfg Config, catalogIngester CatalogIngester, flashcards FlashcardIngester, reconciler SolvedReconciler, scheduler Scheduler, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		cfg:        cfg,
		catalog:    catalogIngester,
		flashcards: flashcards,
		reconciler: reconciler,
		scheduler:  scheduler,
		logger:     logger,
	}
}

// SyncFlashcards ingests new flashcards and schedules a reconciliation pass
// after the settle delay.
func (o *Orchestrator) SyncFlashcards(ctx context.Context) (*flashcard.IngestResult, error) {
	result, err := o.flashcards.Ingest(ctx)
	if err != nil {
		return nil, fmt.Errorf("sync flashcards: %w", err)
	}
	if err := o.scheduler.ScheduleAfter(ctx, o.cfg.SettleDelay, reconcile.TaskReconcile, nil); err != nil {
		return result, fmt.Errorf("schedule reconciliation: %w", err)
	}
	o.logger.Info("reconciliation scheduled", "delay", o.cfg.SettleDelay)
	return result, nil
}

func (o *Orchestrator) RefreshCatalog(ctx context.Context) (*catalog.IngestResult, error) {
	result, err := o.catalog.Ingest(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh catalog: %w", err)
	}
	return result, nil
}

func (o *Orchestrator) Reconcile(ctx context.Context) (*reconcile.Result, error) {
	result, err := o.reconciler.Reconcile(ctx)
	if err != nil {
		return nil, fmt.Errorf("reconcile solved status: %w", err)
	}
	return result, nil
}

// RegisterHandlers binds every task kind of the pipeline. Feed fetches are not
// retried within a run; the next trigger tries again. Inserts and
// reconciliation use the queue's retry policy.
func (o *Orchestrator) RegisterHandlers(r Registrar) {
	r.Handle(TaskCatalogRefresh, func(ctx context.Context, _ json.RawMessage) error {
		if _, err := o.RefreshCatalog(ctx); err != nil {
			return retry.Unrecoverable(err)
		}
		return nil
	})
	r.Handle(catalog.TaskInsertQuestion, o.catalog.HandleInsertQuestion)
	r.Handle(TaskFlashcardSync, func(ctx context.Context, _ json.RawMessage) error {
		if _, err := o.SyncFlashcards(ctx); err != nil {
			return retry.Unrecoverable(err)
		}
		return nil
	})
	r.Handle(reconcile.TaskReconcile, func(ctx context.Context, _ json.RawMessage) error {
		_, err := o.Reconcile(ctx)
		return err
	})
}

// RegisterPeriodic registers the catalog and flashcard triggers.
func (o *Orchestrator) RegisterPeriodic() error {
	if err := o.scheduler.RegisterPeriodic("catalog-refresh", o.cfg.CatalogInterval, TaskCatalogRefresh); err != nil {
		return err
	}
	if err := o.scheduler.RegisterPeriodic("flashcard-sync", o.cfg.FlashcardInterval, TaskFlashcardSync); err != nil {
		return err
	}
	return nil
}
