// Package app wires the stores, upstream clients and task pipeline from configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/lcsolved/internal/catalog"
	"github.com/at-ishikawa/lcsolved/internal/config"
	"github.com/at-ishikawa/lcsolved/internal/database"
	"github.com/at-ishikawa/lcsolved/internal/flashcard"
	"github.com/at-ishikawa/lcsolved/internal/query"
	"github.com/at-ishikawa/lcsolved/internal/reconcile"
	"github.com/at-ishikawa/lcsolved/internal/scheduler"
	"github.com/at-ishikawa/lcsolved/internal/syncer"
	"github.com/at-ishikawa/lcsolved/internal/taskqueue"
)

type App struct {
	DB           *sqlx.DB
	Questions    *catalog.DBQuestionRepository
	Cards        *flashcard.DBCardRepository
	Queue        *taskqueue.Queue
	Scheduler    *scheduler.Scheduler
	Orchestrator *syncer.Orchestrator
	Engine       *query.Engine

	feed   *catalog.FeedClient
	logger *slog.Logger
}

// New opens and migrates the database and builds every component. Without a
// Mochi API key the flashcard sync fails with flashcard.ErrMissingAPIKey when run.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	var fetcher flashcard.CardFetcher = unavailableFetcher{err: flashcard.ErrMissingAPIKey}
	client, err := flashcard.NewClient(flashcard.Config{
		BaseURL:   cfg.Mochi.BaseURL,
		APIKey:    cfg.Mochi.APIKey,
		PageLimit: cfg.Mochi.PageLimit,
	})
	switch {
	case err == nil:
		fetcher = client
	case !errors.Is(err, flashcard.ErrMissingAPIKey):
		_ = db.Close()
		return nil, fmt.Errorf("create mochi client: %w", err)
	}

	a := &App{
		DB:        db,
		Questions: catalog.NewDBQuestionRepository(db),
		Cards:     flashcard.NewDBCardRepository(db),
		feed:      catalog.NewFeedClient(cfg.Catalog.FeedURL),
		logger:    logger,
	}
	a.Engine = query.NewEngine(a.Questions)
	a.Queue = taskqueue.New(taskqueue.Config{
		Workers:       cfg.Sync.Workers,
		QueueSize:     cfg.Sync.QueueSize,
		RetryAttempts: cfg.Sync.RetryAttempts,
		RetryDelay:    cfg.Sync.RetryDelay,
	}, logger)
	a.Scheduler = scheduler.New(a.Queue, logger)
	a.Orchestrator = syncer.New(
		syncer.Config{
			SettleDelay:       cfg.Sync.SettleDelay,
			CatalogInterval:   cfg.Catalog.RefreshInterval,
			FlashcardInterval: cfg.Mochi.RefreshInterval,
		},
		catalog.NewIngester(a.feed, a.Questions, a.Queue, cfg.Catalog.ProblemURLTemplate, logger),
		flashcard.NewIngester(fetcher, a.Cards, logger),
		reconcile.NewReconciler(a.Cards, a.Questions, logger),
		a.Scheduler,
		logger,
	)
	a.Orchestrator.RegisterHandlers(a.Queue)
	return a, nil
}

// RunUntilIdle runs the task queue, calls fn, and returns once every task
// enqueued so far has finished, including follow-up tasks and delayed ones.
// Tasks still pending when ctx is cancelled are abandoned.
func (a *App) RunUntilIdle(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = a.Queue.Run(ctx)
	}()

	err := fn(ctx)
	if err == nil {
		err = a.Queue.Wait(ctx)
	}
	cancel()
	<-done
	return err
}

func (a *App) Close() error {
	return errors.Join(a.feed.Close(), a.DB.Close())
}

type unavailableFetcher struct {
	err error
}

func (f unavailableFetcher) FetchCards(context.Context) ([]flashcard.Card, error) {
	return nil, f.err
}
