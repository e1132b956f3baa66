package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/avast/retry-go"
)

// TaskInsertQuestion is the task kind for inserting one new question.
const TaskInsertQuestion = "catalog.insert_question"

//go:generate mockgen -source=ingester.go -destination=../mocks/catalog/mock_ingester.go -package=mock_catalog

// QuestionFetcher fetches the raw feed.
type QuestionFetcher interface {
	FetchQuestions(ctx context.Context) ([]FeedRecord, error)
}

// Dispatcher enqueues deferred work.
type Dispatcher interface {
	Enqueue(ctx context.Context, kind string, payload any) error
}

// IngestResult summarizes one catalog ingestion run.
type IngestResult struct {
	Fetched       int
	Scheduled     int
	EnqueueFailed int
}

// Ingester adds questions that are new to the catalog. The id snapshot only
// avoids scheduling known questions; each insert is decided atomically by the
// repository when its task runs.
type Ingester struct {
	fetcher     QuestionFetcher
	repo        QuestionRepository
	dispatcher  Dispatcher
	urlTemplate string
	logger      *slog.Logger
}

func NewIngester(fetcher QuestionFetcher, repo QuestionRepository, dispatcher Dispatcher, urlTemplate string, logger *slog.Logger) *Ingester {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingester{
		fetcher:     fetcher,
		repo:        repo,
		dispatcher:  dispatcher,
		urlTemplate: urlTemplate,
		logger:      logger,
	}
}

func (i *Ingester) Ingest(ctx context.Context) (*IngestResult, error) {
	records, err := i.fetcher.FetchQuestions(ctx)
	if err != nil {
		return nil, err
	}

	ids, err := i.repo.FindAllIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot existing questions: %w", err)
	}
	known := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		known[id] = struct{}{}
	}

	result := &IngestResult{Fetched: len(records)}
	for _, record := range records {
		if _, ok := known[record.ID]; ok {
			continue
		}
		known[record.ID] = struct{}{}

		question := record.ToQuestion(i.urlTemplate)
		if err := i.dispatcher.Enqueue(ctx, TaskInsertQuestion, question); err != nil {
			i.logger.Error("failed to schedule question insert",
				"question_id", question.QuestionID,
				"error", err)
			result.EnqueueFailed++
			continue
		}
		result.Scheduled++
	}

	i.logger.Info("catalog ingestion scheduled",
		"fetched", result.Fetched,
		"scheduled", result.Scheduled,
		"enqueue_failed", result.EnqueueFailed)
	return result, nil
}

// InsertQuestion inserts one question if nobody else did first.
func (i *Ingester) InsertQuestion(ctx context.Context, question Question) error {
	inserted, err := i.repo.InsertIfAbsent(ctx, &question)
	if err != nil {
		return err
	}
	if inserted {
		i.logger.Debug("question inserted", "question_id", question.QuestionID, "title", question.Title)
	} else {
		i.logger.Debug("question already present", "question_id", question.QuestionID)
	}
	return nil
}

// HandleInsertQuestion decodes a TaskInsertQuestion payload and inserts it.
// A payload that cannot be decoded is not retried.
func (i *Ingester) HandleInsertQuestion(ctx context.Context, payload json.RawMessage) error {
	var question Question
	if err := json.Unmarshal(payload, &question); err != nil {
		return retry.Unrecoverable(fmt.Errorf("decode %s payload: %w", TaskInsertQuestion, err))
	}
	return i.InsertQuestion(ctx, question)
}
