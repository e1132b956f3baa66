package flashcard

import (
	"context"
	"log/slog"
)

//go:generate mockgen -source=ingester.go -destination=../mocks/flashcard/mock_ingester.go -package=mock_flashcard

// CardFetcher fetches cards from the flashcard service.
type CardFetcher interface {
	FetchCards(ctx context.Context) ([]Card, error)
}

type IngestResult struct {
	Fetched int
	New     int
	Skipped int
	Empty   int
}

// Ingester copies cards that are not stored yet. Known cards are never updated.
type Ingester struct {
	fetcher CardFetcher
	repo    CardRepository
	logger  *slog.Logger
}

func NewIngester(fetcher CardFetcher, repo CardRepository, logger *slog.Logger) *Ingester {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingester{fetcher: fetcher, repo: repo, logger: logger}
}

func (i *Ingester) Ingest(ctx context.Context) (*IngestResult, error) {
	cards, err := i.fetcher.FetchCards(ctx)
	if err != nil {
		return nil, err
	}

	result := &IngestResult{Fetched: len(cards)}
	for _, card := range cards {
		if card.Content == "" {
			result.Empty++
			continue
		}

		existing, err := i.repo.FindByCardID(ctx, card.CardID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			result.Skipped++
			continue
		}

		inserted, err := i.repo.InsertIfAbsent(ctx, &card)
		if err != nil {
			return nil, err
		}
		if inserted {
			result.New++
		} else {
			result.Skipped++
		}
	}

	i.logger.Info("flashcard ingestion finished",
		"fetched", result.Fetched,
		"new", result.New,
		"skipped", result.Skipped,
		"empty", result.Empty)
	return result, nil
}
