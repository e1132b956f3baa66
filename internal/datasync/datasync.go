// Package datasync backs up both stores to YAML and restores them.
package datasync

import (
	"context"
	"fmt"
	"io"

	"github.com/at-ishikawa/lcsolved/internal/catalog"
	"github.com/at-ishikawa/lcsolved/internal/flashcard"
)

// ExportData holds all exported data from the database.
type ExportData struct {
	Questions  []catalog.Question
	Flashcards []flashcard.Card
}

// ImportResult tracks counts for each import operation.
type ImportResult struct {
	QuestionsNew      int
	QuestionsSkipped  int
	FlashcardsNew     int
	FlashcardsSkipped int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool
}

// Importer writes exported data back into the stores. Existing rows are
// never modified.
type Importer struct {
	questions catalog.QuestionRepository
	cards     flashcard.CardRepository
	writer    io.Writer
}

func NewImporter(questions catalog.QuestionRepository, cards flashcard.CardRepository, writer io.Writer) *Importer {
	if writer == nil {
		writer = io.Discard
	}
	return &Importer{
		questions: questions,
		cards:     cards,
		writer:    writer,
	}
}

func (imp *Importer) Import(ctx context.Context, data *ExportData, opts ImportOptions) (*ImportResult, error) {
	var result ImportResult
	for i := range data.Questions {
		if err := imp.importQuestion(ctx, &data.Questions[i], opts, &result); err != nil {
			return nil, err
		}
	}
	for i := range data.Flashcards {
		if err := imp.importCard(ctx, &data.Flashcards[i], opts, &result); err != nil {
			return nil, err
		}
	}
	return &result, nil
}

func (imp *Importer) importQuestion(ctx context.Context, q *catalog.Question, opts ImportOptions, result *ImportResult) error {
	existing, err := imp.questions.FindByQuestionID(ctx, q.QuestionID)
	if err != nil {
		return fmt.Errorf("find question %d: %w", q.QuestionID, err)
	}
	if existing != nil {
		fmt.Fprintf(imp.writer, "  [SKIP]  question %d %q\n", q.QuestionID, q.Title)
		result.QuestionsSkipped++
		return nil
	}

	if !opts.DryRun {
		inserted, err := imp.questions.InsertIfAbsent(ctx, q)
		if err != nil {
			return fmt.Errorf("insert question %d: %w", q.QuestionID, err)
		}
		if !inserted {
			result.QuestionsSkipped++
			return nil
		}
	}
	fmt.Fprintf(imp.writer, "  [NEW]  question %d %q\n", q.QuestionID, q.Title)
	result.QuestionsNew++
	return nil
}

func (imp *Importer) importCard(ctx context.Context, c *flashcard.Card, opts ImportOptions, result *ImportResult) error {
	existing, err := imp.cards.FindByCardID(ctx, c.CardID)
	if err != nil {
		return fmt.Errorf("find flashcard %s: %w", c.CardID, err)
	}
	if existing != nil {
		fmt.Fprintf(imp.writer, "  [SKIP]  flashcard %s\n", c.CardID)
		result.FlashcardsSkipped++
		return nil
	}

	if !opts.DryRun {
		inserted, err := imp.cards.InsertIfAbsent(ctx, c)
		if err != nil {
			return fmt.Errorf("insert flashcard %s: %w", c.CardID, err)
		}
		if !inserted {
			result.FlashcardsSkipped++
			return nil
		}
	}
	fmt.Fprintf(imp.writer, "  [NEW]  flashcard %s\n", c.CardID)
	result.FlashcardsNew++
	return nil
}

// Exporter reads DB and returns domain structs.
type Exporter struct {
	questions catalog.QuestionRepository
	cards     flashcard.CardRepository
}

func NewExporter(questions catalog.QuestionRepository, cards flashcard.CardRepository) *Exporter {
	return &Exporter{
		questions: questions,
		cards:     cards,
	}
}

// Export reads all data from the database.
func (e *Exporter) Export(ctx context.Context) (*ExportData, error) {
	questions, err := e.questions.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("export questions: %w", err)
	}
	cards, err := e.cards.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("export flashcards: %w", err)
	}
	if questions == nil {
		questions = []catalog.Question{}
	}
	if cards == nil {
		cards = []flashcard.Card{}
	}
	return &ExportData{
		Questions:  questions,
		Flashcards: cards,
	}, nil
}
