package reconcile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/lcsolved/internal/catalog"
	"github.com/at-ishikawa/lcsolved/internal/flashcard"
)

// TaskReconcile is the task kind for a reconciliation pass.
const TaskReconcile = "solved.reconcile"

// Result reports how many of the scanned questions matched a flashcard title
// and how many rows were written.
type Result struct {
	Matched int `json:"matched"`
	Total   int `json:"total"`
	Updated int `json:"updated"`
}

// Reconciler recomputes every question's solved flag from scratch.
type Reconciler struct {
	cards     flashcard.CardRepository
	questions catalog.QuestionRepository
	logger    *slog.Logger
}

func NewReconciler(cards flashcard.CardRepository, questions catalog.QuestionRepository, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{cards: cards, questions: questions, logger: logger}
}

func (r *Reconciler) Reconcile(ctx context.Context) (*Result, error) {
	cards, err := r.cards.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	titles := BuildTitleSet(cards)

	questions, err := r.questions.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{Total: len(questions)}
	for _, q := range questions {
		solved := titles.Contains(NormalizeQuestionTitle(q.Title))
		if solved {
			result.Matched++
		}
		if solved == q.Solved {
			continue
		}
		if err := r.questions.UpdateSolved(ctx, q.QuestionID, solved); err != nil {
			return nil, fmt.Errorf("reconcile question %d: %w", q.QuestionID, err)
		}
		result.Updated++
	}

	r.logger.Info("solved status reconciled",
		"cards", len(cards),
		"titles", len(titles),
		"matched", result.Matched,
		"total", result.Total,
		"updated", result.Updated)
	return result, nil
}
