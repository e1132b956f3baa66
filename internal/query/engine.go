package query

import (
	"context"

	"github.com/at-ishikawa/lcsolved/internal/catalog"
)

// Engine serves filtered views of the catalog.
type Engine struct {
	repo catalog.QuestionRepository
}

func NewEngine(repo catalog.QuestionRepository) *Engine {
	return &Engine{repo: repo}
}

func (e *Engine) Query(ctx context.Context, f Filter) ([]catalog.Question, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	questions, err := e.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return Apply(questions, f), nil
}

func (e *Engine) All(ctx context.Context) ([]catalog.Question, error) {
	return e.repo.FindAll(ctx)
}

func (e *Engine) Unsolved(ctx context.Context) ([]catalog.Question, error) {
	return e.repo.FindUnsolved(ctx)
}
