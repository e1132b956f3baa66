// Package catalog stores rated practice questions and ingests them from the public rating feed.
package catalog

// Question is one catalog entry. Solved is derived from flashcards and only
// changed by reconciliation.
type Question struct {
	QuestionID   int64   `db:"question_id" json:"question_id" yaml:"question_id"`
	Title        string  `db:"title" json:"title" yaml:"title"`
	ContestName  string  `db:"contest_name" json:"contest_name" yaml:"contest_name"`
	ProblemIndex string  `db:"problem_index" json:"problem_index" yaml:"problem_index,omitempty"`
	Rating       float64 `db:"rating" json:"rating" yaml:"rating"`
	URL          string  `db:"url" json:"url" yaml:"url"`
	Solved       bool    `db:"solved" json:"solved" yaml:"solved"`
}
