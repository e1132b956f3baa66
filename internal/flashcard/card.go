// Package flashcard stores Mochi flashcards and ingests new ones from the Mochi API.
package flashcard

// Card is a flashcard as first seen. Content is never refreshed afterwards.
type Card struct {
	CardID  string `db:"card_id" json:"card_id" yaml:"card_id"`
	Content string `db:"content" json:"content" yaml:"content"`
}
