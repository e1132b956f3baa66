package flashcard

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/flashcard/mock_repository.go -package=mock_flashcard

// CardRepository defines operations for managing flashcards.
type CardRepository interface {
	FindAll(ctx context.Context) ([]Card, error)
	FindByCardID(ctx context.Context, cardID string) (*Card, error)
	InsertIfAbsent(ctx context.Context, card *Card) (bool, error)
}

// DBCardRepository implements CardRepository on MySQL or SQLite.
type DBCardRepository struct {
	db sqlx.ExtContext
}

// NewDBCardRepository creates a new DBCardRepository.
func NewDBCardRepository(db sqlx.ExtContext) *DBCardRepository {
	return &DBCardRepository{db: db}
}

// FindAll returns all flashcards.
func (r *DBCardRepository) FindAll(ctx context.Context) ([]Card, error) {
	var cards []Card
	if err := sqlx.SelectContext(ctx, r.db, &cards, "SELECT card_id, content FROM flashcards ORDER BY card_id"); err != nil {
		return nil, fmt.Errorf("load all flashcards: %w", err)
	}
	return cards, nil
}

// FindByCardID returns nil without an error when the card does not exist.
func (r *DBCardRepository) FindByCardID(ctx context.Context, cardID string) (*Card, error) {
	var card Card
	err := sqlx.GetContext(ctx, r.db, &card, "SELECT card_id, content FROM flashcards WHERE card_id = ?", cardID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find flashcard %s: %w", cardID, err)
	}
	return &card, nil
}

func (r *DBCardRepository) InsertIfAbsent(ctx context.Context, card *Card) (bool, error) {
	query := "INSERT INTO flashcards (card_id, content) VALUES (:card_id, :content)"
	if r.db.DriverName() == "mysql" {
		query += " ON DUPLICATE KEY UPDATE card_id = card_id"
	} else {
		query += " ON CONFLICT(card_id) DO NOTHING"
	}

	result, err := sqlx.NamedExecContext(ctx, r.db, query, card)
	if err != nil {
		return false, fmt.Errorf("insert flashcard %s: %w", card.CardID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert flashcard %s: rows affected: %w", card.CardID, err)
	}
	return affected == 1, nil
}
