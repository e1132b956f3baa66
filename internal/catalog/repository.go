package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/catalog/mock_repository.go -package=mock_catalog

// QuestionRepository defines operations for managing catalog questions.
type QuestionRepository interface {
	FindAll(ctx context.Context) ([]Question, error)
	FindUnsolved(ctx context.Context) ([]Question, error)
	FindByQuestionID(ctx context.Context, questionID int64) (*Question, error)
	FindAllIDs(ctx context.Context) ([]int64, error)
	InsertIfAbsent(ctx context.Context, question *Question) (bool, error)
	UpdateSolved(ctx context.Context, questionID int64, solved bool) error
	ResetSolved(ctx context.Context) (int64, error)
}

const questionColumns = "question_id, title, contest_name, problem_index, rating, url, solved"

// DBQuestionRepository implements QuestionRepository on MySQL or SQLite.
// It accepts either a *sqlx.DB or a *sqlx.Tx.
type DBQuestionRepository struct {
	db sqlx.ExtContext
}

// NewDBQuestionRepository creates a new DBQuestionRepository.
func NewDBQuestionRepository(db sqlx.ExtContext) *DBQuestionRepository {
	return &DBQuestionRepository{db: db}
}

// FindAll returns every question in question_id order.
func (r *DBQuestionRepository) FindAll(ctx context.Context) ([]Question, error) {
	var questions []Question
	if err := sqlx.SelectContext(ctx, r.db, &questions,
		"SELECT "+questionColumns+" FROM questions ORDER BY question_id"); err != nil {
		return nil, fmt.Errorf("load all questions: %w", err)
	}
	return questions, nil
}

func (r *DBQuestionRepository) FindUnsolved(ctx context.Context) ([]Question, error) {
	var questions []Question
	if err := sqlx.SelectContext(ctx, r.db, &questions,
		"SELECT "+questionColumns+" FROM questions WHERE solved = ? ORDER BY question_id", false); err != nil {
		return nil, fmt.Errorf("load unsolved questions: %w", err)
	}
	return questions, nil
}

// FindByQuestionID returns nil without an error when the question does not exist.
func (r *DBQuestionRepository) FindByQuestionID(ctx context.Context, questionID int64) (*Question, error) {
	var q Question
	err := sqlx.GetContext(ctx, r.db, &q,
		"SELECT "+questionColumns+" FROM questions WHERE question_id = ?", questionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find question %d: %w", questionID, err)
	}
	return &q, nil
}

func (r *DBQuestionRepository) FindAllIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := sqlx.SelectContext(ctx, r.db, &ids, "SELECT question_id FROM questions"); err != nil {
		return nil, fmt.Errorf("load question ids: %w", err)
	}
	return ids, nil
}

// InsertIfAbsent inserts the question unless its question_id already exists
// and reports whether a row was written. The check and the write are one statement.
func (r *DBQuestionRepository) InsertIfAbsent(ctx context.Context, question *Question) (bool, error) {
	query := "INSERT INTO questions (" + questionColumns + ") VALUES (:question_id, :title, :contest_name, :problem_index, :rating, :url, :solved)"
	if r.db.DriverName() == "mysql" {
		query += " ON DUPLICATE KEY UPDATE question_id = question_id"
	} else {
		query += " ON CONFLICT(question_id) DO NOTHING"
	}

	result, err := sqlx.NamedExecContext(ctx, r.db, query, question)
	if err != nil {
		return false, fmt.Errorf("insert question %d: %w", question.QuestionID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert question %d: rows affected: %w", question.QuestionID, err)
	}
	return affected == 1, nil
}

// UpdateSolved patches only the solved flag.
func (r *DBQuestionRepository) UpdateSolved(ctx context.Context, questionID int64, solved bool) error {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE questions SET solved = ?, updated_at = CURRENT_TIMESTAMP WHERE question_id = ?",
		solved, questionID); err != nil {
		return fmt.Errorf("update solved for question %d: %w", questionID, err)
	}
	return nil
}

// ResetSolved clears the solved flag on every question and returns how many changed.
func (r *DBQuestionRepository) ResetSolved(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE questions SET solved = ?, updated_at = CURRENT_TIMESTAMP WHERE solved = ?", false, true)
	if err != nil {
		return 0, fmt.Errorf("reset solved flags: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reset solved flags: rows affected: %w", err)
	}
	return n, nil
}
