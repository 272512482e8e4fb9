package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lets-heal/internal/domain"
	"lets-heal/internal/repository/models"
	"lets-heal/internal/util"

	"github.com/jmoiron/sqlx"
)

const attemptColumns = `id, customer_id, quiz_id, started_at, completed_at, total_score, result_text, is_completed`

// AttemptDatabaseAdapter implements domain.AttemptRepository using sqlx.DB
type AttemptDatabaseAdapter struct {
	db *sqlx.DB
}

// NewAttemptDatabaseAdapter creates a new instance of AttemptDatabaseAdapter
func NewAttemptDatabaseAdapter(db *sqlx.DB) domain.AttemptRepository {
	return &AttemptDatabaseAdapter{db: db}
}

// CreateAttempt implements domain.AttemptRepository
func (a *AttemptDatabaseAdapter) CreateAttempt(ctx context.Context, attempt *domain.Attempt) error {
	if attempt.ID == "" {
		attempt.ID = util.NewULID()
	}
	m := fromDomainAttempt(attempt)

	query := `INSERT INTO quiz_attempts (` + attemptColumns + `) VALUES (:1, :2, :3, :4, :5, :6, :7, :8)`
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		m.ID, m.CustomerID, m.QuizID, m.StartedAt, m.CompletedAt, m.TotalScore, m.ResultText, m.IsCompleted)
	if err != nil {
		return fmt.Errorf("failed to create attempt: %w", err)
	}
	return nil
}

// GetAttemptByID implements domain.AttemptRepository
func (a *AttemptDatabaseAdapter) GetAttemptByID(ctx context.Context, id string) (*domain.Attempt, error) {
	return a.getAttempt(ctx, `SELECT `+attemptColumns+` FROM quiz_attempts WHERE id = :1`, id)
}

// GetAttemptForUpdate implements domain.AttemptRepository
func (a *AttemptDatabaseAdapter) GetAttemptForUpdate(ctx context.Context, id string) (*domain.Attempt, error) {
	return a.getAttempt(ctx, `SELECT `+attemptColumns+` FROM quiz_attempts WHERE id = :1 FOR UPDATE`, id)
}

func (a *AttemptDatabaseAdapter) getAttempt(ctx context.Context, query, id string) (*domain.Attempt, error) {
	var m models.QuizAttempt
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attempt by ID %s: %w", id, err)
	}
	return toDomainAttempt(&m), nil
}

// ListAnswers implements domain.AttemptRepository
func (a *AttemptDatabaseAdapter) ListAnswers(ctx context.Context, attemptID string) ([]*domain.Answer, error) {
	var rows []models.QuizAnswer
	query := `SELECT attempt_id, question_id, chosen_option, answered_at
	FROM quiz_answers
	WHERE attempt_id = :1
	ORDER BY answered_at, question_id`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, attemptID); err != nil {
		return nil, fmt.Errorf("failed to list answers for attempt %s: %w", attemptID, err)
	}
	answers := make([]*domain.Answer, len(rows))
	for i := range rows {
		answers[i] = toDomainAnswer(&rows[i])
	}
	return answers, nil
}

// UpsertAnswer keeps exactly one answer per (attempt, question); a repeat
// submission replaces the chosen option.
func (a *AttemptDatabaseAdapter) UpsertAnswer(ctx context.Context, answer *domain.Answer) error {
	query := `MERGE INTO quiz_answers t
	USING (SELECT :1 AS attempt_id, :2 AS question_id FROM dual) s
	ON (t.attempt_id = s.attempt_id AND t.question_id = s.question_id)
	WHEN MATCHED THEN
		UPDATE SET t.chosen_option = :3, t.answered_at = :4
	WHEN NOT MATCHED THEN
		INSERT (attempt_id, question_id, chosen_option, answered_at)
		VALUES (:5, :6, :7, :8)`
	option := string(answer.ChosenOption)
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		answer.AttemptID, answer.QuestionID,
		option, answer.AnsweredAt,
		answer.AttemptID, answer.QuestionID, option, answer.AnsweredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert answer for attempt %s question %s: %w", answer.AttemptID, answer.QuestionID, err)
	}
	return nil
}

// CompleteAttempt stores the terminal state. Only an in-progress row is
// updated, so a completed attempt is never overwritten.
func (a *AttemptDatabaseAdapter) CompleteAttempt(ctx context.Context, attempt *domain.Attempt) error {
	m := fromDomainAttempt(attempt)
	query := `UPDATE quiz_attempts SET
		completed_at = :1, total_score = :2, result_text = :3, is_completed = 1
	WHERE id = :4 AND is_completed = 0`
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, query, m.CompletedAt, m.TotalScore, m.ResultText, m.ID)
	if err != nil {
		return fmt.Errorf("failed to complete attempt %s: %w", attempt.ID, err)
	}
	return nil
}
