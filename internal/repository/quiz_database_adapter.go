package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lets-heal/internal/domain"
	"lets-heal/internal/repository/models"
	"lets-heal/internal/util"

	"github.com/jmoiron/sqlx"
)

const (
	quizColumns     = `id, title, description, is_active, created_at, updated_at`
	questionColumns = `id, quiz_id, question_order, text, option_a, option_b, option_c, option_d,
		score_a, score_b, score_c, score_d, is_required, created_at, updated_at`
	resultRangeColumns = `id, quiz_id, min_score, max_score, result_text, created_at`
)

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx.DB
type QuizDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

// CreateQuiz implements domain.QuizRepository
func (a *QuizDatabaseAdapter) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	if quiz.ID == "" {
		quiz.ID = util.NewULID()
	}
	now := time.Now()
	if quiz.CreatedAt.IsZero() {
		quiz.CreatedAt = now
	}
	quiz.UpdatedAt = now

	query := `INSERT INTO quizzes (` + quizColumns + `) VALUES (:1, :2, :3, :4, :5, :6)`
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		quiz.ID, quiz.Title, util.StringToNullString(quiz.Description),
		util.BoolToInt(quiz.IsActive), quiz.CreatedAt, quiz.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}
	return nil
}

// GetQuizByID implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	return a.getQuiz(ctx, `SELECT `+quizColumns+` FROM quizzes WHERE id = :1`, id)
}

// GetFirstActiveQuiz returns the earliest-created active quiz.
func (a *QuizDatabaseAdapter) GetFirstActiveQuiz(ctx context.Context) (*domain.Quiz, error) {
	return a.getQuiz(ctx, `SELECT `+quizColumns+` FROM quizzes
	WHERE is_active = 1
	ORDER BY created_at, id
	FETCH FIRST 1 ROWS ONLY`)
}

func (a *QuizDatabaseAdapter) getQuiz(ctx context.Context, query string, args ...interface{}) (*domain.Quiz, error) {
	var m models.Quiz
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	return toDomainQuiz(&m), nil
}

// ListQuestions returns the quiz's questions in presentation order.
func (a *QuizDatabaseAdapter) ListQuestions(ctx context.Context, quizID string) ([]*domain.Question, error) {
	var rows []models.Question
	query := `SELECT ` + questionColumns + ` FROM quiz_questions
	WHERE quiz_id = :1
	ORDER BY question_order, id`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, quizID); err != nil {
		return nil, fmt.Errorf("failed to list questions for quiz %s: %w", quizID, err)
	}
	questions := make([]*domain.Question, len(rows))
	for i := range rows {
		questions[i] = toDomainQuestion(&rows[i])
	}
	return questions, nil
}

// GetQuestionByID implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetQuestionByID(ctx context.Context, id string) (*domain.Question, error) {
	var m models.Question
	query := `SELECT ` + questionColumns + ` FROM quiz_questions WHERE id = :1`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by ID %s: %w", id, err)
	}
	return toDomainQuestion(&m), nil
}

// CreateQuestion implements domain.QuizRepository
func (a *QuizDatabaseAdapter) CreateQuestion(ctx context.Context, question *domain.Question) error {
	if question.ID == "" {
		question.ID = util.NewULID()
	}
	now := time.Now()
	question.CreatedAt = now
	question.UpdatedAt = now
	m := fromDomainQuestion(question)

	query := `INSERT INTO quiz_questions (` + questionColumns + `) VALUES (
		:1, :2, :3, :4, :5, :6, :7, :8, :9, :10, :11, :12, :13, :14, :15
	)`
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		m.ID, m.QuizID, m.Order, m.Text,
		m.OptionA, m.OptionB, m.OptionC, m.OptionD,
		m.ScoreA, m.ScoreB, m.ScoreC, m.ScoreD,
		m.IsRequired, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// UpdateQuestion rewrites every editable column of the question.
func (a *QuizDatabaseAdapter) UpdateQuestion(ctx context.Context, question *domain.Question) error {
	question.UpdatedAt = time.Now()
	m := fromDomainQuestion(question)

	query := `UPDATE quiz_questions SET
		question_order = :1, text = :2,
		option_a = :3, option_b = :4, option_c = :5, option_d = :6,
		score_a = :7, score_b = :8, score_c = :9, score_d = :10,
		is_required = :11, updated_at = :12
	WHERE id = :13`
	result, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		m.Order, m.Text,
		m.OptionA, m.OptionB, m.OptionC, m.OptionD,
		m.ScoreA, m.ScoreB, m.ScoreC, m.ScoreD,
		m.IsRequired, m.UpdatedAt, m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update question %s: %w", question.ID, err)
	}
	return requireAffected(result, "question", question.ID)
}

// DeleteQuestion removes the question; recorded answers cascade.
func (a *QuizDatabaseAdapter) DeleteQuestion(ctx context.Context, id string) error {
	result, err := GetExecutor(ctx, a.db).ExecContext(ctx, `DELETE FROM quiz_questions WHERE id = :1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete question %s: %w", id, err)
	}
	return requireAffected(result, "question", id)
}

// ListResultRanges returns the quiz's ranges by ascending min score.
func (a *QuizDatabaseAdapter) ListResultRanges(ctx context.Context, quizID string) ([]*domain.ResultRange, error) {
	var rows []models.ResultRange
	query := `SELECT ` + resultRangeColumns + ` FROM quiz_result_ranges
	WHERE quiz_id = :1
	ORDER BY min_score, created_at, id`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, quizID); err != nil {
		return nil, fmt.Errorf("failed to list result ranges for quiz %s: %w", quizID, err)
	}
	ranges := make([]*domain.ResultRange, len(rows))
	for i := range rows {
		ranges[i] = toDomainResultRange(&rows[i])
	}
	return ranges, nil
}

// CreateResultRange implements domain.QuizRepository
func (a *QuizDatabaseAdapter) CreateResultRange(ctx context.Context, resultRange *domain.ResultRange) error {
	if resultRange.ID == "" {
		resultRange.ID = util.NewULID()
	}
	resultRange.CreatedAt = time.Now()

	query := `INSERT INTO quiz_result_ranges (` + resultRangeColumns + `) VALUES (:1, :2, :3, :4, :5, :6)`
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		resultRange.ID, resultRange.QuizID, resultRange.MinScore, resultRange.MaxScore,
		resultRange.ResultText, resultRange.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create result range: %w", err)
	}
	return nil
}

// requireAffected turns a zero-row update or delete into a not-found error.
func requireAffected(result sql.Result, entity, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("%s %s not found", entity, id))
	}
	return nil
}
