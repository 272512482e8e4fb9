package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"lets-heal/internal/domain"
	"lets-heal/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	quizRowColumns     = []string{"ID", "TITLE", "DESCRIPTION", "IS_ACTIVE", "CREATED_AT", "UPDATED_AT"}
	questionRowColumns = []string{"ID", "QUIZ_ID", "QUESTION_ORDER", "TEXT", "OPTION_A", "OPTION_B", "OPTION_C", "OPTION_D",
		"SCORE_A", "SCORE_B", "SCORE_C", "SCORE_D", "IS_REQUIRED", "CREATED_AT", "UPDATED_AT"}
)

func TestQuestionConversionRoundTrip(t *testing.T) {
	now := time.Now()
	d := &domain.Question{
		ID:        "q1",
		QuizID:    "quiz1",
		Order:     2,
		Text:      "How often do you feel stressed?",
		Options:   [4]string{"Never", "Sometimes", "Often", "Always"},
		Scores:    [4]int{0, 1, 2, 3},
		Required:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m := fromDomainQuestion(d)
	assert.Equal(t, &models.Question{
		ID: "q1", QuizID: "quiz1", Order: 2, Text: d.Text,
		OptionA: "Never", OptionB: "Sometimes", OptionC: "Often", OptionD: "Always",
		ScoreA: 0, ScoreB: 1, ScoreC: 2, ScoreD: 3,
		IsRequired: 1, CreatedAt: now, UpdatedAt: now,
	}, m)
	assert.Equal(t, d, toDomainQuestion(m))
}

func TestQuizDatabaseAdapter_GetFirstActiveQuiz(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewQuizDatabaseAdapter(db)

	now := time.Now()
	mock.ExpectQuery(`WHERE is_active = 1\s+ORDER BY created_at, id\s+FETCH FIRST 1 ROWS ONLY`).
		WillReturnRows(sqlmock.NewRows(quizRowColumns).AddRow("quiz1", "Stress check", nil, 1, now, now))

	quiz, err := repo.GetFirstActiveQuiz(context.Background())
	require.NoError(t, err)
	require.NotNil(t, quiz)
	assert.True(t, quiz.IsActive)
	assert.Equal(t, "", quiz.Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_GetFirstActiveQuiz_None(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewQuizDatabaseAdapter(db)

	mock.ExpectQuery(`WHERE is_active = 1`).WillReturnError(sql.ErrNoRows)

	quiz, err := repo.GetFirstActiveQuiz(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, quiz)
}

func TestQuizDatabaseAdapter_ListQuestions(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewQuizDatabaseAdapter(db)

	now := time.Now()
	mock.ExpectQuery(`FROM quiz_questions\s+WHERE quiz_id = :1\s+ORDER BY question_order, id`).
		WithArgs("quiz1").
		WillReturnRows(sqlmock.NewRows(questionRowColumns).
			AddRow("q1", "quiz1", 1, "First", "a", "b", "c", "d", 0, 1, 2, 3, 1, now, now).
			AddRow("q2", "quiz1", 1, "Second", "a", "b", "c", "d", 3, 2, 1, 0, 0, now, now))

	questions, err := repo.ListQuestions(context.Background(), "quiz1")
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, 2, questions[0].ScoreFor(domain.OptionC))
	assert.False(t, questions[1].Required)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_CreateQuestion(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewQuizDatabaseAdapter(db)

	q := &domain.Question{
		QuizID:  "quiz1",
		Order:   3,
		Text:    "Sleep quality?",
		Options: [4]string{"Great", "Good", "Poor", "Terrible"},
		Scores:  [4]int{0, 1, 2, 3},
	}
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO quiz_questions`)).
		WithArgs(sqlmock.AnyArg(), "quiz1", 3, "Sleep quality?", "Great", "Good", "Poor", "Terrible",
			0, 1, 2, 3, 0, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateQuestion(context.Background(), q))
	assert.NotEmpty(t, q.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_UpdateQuestion_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewQuizDatabaseAdapter(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE quiz_questions SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateQuestion(context.Background(), &domain.Question{ID: "gone"})
	assert.True(t, domain.IsCode(err, domain.CodeNotFound))
}

func TestQuizDatabaseAdapter_DeleteQuestion(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewQuizDatabaseAdapter(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM quiz_questions WHERE id = :1`)).
		WithArgs("q1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteQuestion(context.Background(), "q1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_ResultRanges(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewQuizDatabaseAdapter(db)

	now := time.Now()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO quiz_result_ranges`)).
		WithArgs(sqlmock.AnyArg(), "quiz1", 0, 5, "Low stress", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`FROM quiz_result_ranges\s+WHERE quiz_id = :1\s+ORDER BY min_score`).
		WithArgs("quiz1").
		WillReturnRows(sqlmock.NewRows([]string{"ID", "QUIZ_ID", "MIN_SCORE", "MAX_SCORE", "RESULT_TEXT", "CREATED_AT"}).
			AddRow("r1", "quiz1", 0, 5, "Low stress", now))

	require.NoError(t, repo.CreateResultRange(context.Background(),
		&domain.ResultRange{QuizID: "quiz1", MinScore: 0, MaxScore: 5, ResultText: "Low stress"}))

	ranges, err := repo.ListResultRanges(context.Background(), "quiz1")
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, "Low stress", domain.ResultTextFor(ranges, 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}
