package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"lets-heal/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var attemptRowColumns = []string{"ID", "CUSTOMER_ID", "QUIZ_ID", "STARTED_AT", "COMPLETED_AT", "TOTAL_SCORE", "RESULT_TEXT", "IS_COMPLETED"}

func TestAttemptConversion(t *testing.T) {
	now := time.Now()
	a := domain.NewAttempt("c1", "quiz1", now)
	a.ID = "att1"

	m := fromDomainAttempt(a)
	assert.False(t, m.CompletedAt.Valid)
	assert.False(t, m.TotalScore.Valid)
	assert.Equal(t, 0, m.IsCompleted)

	a.Complete(3, "Low stress", now)
	m = fromDomainAttempt(a)
	assert.Equal(t, sql.NullInt64{Int64: 3, Valid: true}, m.TotalScore)
	assert.Equal(t, 1, m.IsCompleted)

	back := toDomainAttempt(m)
	assert.True(t, back.IsCompleted)
	assert.Equal(t, 3, *back.TotalScore)
	assert.Equal(t, "Low stress", *back.ResultText)
}

func TestAttemptDatabaseAdapter_GetAttemptForUpdate(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewAttemptDatabaseAdapter(db)

	now := time.Now()
	mock.ExpectQuery(`FROM quiz_attempts WHERE id = :1 FOR UPDATE`).
		WithArgs("att1").
		WillReturnRows(sqlmock.NewRows(attemptRowColumns).
			AddRow("att1", "c1", "quiz1", now, now, 3, "Low stress", 1))

	attempt, err := repo.GetAttemptForUpdate(context.Background(), "att1")
	require.NoError(t, err)
	require.NotNil(t, attempt)
	assert.True(t, attempt.IsCompleted)
	assert.Equal(t, 3, *attempt.TotalScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttemptDatabaseAdapter_GetAttemptByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewAttemptDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM quiz_attempts WHERE id = :1`)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	attempt, err := repo.GetAttemptByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, attempt)
}

func TestAttemptDatabaseAdapter_CreateAttempt(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewAttemptDatabaseAdapter(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO quiz_attempts`)).
		WithArgs(sqlmock.AnyArg(), "c1", "quiz1", sqlmock.AnyArg(), nil, nil, nil, 0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	attempt := domain.NewAttempt("c1", "quiz1", time.Now())
	require.NoError(t, repo.CreateAttempt(context.Background(), attempt))
	assert.NotEmpty(t, attempt.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttemptDatabaseAdapter_UpsertAnswer_UsesMerge(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewAttemptDatabaseAdapter(db)

	answeredAt := time.Now()
	mock.ExpectExec(`MERGE INTO quiz_answers t[\s\S]+WHEN MATCHED THEN[\s\S]+WHEN NOT MATCHED THEN`).
		WithArgs("att1", "q1", "c", answeredAt, "att1", "q1", "c", answeredAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertAnswer(context.Background(), &domain.Answer{
		AttemptID: "att1", QuestionID: "q1", ChosenOption: domain.OptionC, AnsweredAt: answeredAt,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttemptDatabaseAdapter_ListAnswers(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewAttemptDatabaseAdapter(db)

	now := time.Now()
	mock.ExpectQuery(`FROM quiz_answers\s+WHERE attempt_id = :1`).
		WithArgs("att1").
		WillReturnRows(sqlmock.NewRows([]string{"ATTEMPT_ID", "QUESTION_ID", "CHOSEN_OPTION", "ANSWERED_AT"}).
			AddRow("att1", "q1", "b", now))

	answers, err := repo.ListAnswers(context.Background(), "att1")
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, domain.OptionB, answers[0].ChosenOption)
}

func TestAttemptDatabaseAdapter_CompleteAttempt_OnlyInProgress(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewAttemptDatabaseAdapter(db)

	attempt := &domain.Attempt{ID: "att1"}
	attempt.Complete(7, "Moderate", time.Now())

	mock.ExpectExec(`UPDATE quiz_attempts SET[\s\S]+WHERE id = :4 AND is_completed = 0`).
		WithArgs(sqlmock.AnyArg(), 7, "Moderate", "att1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CompleteAttempt(context.Background(), attempt))
	assert.NoError(t, mock.ExpectationsWereMet())
}
