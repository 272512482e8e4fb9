package models

import (
	"database/sql"
	"time"
)

// Quiz represents a row of the quizzes table.
type Quiz struct {
	ID          string         `db:"ID"`
	Title       string         `db:"TITLE"`
	Description sql.NullString `db:"DESCRIPTION"`
	IsActive    int            `db:"IS_ACTIVE"` // NUMBER(1)
	CreatedAt   time.Time      `db:"CREATED_AT"`
	UpdatedAt   time.Time      `db:"UPDATED_AT"`
}

// Question represents a row of the quiz_questions table. Options and scores
// are stored as one column per choice.
type Question struct {
	ID         string    `db:"ID"`
	QuizID     string    `db:"QUIZ_ID"`
	Order      int       `db:"QUESTION_ORDER"`
	Text       string    `db:"TEXT"`
	OptionA    string    `db:"OPTION_A"`
	OptionB    string    `db:"OPTION_B"`
	OptionC    string    `db:"OPTION_C"`
	OptionD    string    `db:"OPTION_D"`
	ScoreA     int       `db:"SCORE_A"`
	ScoreB     int       `db:"SCORE_B"`
	ScoreC     int       `db:"SCORE_C"`
	ScoreD     int       `db:"SCORE_D"`
	IsRequired int       `db:"IS_REQUIRED"`
	CreatedAt  time.Time `db:"CREATED_AT"`
	UpdatedAt  time.Time `db:"UPDATED_AT"`
}

// ResultRange represents a row of the quiz_result_ranges table.
type ResultRange struct {
	ID         string    `db:"ID"`
	QuizID     string    `db:"QUIZ_ID"`
	MinScore   int       `db:"MIN_SCORE"`
	MaxScore   int       `db:"MAX_SCORE"`
	ResultText string    `db:"RESULT_TEXT"`
	CreatedAt  time.Time `db:"CREATED_AT"`
}

// QuizAttempt represents a row of the quiz_attempts table.
type QuizAttempt struct {
	ID          string         `db:"ID"`
	CustomerID  string         `db:"CUSTOMER_ID"`
	QuizID      string         `db:"QUIZ_ID"`
	StartedAt   time.Time      `db:"STARTED_AT"`
	CompletedAt sql.NullTime   `db:"COMPLETED_AT"`
	TotalScore  sql.NullInt64  `db:"TOTAL_SCORE"`
	ResultText  sql.NullString `db:"RESULT_TEXT"`
	IsCompleted int            `db:"IS_COMPLETED"`
}

// QuizAnswer represents a row of the quiz_answers table.
type QuizAnswer struct {
	AttemptID    string    `db:"ATTEMPT_ID"`
	QuestionID   string    `db:"QUESTION_ID"`
	ChosenOption string    `db:"CHOSEN_OPTION"`
	AnsweredAt   time.Time `db:"ANSWERED_AT"`
}
