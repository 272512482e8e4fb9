package dto

import "time"

// OptionResponse is one answer choice of a question.
type OptionResponse struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// QuestionResponse is a question as shown to a customer taking the quiz.
// @Description Quiz question without scores
type QuestionResponse struct {
	ID       string           `json:"id"`
	Order    int              `json:"order"`
	Text     string           `json:"text"`
	Options  []OptionResponse `json:"options"`
	Required bool             `json:"required"`
}

// StartAttemptResponse is returned after a customer starts a quiz.
type StartAttemptResponse struct {
	AttemptID string    `json:"attempt_id"`
	QuizID    string    `json:"quiz_id"`
	StartedAt time.Time `json:"started_at"`
}

// NextQuestionResponse is either the next question or done=true.
type NextQuestionResponse struct {
	Done     bool              `json:"done"`
	Question *QuestionResponse `json:"question,omitempty"`
}

// SubmitAnswerRequest is the body of POST /api/quiz-attempts/{id}/answers.
type SubmitAnswerRequest struct {
	QuestionID   string `json:"question_id"`
	ChosenOption string `json:"chosen_option"`
}

// AnswerResponse echoes the stored answer.
type AnswerResponse struct {
	AttemptID    string    `json:"attempt_id"`
	QuestionID   string    `json:"question_id"`
	ChosenOption string    `json:"chosen_option"`
	AnsweredAt   time.Time `json:"answered_at"`
}

// AttemptResultResponse is a completed attempt.
// @Description Scored quiz attempt
type AttemptResultResponse struct {
	AttemptID   string           `json:"attempt_id"`
	QuizID      string           `json:"quiz_id"`
	CustomerID  string           `json:"customer_id"`
	StartedAt   time.Time        `json:"started_at"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
	IsCompleted bool             `json:"is_completed"`
	TotalScore  *int             `json:"total_score,omitempty"`
	ResultText  *string          `json:"result_text,omitempty"`
	Answers     []AnswerResponse `json:"answers"`
}

// QuestionRequest is the body for adding a question. Scores default to 0.
type QuestionRequest struct {
	Order    int    `json:"order"`
	Text     string `json:"text"`
	OptionA  string `json:"option_a"`
	OptionB  string `json:"option_b"`
	OptionC  string `json:"option_c"`
	OptionD  string `json:"option_d"`
	ScoreA   int    `json:"score_a"`
	ScoreB   int    `json:"score_b"`
	ScoreC   int    `json:"score_c"`
	ScoreD   int    `json:"score_d"`
	Required *bool  `json:"required,omitempty"`
}

// IsRequired reports the required flag, true when omitted.
func (r QuestionRequest) IsRequired() bool {
	return r.Required == nil || *r.Required
}

// QuestionPatchRequest is the body for a partial question update.
type QuestionPatchRequest struct {
	Order    *int    `json:"order,omitempty"`
	Text     *string `json:"text,omitempty"`
	OptionA  *string `json:"option_a,omitempty"`
	OptionB  *string `json:"option_b,omitempty"`
	OptionC  *string `json:"option_c,omitempty"`
	OptionD  *string `json:"option_d,omitempty"`
	ScoreA   *int    `json:"score_a,omitempty"`
	ScoreB   *int    `json:"score_b,omitempty"`
	ScoreC   *int    `json:"score_c,omitempty"`
	ScoreD   *int    `json:"score_d,omitempty"`
	Required *bool   `json:"required,omitempty"`
}

// AdminQuestionResponse is a question including its option scores.
type AdminQuestionResponse struct {
	ID       string `json:"id"`
	Order    int    `json:"order"`
	Text     string `json:"text"`
	OptionA  string `json:"option_a"`
	OptionB  string `json:"option_b"`
	OptionC  string `json:"option_c"`
	OptionD  string `json:"option_d"`
	ScoreA   int    `json:"score_a"`
	ScoreB   int    `json:"score_b"`
	ScoreC   int    `json:"score_c"`
	ScoreD   int    `json:"score_d"`
	Required bool   `json:"required"`
}

// ResultRangeRequest is the body for adding a result range.
type ResultRangeRequest struct {
	MinScore   int    `json:"min_score"`
	MaxScore   int    `json:"max_score"`
	ResultText string `json:"result_text"`
}

type ResultRangeResponse struct {
	ID         string `json:"id"`
	MinScore   int    `json:"min_score"`
	MaxScore   int    `json:"max_score"`
	ResultText string `json:"result_text"`
}

// QuizDefinitionResponse is the admin view of the active quiz.
type QuizDefinitionResponse struct {
	ID           string                  `json:"id"`
	Title        string                  `json:"title"`
	Description  string                  `json:"description,omitempty"`
	IsActive     bool                    `json:"is_active"`
	Questions    []AdminQuestionResponse `json:"questions"`
	ResultRanges []ResultRangeResponse   `json:"result_ranges"`
}
