package domain

import (
	"context"
	"sort"
	"strings"
	"time"
)

// NoResultText is stored when no result range contains the total score.
const NoResultText = "No result available."

// Option is one of the four answer choices of a question.
type Option string

const (
	OptionA Option = "a"
	OptionB Option = "b"
	OptionC Option = "c"
	OptionD Option = "d"
)

// Options lists the valid choices in presentation order.
var Options = [4]Option{OptionA, OptionB, OptionC, OptionD}

// ParseOption accepts a choice case-insensitively.
func ParseOption(s string) (Option, bool) {
	switch o := Option(strings.ToLower(strings.TrimSpace(s))); o {
	case OptionA, OptionB, OptionC, OptionD:
		return o, true
	default:
		return "", false
	}
}

func (o Option) index() int {
	switch o {
	case OptionA:
		return 0
	case OptionB:
		return 1
	case OptionC:
		return 2
	case OptionD:
		return 3
	default:
		return -1
	}
}

// Quiz is a self-assessment questionnaire.
type Quiz struct {
	ID           string
	Title        string
	Description  string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Questions    []*Question
	ResultRanges []*ResultRange
}

// Question is a single multiple-choice item. Order defines the presentation
// sequence and is not required to be unique.
type Question struct {
	ID        string
	QuizID    string
	Order     int
	Text      string
	Options   [4]string
	Scores    [4]int
	Required  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScoreFor returns the score of option o, 0 for an unknown option.
func (q *Question) ScoreFor(o Option) int {
	i := o.index()
	if i < 0 {
		return 0
	}
	return q.Scores[i]
}

// Validate validates the question
func (q *Question) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(q.Text) == "" {
		errs = append(errs, NewMissingFieldError("text"))
	}
	errs.checkLength("text", q.Text, MaxQuestionTextLength)
	for i, opt := range q.Options {
		field := "option_" + string(Options[i])
		if strings.TrimSpace(opt) == "" {
			errs = append(errs, NewMissingFieldError(field))
		}
		errs.checkLength(field, opt, MaxOptionLength)
	}
	if q.Order < 0 {
		errs = append(errs, NewInvalidFormatError("order", q.Order))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// QuestionPatch carries a partial question update; nil fields are left as is.
type QuestionPatch struct {
	Order    *int
	Text     *string
	Options  map[Option]string
	Scores   map[Option]int
	Required *bool
}

// Apply writes the set fields of p onto q.
func (p QuestionPatch) Apply(q *Question) {
	if p.Order != nil {
		q.Order = *p.Order
	}
	if p.Text != nil {
		q.Text = *p.Text
	}
	for o, text := range p.Options {
		if i := o.index(); i >= 0 {
			q.Options[i] = text
		}
	}
	for o, score := range p.Scores {
		if i := o.index(); i >= 0 {
			q.Scores[i] = score
		}
	}
	if p.Required != nil {
		q.Required = *p.Required
	}
}

// ResultRange maps an inclusive score interval to an outcome text.
type ResultRange struct {
	ID         string
	QuizID     string
	MinScore   int
	MaxScore   int
	ResultText string
	CreatedAt  time.Time
}

// Contains reports whether score lies in [MinScore, MaxScore].
func (r *ResultRange) Contains(score int) bool {
	return r.MinScore <= score && score <= r.MaxScore
}

// Validate validates the result range
func (r *ResultRange) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(r.ResultText) == "" {
		errs = append(errs, NewMissingFieldError("result_text"))
	}
	errs.checkLength("result_text", r.ResultText, MaxResultTextLength)
	if r.MinScore > r.MaxScore {
		errs = append(errs, ValidationError{
			Field:   "max_score",
			Code:    CodeOutOfRange,
			Message: "max_score must not be lower than min_score",
			Value:   r.MaxScore,
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Attempt is one customer's run through a quiz.
type Attempt struct {
	ID          string
	CustomerID  string
	QuizID      string
	StartedAt   time.Time
	CompletedAt *time.Time
	TotalScore  *int
	ResultText  *string
	IsCompleted bool
	Answers     []*Answer
}

// NewAttempt creates an in-progress attempt.
func NewAttempt(customerID, quizID string, now time.Time) *Attempt {
	return &Attempt{
		CustomerID: customerID,
		QuizID:     quizID,
		StartedAt:  now,
	}
}

// Complete moves the attempt to its terminal state. It is a no-op on an
// already completed attempt.
func (a *Attempt) Complete(total int, resultText string, now time.Time) {
	if a.IsCompleted {
		return
	}
	completedAt := now
	a.TotalScore = &total
	a.ResultText = &resultText
	a.CompletedAt = &completedAt
	a.IsCompleted = true
}

// OwnedBy reports whether p may act on the attempt.
func (a *Attempt) OwnedBy(p Principal) bool {
	if p.Role == RoleAdmin {
		return true
	}
	return p.Role == RoleCustomer && p.ID == a.CustomerID
}

// Answer is the chosen option for one question of an attempt.
type Answer struct {
	AttemptID    string
	QuestionID   string
	ChosenOption Option
	AnsweredAt   time.Time
}

// SortQuestions orders questions by Order, then ID for equal orders.
func SortQuestions(questions []*Question) {
	sort.SliceStable(questions, func(i, j int) bool {
		if questions[i].Order != questions[j].Order {
			return questions[i].Order < questions[j].Order
		}
		return questions[i].ID < questions[j].ID
	})
}

// NextUnanswered returns the first question in presentation order that has
// no answer, or nil when every question is answered.
func NextUnanswered(questions []*Question, answers []*Answer) *Question {
	answered := make(map[string]struct{}, len(answers))
	for _, a := range answers {
		answered[a.QuestionID] = struct{}{}
	}
	ordered := make([]*Question, len(questions))
	copy(ordered, questions)
	SortQuestions(ordered)
	for _, q := range ordered {
		if _, ok := answered[q.ID]; !ok {
			return q
		}
	}
	return nil
}

// TotalScore sums the score of each answer's chosen option. Answers whose
// question is unknown contribute 0.
func TotalScore(questions []*Question, answers []*Answer) int {
	byID := make(map[string]*Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	total := 0
	for _, a := range answers {
		if q, ok := byID[a.QuestionID]; ok {
			total += q.ScoreFor(a.ChosenOption)
		}
	}
	return total
}

// MatchResultRange returns the first range, by ascending MinScore, that
// contains score. Ranges with equal MinScore keep their given order.
func MatchResultRange(ranges []*ResultRange, score int) *ResultRange {
	ordered := make([]*ResultRange, len(ranges))
	copy(ordered, ranges)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].MinScore < ordered[j].MinScore
	})
	for _, r := range ordered {
		if r.Contains(score) {
			return r
		}
	}
	return nil
}

// ResultTextFor returns the outcome text for score, or NoResultText.
func ResultTextFor(ranges []*ResultRange, score int) string {
	if r := MatchResultRange(ranges, score); r != nil {
		return r.ResultText
	}
	return NoResultText
}

// QuizRepository defines the interface for quiz definition persistence.
// Lookups return (nil, nil) when the row does not exist.
type QuizRepository interface {
	CreateQuiz(ctx context.Context, quiz *Quiz) error
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)
	GetFirstActiveQuiz(ctx context.Context) (*Quiz, error)

	ListQuestions(ctx context.Context, quizID string) ([]*Question, error)
	GetQuestionByID(ctx context.Context, id string) (*Question, error)
	CreateQuestion(ctx context.Context, question *Question) error
	UpdateQuestion(ctx context.Context, question *Question) error
	DeleteQuestion(ctx context.Context, id string) error

	ListResultRanges(ctx context.Context, quizID string) ([]*ResultRange, error)
	CreateResultRange(ctx context.Context, resultRange *ResultRange) error
}

// AttemptRepository defines the interface for attempt persistence.
type AttemptRepository interface {
	CreateAttempt(ctx context.Context, attempt *Attempt) error
	GetAttemptByID(ctx context.Context, id string) (*Attempt, error)
	// GetAttemptForUpdate reads the attempt and locks its row for the
	// current transaction.
	GetAttemptForUpdate(ctx context.Context, id string) (*Attempt, error)
	ListAnswers(ctx context.Context, attemptID string) ([]*Answer, error)
	// UpsertAnswer inserts or replaces the answer for (attempt, question).
	UpsertAnswer(ctx context.Context, answer *Answer) error
	CompleteAttempt(ctx context.Context, attempt *Attempt) error
}

// TransactionManager runs fn inside a store transaction carried by ctx.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
