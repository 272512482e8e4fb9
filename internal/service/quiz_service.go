package service

import (
	"context"
	"time"

	"lets-heal/internal/domain"
	"lets-heal/internal/logger"
	"lets-heal/internal/metrics"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	GetActiveQuiz(ctx context.Context) (*domain.Quiz, error)
	GetQuizDefinition(ctx context.Context) (*domain.Quiz, error)
	AddQuestion(ctx context.Context, question *domain.Question) (*domain.Question, error)
	UpdateQuestion(ctx context.Context, questionID string, patch domain.QuestionPatch) (*domain.Question, error)
	DeleteQuestion(ctx context.Context, questionID string) error
	AddResultRange(ctx context.Context, resultRange *domain.ResultRange) (*domain.ResultRange, error)

	StartAttempt(ctx context.Context, actor domain.Principal) (*domain.Attempt, error)
	// GetNextQuestion returns the next unanswered question, or nil once the
	// attempt is done.
	GetNextQuestion(ctx context.Context, actor domain.Principal, attemptID string) (*domain.Question, error)
	SubmitAnswer(ctx context.Context, actor domain.Principal, attemptID, questionID, chosenOption string) (*domain.Answer, error)
	FinishAttempt(ctx context.Context, actor domain.Principal, attemptID string) (*domain.Attempt, error)
	GetAttemptResult(ctx context.Context, actor domain.Principal, attemptID string) (*domain.Attempt, error)
}

// quizService implements QuizService
type quizService struct {
	quizzes      domain.QuizRepository
	attempts     domain.AttemptRepository
	tx           domain.TransactionManager
	activeQuizID string
	now          func() time.Time
}

// NewQuizService creates a new instance of quizService. activeQuizID pins the
// quiz attempts run against; empty selects the earliest active quiz.
func NewQuizService(
	quizzes domain.QuizRepository,
	attempts domain.AttemptRepository,
	tx domain.TransactionManager,
	activeQuizID string,
) QuizService {
	return &quizService{
		quizzes:      quizzes,
		attempts:     attempts,
		tx:           tx,
		activeQuizID: activeQuizID,
		now:          time.Now,
	}
}

// GetActiveQuiz implements QuizService
func (s *quizService) GetActiveQuiz(ctx context.Context) (*domain.Quiz, error) {
	var (
		quiz *domain.Quiz
		err  error
	)
	if s.activeQuizID != "" {
		quiz, err = s.quizzes.GetQuizByID(ctx, s.activeQuizID)
	} else {
		quiz, err = s.quizzes.GetFirstActiveQuiz(ctx)
	}
	if err != nil {
		return nil, domain.NewInternalError("Failed to load active quiz", err)
	}
	if quiz == nil || !quiz.IsActive {
		return nil, domain.NewNoActiveQuizError()
	}
	return quiz, nil
}

// GetQuizDefinition returns the active quiz with ordered questions and its
// result ranges.
func (s *quizService) GetQuizDefinition(ctx context.Context) (*domain.Quiz, error) {
	quiz, err := s.GetActiveQuiz(ctx)
	if err != nil {
		return nil, err
	}
	questions, err := s.quizzes.ListQuestions(ctx, quiz.ID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load questions", err)
	}
	ranges, err := s.quizzes.ListResultRanges(ctx, quiz.ID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load result ranges", err)
	}
	domain.SortQuestions(questions)
	quiz.Questions = questions
	quiz.ResultRanges = ranges
	return quiz, nil
}

func (s *quizService) AddQuestion(ctx context.Context, question *domain.Question) (*domain.Question, error) {
	if err := question.Validate(); err != nil {
		return nil, err
	}
	quiz, err := s.GetActiveQuiz(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	question.QuizID = quiz.ID
	question.CreatedAt = now
	question.UpdatedAt = now
	if err := s.quizzes.CreateQuestion(ctx, question); err != nil {
		return nil, domain.NewInternalError("Failed to add question", err)
	}
	logger.Get().Info("Question added",
		zap.String("quizID", quiz.ID),
		zap.String("questionID", question.ID),
		zap.Int("order", question.Order))
	return question, nil
}

func (s *quizService) UpdateQuestion(ctx context.Context, questionID string, patch domain.QuestionPatch) (*domain.Question, error) {
	question, err := s.getQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	patch.Apply(question)
	if err := question.Validate(); err != nil {
		return nil, err
	}
	question.UpdatedAt = s.now()
	if err := s.quizzes.UpdateQuestion(ctx, question); err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return nil, err
		}
		return nil, domain.NewInternalError("Failed to update question", err)
	}
	return question, nil
}

func (s *quizService) DeleteQuestion(ctx context.Context, questionID string) error {
	if _, err := s.getQuestion(ctx, questionID); err != nil {
		return err
	}
	if err := s.quizzes.DeleteQuestion(ctx, questionID); err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return err
		}
		return domain.NewInternalError("Failed to delete question", err)
	}
	logger.Get().Info("Question deleted", zap.String("questionID", questionID))
	return nil
}

func (s *quizService) AddResultRange(ctx context.Context, resultRange *domain.ResultRange) (*domain.ResultRange, error) {
	if err := resultRange.Validate(); err != nil {
		return nil, err
	}
	quiz, err := s.GetActiveQuiz(ctx)
	if err != nil {
		return nil, err
	}
	resultRange.QuizID = quiz.ID
	resultRange.CreatedAt = s.now()
	if err := s.quizzes.CreateResultRange(ctx, resultRange); err != nil {
		return nil, domain.NewInternalError("Failed to add result range", err)
	}
	return resultRange, nil
}

// StartAttempt opens a new attempt on the active quiz. A customer may hold
// any number of attempts at once.
func (s *quizService) StartAttempt(ctx context.Context, actor domain.Principal) (*domain.Attempt, error) {
	if !actor.Is(domain.RoleCustomer) {
		return nil, domain.NewForbiddenError("Only customers can take the quiz")
	}
	quiz, err := s.GetActiveQuiz(ctx)
	if err != nil {
		return nil, err
	}
	attempt := domain.NewAttempt(actor.ID, quiz.ID, s.now())
	if err := s.attempts.CreateAttempt(ctx, attempt); err != nil {
		return nil, domain.NewInternalError("Failed to start attempt", err)
	}
	metrics.QuizAttempts.WithLabelValues(metrics.EventStarted).Inc()
	logger.Get().Info("Quiz attempt started",
		zap.String("attemptID", attempt.ID),
		zap.String("customerID", actor.ID),
		zap.String("quizID", quiz.ID))
	return attempt, nil
}

func (s *quizService) GetNextQuestion(ctx context.Context, actor domain.Principal, attemptID string) (*domain.Question, error) {
	attempt, err := s.getAttempt(ctx, actor, attemptID, s.attempts.GetAttemptByID)
	if err != nil {
		return nil, err
	}
	if attempt.IsCompleted {
		return nil, nil
	}
	questions, err := s.quizzes.ListQuestions(ctx, attempt.QuizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load questions", err)
	}
	answers, err := s.attempts.ListAnswers(ctx, attempt.ID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load answers", err)
	}
	return domain.NextUnanswered(questions, answers), nil
}

// SubmitAnswer records or replaces the answer to one question. The attempt
// row is locked so an answer cannot land after a concurrent finish.
func (s *quizService) SubmitAnswer(ctx context.Context, actor domain.Principal, attemptID, questionID, chosenOption string) (*domain.Answer, error) {
	option, ok := domain.ParseOption(chosenOption)
	if !ok {
		return nil, domain.NewInvalidChoiceError(chosenOption)
	}

	var answer *domain.Answer
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		attempt, err := s.getAttempt(ctx, actor, attemptID, s.attempts.GetAttemptForUpdate)
		if err != nil {
			return err
		}
		if attempt.IsCompleted {
			return domain.NewAttemptAlreadyCompletedError(attempt.ID)
		}

		question, err := s.getQuestion(ctx, questionID)
		if err != nil {
			return err
		}
		if question.QuizID != attempt.QuizID {
			return domain.NewNotFoundError("Question does not belong to this quiz").
				WithContext("question_id", questionID)
		}

		answer = &domain.Answer{
			AttemptID:    attempt.ID,
			QuestionID:   question.ID,
			ChosenOption: option,
			AnsweredAt:   s.now(),
		}
		if err := s.attempts.UpsertAnswer(ctx, answer); err != nil {
			return domain.NewInternalError("Failed to save answer", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.QuizAnswers.Inc()
	return answer, nil
}

// FinishAttempt scores the attempt and completes it. Finishing a completed
// attempt returns the stored result unchanged.
func (s *quizService) FinishAttempt(ctx context.Context, actor domain.Principal, attemptID string) (*domain.Attempt, error) {
	var (
		attempt  *domain.Attempt
		finished bool
	)
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		attempt, err = s.getAttempt(ctx, actor, attemptID, s.attempts.GetAttemptForUpdate)
		if err != nil {
			return err
		}
		if attempt.IsCompleted {
			return nil
		}

		questions, err := s.quizzes.ListQuestions(ctx, attempt.QuizID)
		if err != nil {
			return domain.NewInternalError("Failed to load questions", err)
		}
		answers, err := s.attempts.ListAnswers(ctx, attempt.ID)
		if err != nil {
			return domain.NewInternalError("Failed to load answers", err)
		}
		ranges, err := s.quizzes.ListResultRanges(ctx, attempt.QuizID)
		if err != nil {
			return domain.NewInternalError("Failed to load result ranges", err)
		}

		total := domain.TotalScore(questions, answers)
		attempt.Complete(total, domain.ResultTextFor(ranges, total), s.now())
		attempt.Answers = answers
		if err := s.attempts.CompleteAttempt(ctx, attempt); err != nil {
			return domain.NewInternalError("Failed to complete attempt", err)
		}
		finished = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if finished {
		metrics.QuizAttempts.WithLabelValues(metrics.EventCompleted).Inc()
		logger.Get().Info("Quiz attempt completed",
			zap.String("attemptID", attempt.ID),
			zap.Int("totalScore", *attempt.TotalScore),
			zap.String("resultText", *attempt.ResultText))
	}
	return attempt, nil
}

func (s *quizService) GetAttemptResult(ctx context.Context, actor domain.Principal, attemptID string) (*domain.Attempt, error) {
	attempt, err := s.getAttempt(ctx, actor, attemptID, s.attempts.GetAttemptByID)
	if err != nil {
		return nil, err
	}
	if !attempt.IsCompleted {
		return nil, domain.NewAttemptNotCompletedError(attempt.ID)
	}
	answers, err := s.attempts.ListAnswers(ctx, attempt.ID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load answers", err)
	}
	attempt.Answers = answers
	return attempt, nil
}

type attemptLoader func(ctx context.Context, id string) (*domain.Attempt, error)

// getAttempt loads an attempt with load and checks that actor may use it.
func (s *quizService) getAttempt(ctx context.Context, actor domain.Principal, attemptID string, load attemptLoader) (*domain.Attempt, error) {
	attempt, err := load(ctx, attemptID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load attempt", err)
	}
	if attempt == nil {
		return nil, domain.NewNotFoundError("Attempt not found").WithContext("attempt_id", attemptID)
	}
	if !attempt.OwnedBy(actor) {
		return nil, domain.NewForbiddenError("Attempt belongs to another customer")
	}
	return attempt, nil
}

func (s *quizService) getQuestion(ctx context.Context, questionID string) (*domain.Question, error) {
	question, err := s.quizzes.GetQuestionByID(ctx, questionID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load question", err)
	}
	if question == nil {
		return nil, domain.NewNotFoundError("Question not found").WithContext("question_id", questionID)
	}
	return question, nil
}
