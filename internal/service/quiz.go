package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/aliskhannn/mapping-glossary-quiz/internal/domain/entities"
)

const (
	DefaultQuestionCount = 10
	DefaultOptionCount   = 4
)

var (
	ErrInsufficientTerms = errors.New("not enough terms")
	ErrInvalidQuizParams = errors.New("invalid quiz parameters")
)

type TermRepository interface {
	GetAll(ctx context.Context) ([]entities.Term, error)
}

// QuizService assembles quizzes from glossary terms.
type QuizService struct {
	termRepo      TermRepository
	selector      *QuestionSelector
	options       *OptionGenerator
	questionCount int
	optionCount   int
	logger        *zap.Logger
}

func NewQuizService(
	termRepo TermRepository,
	questionCount int,
	optionCount int,
	logger *zap.Logger,
) *QuizService {
	if questionCount <= 0 {
		questionCount = DefaultQuestionCount
	}
	if optionCount <= 0 {
		optionCount = DefaultOptionCount
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &QuizService{
		termRepo:      termRepo,
		selector:      NewQuestionSelector(),
		options:       NewOptionGenerator(),
		questionCount: questionCount,
		optionCount:   optionCount,
		logger:        logger,
	}
}

// Terms returns all terms currently on the glossary page.
func (s *QuizService) Terms(ctx context.Context) ([]entities.Term, error) {
	terms, err := s.termRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get terms: %w", err)
	}
	return terms, nil
}

// GenerateQuiz fetches the glossary and assembles one quiz from it.
func (s *QuizService) GenerateQuiz(ctx context.Context, rng *rand.Rand) (entities.QuestionSet, error) {
	terms, err := s.Terms(ctx)
	if err != nil {
		return nil, err
	}

	return s.Assemble(rng, terms)
}

// Assemble builds a quiz with the service's configured sizes.
func (s *QuizService) Assemble(rng *rand.Rand, terms []entities.Term) (entities.QuestionSet, error) {
	questions, err := s.AssembleN(rng, terms, s.questionCount, s.optionCount)
	if err != nil {
		s.logger.Warn("quiz assembly failed",
			zap.Int("terms", len(terms)),
			zap.Int("question_count", s.questionCount),
			zap.Error(err),
		)
		return nil, err
	}

	return questions, nil
}

// AssembleN picks questionCount distinct terms at random and gives each one
// optionCount shuffled options. It never returns a short set: with fewer than
// questionCount terms it fails with ErrInsufficientTerms, and when any picked
// term lacks enough distinct peers the whole quiz fails with
// ErrNotEnoughDistractors.
func (s *QuizService) AssembleN(
	rng *rand.Rand,
	terms []entities.Term,
	questionCount int,
	optionCount int,
) (entities.QuestionSet, error) {
	if questionCount < 1 || optionCount < 2 {
		return nil, fmt.Errorf("%w: question count %d, option count %d",
			ErrInvalidQuizParams, questionCount, optionCount)
	}
	if len(terms) < questionCount {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientTerms, len(terms), questionCount)
	}

	picks := s.selector.Select(rng, len(terms), questionCount)

	questions := make(entities.QuestionSet, 0, len(picks))
	for _, idx := range picks {
		target := terms[idx]

		options, err := s.options.GenerateOptions(rng, target, terms, optionCount)
		if err != nil {
			return nil, err
		}

		questions = append(questions, entities.NewQuestion(target, options))
	}

	return questions, nil
}
