package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid session transition")
	ErrUnknownOption     = errors.New("option is not part of the question")
	ErrEmptyQuiz         = errors.New("quiz has no questions")
)

// SessionState is the presentation state of a quiz session.
type SessionState string

const (
	StateLoading        SessionState = "loading"
	StateInProgress     SessionState = "in_progress"
	StateAnswerRevealed SessionState = "answer_revealed"
	StateFinished       SessionState = "finished"
	StateFailed         SessionState = "failed"
)

// Session walks a user through one QuestionSet.
//
//	Loading --Start--> InProgress --SelectAnswer--> AnswerRevealed --Advance--> InProgress | Finished
//	Loading --Fail--> Failed
//	Finished | Failed --Retry--> Loading
type Session struct {
	ID        uuid.UUID    // changes on every Retry so stale callbacks can be detected
	State     SessionState // current state
	Questions QuestionSet  // questions of the current round
	Index     int          // index of the current question
	Selected  string       // answer chosen for the current question, set in AnswerRevealed
	History   []AnswerRecord
	Err       error     // load failure, set in Failed
	StartedAt time.Time // when the current round was started
}

// NewSession creates a session waiting for its questions.
func NewSession() *Session {
	return &Session{
		ID:    uuid.New(),
		State: StateLoading,
	}
}

// Start hands the loaded questions to the session.
func (s *Session) Start(questions QuestionSet) error {
	if err := s.expect(StateLoading, "start"); err != nil {
		return err
	}
	if len(questions) == 0 {
		return ErrEmptyQuiz
	}

	s.Questions = questions
	s.Index = 0
	s.Selected = ""
	s.History = make([]AnswerRecord, 0, len(questions))
	s.State = StateInProgress
	s.StartedAt = time.Now()
	return nil
}

// Fail records a load failure.
func (s *Session) Fail(err error) error {
	if e := s.expect(StateLoading, "fail"); e != nil {
		return e
	}
	s.Err = err
	s.State = StateFailed
	return nil
}

// Current returns the question being shown.
func (s *Session) Current() (Question, bool) {
	if s.State != StateInProgress && s.State != StateAnswerRevealed {
		return Question{}, false
	}
	return s.Questions[s.Index], true
}

// SelectAnswer reveals the answer for the current question.
func (s *Session) SelectAnswer(option string) (AnswerRecord, error) {
	if err := s.expect(StateInProgress, "select answer"); err != nil {
		return AnswerRecord{}, err
	}

	q := s.Questions[s.Index]
	if !q.HasOption(option) {
		return AnswerRecord{}, fmt.Errorf("%w: %q", ErrUnknownOption, option)
	}

	s.Selected = option
	s.State = StateAnswerRevealed
	return NewAnswerRecord(q, option), nil
}

// Advance records the revealed answer and moves to the next question or finishes.
func (s *Session) Advance() error {
	if err := s.expect(StateAnswerRevealed, "advance"); err != nil {
		return err
	}

	s.History = append(s.History, NewAnswerRecord(s.Questions[s.Index], s.Selected))
	s.Selected = ""

	if s.Index < len(s.Questions)-1 {
		s.Index++
		s.State = StateInProgress
		return nil
	}

	s.State = StateFinished
	return nil
}

// Retry resets the session so a fresh quiz can be loaded.
func (s *Session) Retry() error {
	if s.State != StateFinished && s.State != StateFailed {
		return fmt.Errorf("%w: retry from %s", ErrInvalidTransition, s.State)
	}

	s.ID = uuid.New()
	s.State = StateLoading
	s.Questions = nil
	s.Index = 0
	s.Selected = ""
	s.History = nil
	s.Err = nil
	return nil
}

// Summary returns the score of a finished session.
func (s *Session) Summary() (Summary, error) {
	if err := s.expect(StateFinished, "summary"); err != nil {
		return Summary{}, err
	}
	return NewSummary(s.History), nil
}

func (s *Session) expect(state SessionState, op string) error {
	if s.State != state {
		return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, op, s.State)
	}
	return nil
}
