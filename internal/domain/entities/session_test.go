package entities

import (
	"errors"
	"testing"
)

func sampleQuestions() QuestionSet {
	return QuestionSet{
		NewQuestion(Term{Name: "Jump", Definition: "A gap in notes."}, []string{"Jump", "Bomb", "Wall", "Arc"}),
		NewQuestion(Term{Name: "Bomb", Definition: "Do not hit it."}, []string{"Arc", "Bomb", "Jump", "Wall"}),
	}
}

func TestSessionHappyPath(t *testing.T) {
	s := NewSession()
	if s.State != StateLoading {
		t.Fatalf("expected loading, got %s", s.State)
	}

	if err := s.Start(sampleQuestions()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	rec, err := s.SelectAnswer("Jump")
	if err != nil {
		t.Fatalf("SelectAnswer() error = %v", err)
	}
	if !rec.IsCorrect {
		t.Fatalf("expected correct answer")
	}
	if s.State != StateAnswerRevealed {
		t.Fatalf("expected answer revealed, got %s", s.State)
	}

	if err := s.Advance(); err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	if s.State != StateInProgress || s.Index != 1 {
		t.Fatalf("expected second question in progress, got %s index=%d", s.State, s.Index)
	}

	if _, err := s.SelectAnswer("Wall"); err != nil {
		t.Fatalf("SelectAnswer() error = %v", err)
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	if s.State != StateFinished {
		t.Fatalf("expected finished, got %s", s.State)
	}

	sum, err := s.Summary()
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if sum.Score != 1 || sum.Total != 2 {
		t.Fatalf("expected 1/2, got %d/%d", sum.Score, sum.Total)
	}
	if sum.Records[1].SelectedAnswer != "Wall" || sum.Records[1].IsCorrect {
		t.Fatalf("unexpected second record: %+v", sum.Records[1])
	}
}

func TestSessionRejectsInvalidTransitions(t *testing.T) {
	s := NewSession()

	if _, err := s.SelectAnswer("Jump"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition selecting while loading, got %v", err)
	}
	if err := s.Advance(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition advancing while loading, got %v", err)
	}
	if err := s.Retry(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition retrying while loading, got %v", err)
	}

	if err := s.Start(sampleQuestions()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := s.Advance(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition advancing before answer, got %v", err)
	}
	if _, err := s.SelectAnswer("Nope"); !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
	if _, err := s.SelectAnswer("Bomb"); err != nil {
		t.Fatalf("SelectAnswer() error = %v", err)
	}
	if _, err := s.SelectAnswer("Jump"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected second selection to be rejected, got %v", err)
	}
}

func TestSessionStartRejectsEmptyQuiz(t *testing.T) {
	s := NewSession()
	if err := s.Start(nil); !errors.Is(err, ErrEmptyQuiz) {
		t.Fatalf("expected ErrEmptyQuiz, got %v", err)
	}
	if s.State != StateLoading {
		t.Fatalf("expected state to stay loading, got %s", s.State)
	}
}

func TestSessionFailAndRetry(t *testing.T) {
	s := NewSession()
	oldID := s.ID

	if err := s.Fail(errors.New("boom")); err != nil {
		t.Fatalf("Fail() error = %v", err)
	}
	if s.State != StateFailed || s.Err == nil {
		t.Fatalf("expected failed with error, got %s err=%v", s.State, s.Err)
	}

	if err := s.Retry(); err != nil {
		t.Fatalf("Retry() error = %v", err)
	}
	if s.State != StateLoading || s.Err != nil {
		t.Fatalf("expected clean loading state, got %s err=%v", s.State, s.Err)
	}
	if s.ID == oldID {
		t.Fatalf("expected a new session id after retry")
	}
}

func TestQuestionRoundTripFromTerm(t *testing.T) {
	term := Term{Name: "Jump", Definition: "A gap in notes.", ImageURL: "https://example.org/x.png"}
	q := NewQuestion(term, []string{"Bomb", "Jump"})

	if q.CorrectAnswer != term.Name || q.Prompt != term.Definition || q.ImageURL != term.ImageURL {
		t.Fatalf("question does not mirror term: %+v", q)
	}
	if q.CorrectIndex() != 1 {
		t.Fatalf("expected correct index 1, got %d", q.CorrectIndex())
	}
}

func TestNameKey(t *testing.T) {
	if got := NameKey("  Double   Directional\tNote "); got != "double directional note" {
		t.Fatalf("unexpected key %q", got)
	}
}
