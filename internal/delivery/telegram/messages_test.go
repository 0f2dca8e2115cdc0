package telegram

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/aliskhannn/mapping-glossary-quiz/internal/domain/entities"
	"github.com/aliskhannn/mapping-glossary-quiz/internal/service"
)

func startedSession(t *testing.T) *entities.Session {
	t.Helper()

	s := entities.NewSession()
	err := s.Start(entities.QuestionSet{
		entities.NewQuestion(
			entities.Term{Name: "Jump", Definition: "A gap in notes.", ImageURL: "https://bsmg.wiki/assets/x.png"},
			[]string{"Arc", "Jump", "Wall", "Bomb"},
		),
		entities.NewQuestion(
			entities.Term{Name: "Wall", Definition: "An obstacle (avoid it)."},
			[]string{"Wall", "Arc", "Jump", "Bomb"},
		),
	})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	return s
}

func TestFormatQuestionEscapesMarkdown(t *testing.T) {
	s := startedSession(t)

	text := formatQuestion(s)
	if !strings.Contains(text, "Question 1 / 2") {
		t.Fatalf("expected progress header, got %q", text)
	}
	if !strings.Contains(text, `A gap in notes\.`) {
		t.Fatalf("expected escaped prompt, got %q", text)
	}
	if !strings.Contains(text, "(https://bsmg.wiki/assets/x.png)") {
		t.Fatalf("expected image link, got %q", text)
	}
}

func TestAnswerKeyboardCarriesSession(t *testing.T) {
	s := startedSession(t)

	kb := buildQuizAnswerKeyboard(s)
	if len(kb.InlineKeyboard) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(kb.InlineKeyboard))
	}

	btn := kb.InlineKeyboard[1][0]
	if btn.Text != "Jump" || btn.CallbackData == nil {
		t.Fatalf("unexpected button %+v", btn)
	}
	want := buildQuizAnswerCallback(s.ID.String(), 0, 1)
	if *btn.CallbackData != want {
		t.Fatalf("callback = %q, want %q", *btn.CallbackData, want)
	}
}

func TestFormatRevealAndSummary(t *testing.T) {
	s := startedSession(t)

	rec, err := s.SelectAnswer("Arc")
	if err != nil {
		t.Fatalf("SelectAnswer() error = %v", err)
	}
	reveal := formatReveal(s, rec)
	if !strings.Contains(reveal, "Your answer: Arc") || !strings.Contains(reveal, "Correct answer: Jump") {
		t.Fatalf("unexpected reveal %q", reveal)
	}

	kb := buildQuizNextKeyboard(s)
	if got := kb.InlineKeyboard[0][0].Text; !strings.HasPrefix(got, "Next question") {
		t.Fatalf("expected next button, got %q", got)
	}

	if err := s.Advance(); err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	if _, err := s.SelectAnswer("Wall"); err != nil {
		t.Fatalf("SelectAnswer() error = %v", err)
	}
	if got := buildQuizNextKeyboard(s).InlineKeyboard[0][0].Text; !strings.HasPrefix(got, "See results") {
		t.Fatalf("expected results button on last question, got %q", got)
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance() error = %v", err)
	}

	sum, err := s.Summary()
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	text := formatSummary(sum)
	if !strings.Contains(text, "Your score: 1 / 2 \\(50%\\)") {
		t.Fatalf("unexpected summary %q", text)
	}
	if !strings.Contains(text, "you chose Arc") {
		t.Fatalf("expected wrong answer in summary, got %q", text)
	}
}

func TestFailureMessage(t *testing.T) {
	if got := failureMessage(fmt.Errorf("wrap: %w", service.ErrInsufficientTerms)); got != msgNotEnoughTerms {
		t.Fatalf("unexpected message %q", got)
	}
	if got := failureMessage(errors.New("boom")); got != msgQuizFailed {
		t.Fatalf("unexpected message %q", got)
	}
}
