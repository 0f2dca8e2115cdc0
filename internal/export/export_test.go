package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aliskhannn/mapping-glossary-quiz/internal/domain/entities"
	"github.com/aliskhannn/mapping-glossary-quiz/internal/service"
)

type fakeTermRepo struct {
	terms []entities.Term
	err   error
}

func (f fakeTermRepo) GetAll(context.Context) ([]entities.Term, error) {
	return f.terms, f.err
}

func makeTerms(n int) []entities.Term {
	terms := make([]entities.Term, 0, n)
	for i := 0; i < n; i++ {
		terms = append(terms, entities.Term{Name: fmt.Sprintf("Term %d", i), Definition: fmt.Sprintf("Def %d", i)})
	}
	return terms
}

func TestExporterWritesSite(t *testing.T) {
	out := filepath.Join(t.TempDir(), "site")
	svc := service.NewQuizService(fakeTermRepo{terms: makeTerms(14)}, 10, 4, nil)
	exp := NewExporter(svc, Config{OutDir: out, BasePath: "/GlossaryQuiz", Rounds: 3, Seed: "export"}, nil)

	rounds, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("expected 3 rounds, got %d", len(rounds))
	}

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatalf("read index.html: %v", err)
	}
	if !strings.Contains(string(index), `"answer":`) {
		t.Fatalf("expected rounds embedded in index.html")
	}

	raw, err := os.ReadFile(filepath.Join(out, "quiz.json"))
	if err != nil {
		t.Fatalf("read quiz.json: %v", err)
	}
	var decoded []entities.QuestionSet
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode quiz.json: %v", err)
	}
	if len(decoded) != 3 || len(decoded[0]) != 10 {
		t.Fatalf("unexpected quiz.json shape: %d rounds", len(decoded))
	}
}

func TestExporterFailsWithoutEnoughTerms(t *testing.T) {
	out := filepath.Join(t.TempDir(), "site")
	svc := service.NewQuizService(fakeTermRepo{terms: makeTerms(5)}, 10, 4, nil)

	_, err := NewExporter(svc, Config{OutDir: out, Rounds: 1}, nil).Run(context.Background())
	if !errors.Is(err, service.ErrInsufficientTerms) {
		t.Fatalf("expected ErrInsufficientTerms, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(out, "index.html")); !os.IsNotExist(statErr) {
		t.Fatalf("expected nothing to be written on failure")
	}
}
