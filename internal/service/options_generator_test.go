package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/aliskhannn/mapping-glossary-quiz/internal/domain/entities"
)

func TestGenerateOptionsExcludesCorrectTerm(t *testing.T) {
	g := NewOptionGenerator()
	pool := makeTerms(8)
	rng := NewSeededRand("exclude")

	for i := 0; i < 100; i++ {
		opts, err := g.GenerateOptions(rng, pool[0], pool, 4)
		if err != nil {
			t.Fatalf("GenerateOptions() error = %v", err)
		}
		checkQuestion(t, entities.NewQuestion(pool[0], opts), 4)
	}
}

// The correct answer must land in every slot equally often.
func TestGenerateOptionsPositionIsUnbiased(t *testing.T) {
	const trials = 4000

	g := NewOptionGenerator()
	pool := makeTerms(10)
	rng := NewSeededRand("positions")

	var counts [4]int
	for i := 0; i < trials; i++ {
		opts, err := g.GenerateOptions(rng, pool[3], pool, 4)
		if err != nil {
			t.Fatalf("GenerateOptions() error = %v", err)
		}
		counts[entities.NewQuestion(pool[3], opts).CorrectIndex()]++
	}

	expected := float64(trials) / 4
	var chi2 float64
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}

	// df = 3, p = 0.0005 critical value is about 17.7.
	if chi2 > 20 {
		t.Fatalf("correct answer position looks biased: chi2 = %.2f, counts = %v", chi2, counts)
	}
}

func TestGenerateOptionsReachesEveryOrdering(t *testing.T) {
	g := NewOptionGenerator()
	pool := makeTerms(4)
	rng := NewSeededRand("orderings")

	seen := make(map[string]bool)
	for i := 0; i < 2000; i++ {
		opts, err := g.GenerateOptions(rng, pool[0], pool, 4)
		if err != nil {
			t.Fatalf("GenerateOptions() error = %v", err)
		}
		seen[strings.Join(opts, "|")] = true
	}

	if len(seen) != 24 {
		t.Fatalf("expected all 24 orderings, saw %d", len(seen))
	}
}

func TestGenerateOptionsNotEnoughPeers(t *testing.T) {
	g := NewOptionGenerator()
	pool := makeTerms(3)

	_, err := g.GenerateOptions(NewRand(), pool[0], pool, 4)
	if !errors.Is(err, ErrNotEnoughDistractors) {
		t.Fatalf("expected ErrNotEnoughDistractors, got %v", err)
	}
}

func TestQuestionSelectorSelect(t *testing.T) {
	s := NewQuestionSelector()
	rng := NewSeededRand("selector")

	got := s.Select(rng, 15, 10)
	if len(got) != 10 {
		t.Fatalf("expected 10 picks, got %d", len(got))
	}

	seen := make(map[int]bool)
	for _, idx := range got {
		if idx < 0 || idx >= 15 {
			t.Fatalf("index %d out of range", idx)
		}
		if seen[idx] {
			t.Fatalf("index %d picked twice", idx)
		}
		seen[idx] = true
	}

	if got := s.Select(rng, 3, 10); len(got) != 3 {
		t.Fatalf("expected selection capped at n, got %d", len(got))
	}
	if got := s.Select(rng, 5, 0); got != nil {
		t.Fatalf("expected nil for k = 0, got %v", got)
	}
}
