package service

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/aliskhannn/mapping-glossary-quiz/internal/domain/entities"
)

// ErrNotEnoughDistractors is returned when a term has too few distinct peers
// to fill its wrong options.
var ErrNotEnoughDistractors = errors.New("not enough distinct terms for distractors")

// OptionGenerator generates multiple choice options for quiz questions.
type OptionGenerator struct{}

// NewOptionGenerator creates a new option generator.
func NewOptionGenerator() *OptionGenerator {
	return &OptionGenerator{}
}

// GenerateOptions returns count options: the correct term's name plus count-1
// distinct names of other terms, in random order.
func (g *OptionGenerator) GenerateOptions(
	rng *rand.Rand,
	correct entities.Term,
	pool []entities.Term,
	count int,
) ([]string, error) {
	wrong, err := g.generateWrongOptions(rng, correct, pool, count-1)
	if err != nil {
		return nil, err
	}

	options := make([]string, 0, count)
	options = append(options, correct.Name)
	options = append(options, wrong...)

	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return options, nil
}

// generateWrongOptions samples count names from pool without replacement,
// excluding the correct term and repeated names.
func (g *OptionGenerator) generateWrongOptions(
	rng *rand.Rand,
	correct entities.Term,
	pool []entities.Term,
	count int,
) ([]string, error) {
	used := map[string]bool{correct.Key(): true}

	// Create a pool of candidates
	candidates := make([]string, 0, len(pool))
	for _, t := range pool {
		key := t.Key()
		if used[key] {
			continue
		}
		used[key] = true
		candidates = append(candidates, t.Name)
	}

	if len(candidates) < count {
		return nil, fmt.Errorf("%w: %q has %d peers, need %d",
			ErrNotEnoughDistractors, correct.Name, len(candidates), count)
	}

	// Partial Fisher-Yates, only the first count slots are needed.
	for i := 0; i < count; i++ {
		j := i + rng.IntN(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	return candidates[:count], nil
}
