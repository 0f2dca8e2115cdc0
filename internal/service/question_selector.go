package service

import "math/rand/v2"

// QuestionSelector picks which terms become questions.
type QuestionSelector struct{}

// NewQuestionSelector creates a new QuestionSelector.
func NewQuestionSelector() *QuestionSelector {
	return &QuestionSelector{}
}

// Select returns k distinct indexes out of [0, n) in random order.
// Every ordered k-subset is equally likely.
func (s *QuestionSelector) Select(rng *rand.Rand, n, k int) []int {
	if k <= 0 || n <= 0 {
		return nil
	}
	if k > n {
		k = n
	}

	return rng.Perm(n)[:k]
}
