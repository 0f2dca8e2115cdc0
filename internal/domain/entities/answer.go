package entities

// AnswerRecord is a question together with the user's response.
type AnswerRecord struct {
	Question
	SelectedAnswer string `json:"selectedAnswer"`
	IsCorrect      bool   `json:"isCorrect"`
}

// NewAnswerRecord checks the selected option against the question's answer.
func NewAnswerRecord(q Question, selected string) AnswerRecord {
	return AnswerRecord{
		Question:       q,
		SelectedAnswer: selected,
		IsCorrect:      selected == q.CorrectAnswer,
	}
}

// Summary is the end-of-session score.
type Summary struct {
	Score   int            `json:"score"`
	Total   int            `json:"total"`
	Records []AnswerRecord `json:"records"`
}

// NewSummary counts correct answers in the history.
func NewSummary(history []AnswerRecord) Summary {
	s := Summary{Total: len(history), Records: history}
	for _, r := range history {
		if r.IsCorrect {
			s.Score++
		}
	}
	return s
}

// Percentage returns the share of correct answers in percent.
func (s Summary) Percentage() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Score) / float64(s.Total) * 100
}
