package entities

// Question is a quiz prompt derived from exactly one Term.
type Question struct {
	Prompt        string   `json:"question"`           // the term's definition
	Options       []string `json:"options"`            // shuffled options, correct answer included once
	CorrectAnswer string   `json:"answer"`             // the term's name
	ImageURL      string   `json:"imageUrl,omitempty"` // carried over from the term
}

// NewQuestion creates a question for the term with the given options.
func NewQuestion(t Term, options []string) Question {
	return Question{
		Prompt:        t.Definition,
		Options:       options,
		CorrectAnswer: t.Name,
		ImageURL:      t.ImageURL,
	}
}

// HasOption reports whether option is one of the question's options.
func (q Question) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}

// CorrectIndex returns the position of the correct answer in Options, or -1.
func (q Question) CorrectIndex() int {
	for i, o := range q.Options {
		if o == q.CorrectAnswer {
			return i
		}
	}
	return -1
}

// QuestionSet is the ordered collection of questions for one quiz session.
type QuestionSet []Question
