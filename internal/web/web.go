package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/aliskhannn/mapping-glossary-quiz/internal/domain/entities"
)

//go:embed templates/index.html
var templates embed.FS

var indexTmpl = template.Must(template.ParseFS(templates, "templates/index.html"))

// Page is the data rendered into the quiz page.
type Page struct {
	Title    string
	BasePath string
	// QuizURL is fetched by the page when Rounds is empty.
	QuizURL string
	// Rounds are pre-assembled quizzes for static hosting. Retry cycles through them.
	Rounds []entities.QuestionSet
}

// Render writes the quiz page.
func Render(w io.Writer, p Page) error {
	if p.Title == "" {
		p.Title = "Beat Saber Mapping Glossary Quiz"
	}
	if p.QuizURL == "" {
		p.QuizURL = p.BasePath + "/api/quiz"
	}

	if err := indexTmpl.Execute(w, p); err != nil {
		return fmt.Errorf("render index: %w", err)
	}
	return nil
}
