// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/mapping-glossary-quiz/internal/domain/entities"
)

const (
	msgWelcome = "👋 Welcome to the Beat Saber mapping glossary quiz!\n\n" +
		"Every round has questions drawn from the community mapping glossary. " +
		"Read the description and pick the matching term.\n\n" +
		"/quiz - start a new quiz\n/help - show this message"
	msgUnknownCommand = "Unknown command. Use /quiz to start a new quiz."
	msgInternalError  = "Something went wrong. Please try again later."
	msgQuizExpired    = "This quiz has expired, start a new one with /quiz."
	msgNotEnoughTerms = "The glossary does not have enough terms for a quiz right now."
	msgQuizFailed     = "Failed to generate the quiz."
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

// formatQuestion renders the current question of the session.
func formatQuestion(s *entities.Session) string {
	q := s.Questions[s.Index]

	var b strings.Builder
	b.WriteString(bold(fmt.Sprintf("Question %d / %d", s.Index+1, len(s.Questions))))
	b.WriteString("\n\n")
	b.WriteString(md("Which term matches this description?"))
	b.WriteString("\n\n")
	b.WriteString("_" + md(q.Prompt) + "_")
	if q.ImageURL != "" {
		b.WriteString("\n\n")
		b.WriteString("[" + md("Example image") + "](" + escapeLinkURL(q.ImageURL) + ")")
	}
	return b.String()
}

// formatReveal renders the question together with the chosen answer.
func formatReveal(s *entities.Session, rec entities.AnswerRecord) string {
	var b strings.Builder
	b.WriteString(formatQuestion(s))
	b.WriteString("\n\n")

	if rec.IsCorrect {
		b.WriteString(md("✅ Correct: " + rec.CorrectAnswer))
	} else {
		b.WriteString(md("❌ Your answer: " + rec.SelectedAnswer))
		b.WriteString("\n")
		b.WriteString(md("✅ Correct answer: " + rec.CorrectAnswer))
	}
	return b.String()
}

// formatSummary renders the end-of-session score and per-question results.
func formatSummary(sum entities.Summary) string {
	var b strings.Builder
	b.WriteString(bold("🏁 Quiz finished!"))
	b.WriteString("\n\n")
	b.WriteString(md(fmt.Sprintf("Your score: %d / %d (%.0f%%)", sum.Score, sum.Total, sum.Percentage())))
	b.WriteString("\n")

	for i, r := range sum.Records {
		mark := "✅"
		if !r.IsCorrect {
			mark = "❌"
		}
		b.WriteString("\n")
		line := fmt.Sprintf("%s %d. %s", mark, i+1, r.CorrectAnswer)
		if !r.IsCorrect {
			line += fmt.Sprintf(" (you chose %s)", r.SelectedAnswer)
		}
		b.WriteString(md(line))
	}
	return b.String()
}

// escapeLinkURL escapes the characters MarkdownV2 reserves inside link targets.
func escapeLinkURL(u string) string {
	return strings.NewReplacer(`\`, `\\`, `)`, `\)`).Replace(u)
}
