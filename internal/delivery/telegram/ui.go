package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/mapping-glossary-quiz/internal/domain/entities"
)

// buildStartKeyboard builds keyboard for the welcome screen.
func buildStartKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Start quiz", buildQuizStartCallback()),
		),
	)
}

// buildQuizAnswerKeyboard builds keyboard for quiz question, one option per row.
func buildQuizAnswerKeyboard(s *entities.Session) tgbotapi.InlineKeyboardMarkup {
	q := s.Questions[s.Index]

	var rows [][]tgbotapi.InlineKeyboardButton
	for i, option := range q.Options {
		data := buildQuizAnswerCallback(s.ID.String(), s.Index, i)
		button := tgbotapi.NewInlineKeyboardButtonData(option, data)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildQuizNextKeyboard builds keyboard shown after an answer is revealed.
func buildQuizNextKeyboard(s *entities.Session) tgbotapi.InlineKeyboardMarkup {
	label := "Next question ▶️"
	if s.Index == len(s.Questions)-1 {
		label = "See results 🏁"
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildQuizNextCallback(s.ID.String())),
		),
	)
}

// buildQuizRetryKeyboard builds keyboard for the results and error screens.
func buildQuizRetryKeyboard(s *entities.Session) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Play again", buildQuizRetryCallback(s.ID.String())),
		),
	)
}
