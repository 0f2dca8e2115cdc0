package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/mapping-glossary-quiz/internal/domain/entities"
	"github.com/aliskhannn/mapping-glossary-quiz/internal/service"
)

// startQuiz replaces the chat's session with a fresh one and loads it.
func (h *Handler) startQuiz() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session := entities.NewSession()
		h.sessions.Store(chatID, session)
		return h.loadQuiz(ctx, chatID, session)
	}
}

// loadQuiz fills a loading session with questions and shows the first one.
// A generation failure moves the session to the failed state with a retry button.
func (h *Handler) loadQuiz(ctx context.Context, chatID int64, session *entities.Session) error {
	questions, err := h.quizService.GenerateQuiz(ctx, service.NewRand())
	if err != nil {
		h.logger.Warn("quiz generation failed",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		if ferr := session.Fail(err); ferr != nil {
			return ferr
		}

		msg := newPlainMessage(chatID, failureMessage(err))
		msg.ReplyMarkup = buildQuizRetryKeyboard(session)
		return h.send(msg)
	}

	if err := session.Start(questions); err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	return h.sendQuestion(chatID, session)
}

func (h *Handler) sendQuestion(chatID int64, session *entities.Session) error {
	msg := newMessage(chatID, formatQuestion(session))
	msg.ReplyMarkup = buildQuizAnswerKeyboard(session)
	return h.send(msg)
}

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}

	qc, ok := parseQuizCallback(decodeCallback(cb.Data))
	if !ok {
		h.logger.Warn("invalid callback data", zap.String("data", cb.Data))
		h.answerCallback(cb, "")
		return
	}

	chatID := cb.Message.Chat.ID
	msgID := cb.Message.MessageID

	var (
		notice string
		err    error
	)

	switch qc.Sub {
	case quizStart:
		err = h.startQuiz()(ctx, chatID)
	case quizAnswer:
		notice, err = h.handleAnswer(chatID, msgID, qc)
	case quizNext:
		notice, err = h.handleNext(chatID, msgID, qc)
	case quizRetry:
		notice, err = h.handleRetry(ctx, chatID, qc)
	}

	if err != nil {
		h.logger.Error("handle quiz callback",
			zap.Int64("chat_id", chatID),
			zap.String("data", cb.Data),
			zap.Error(err),
		)
		h.sendError(chatID, msgInternalError)
	}

	// Remove the user's "clock".
	h.answerCallback(cb, notice)
}

// activeSession returns the chat's session if the callback belongs to it.
func (h *Handler) activeSession(chatID int64, sessionID string) (*entities.Session, bool) {
	session, ok := h.sessions.Get(chatID)
	if !ok || session.ID.String() != sessionID {
		return nil, false
	}
	return session, true
}

func (h *Handler) handleAnswer(chatID int64, msgID int, qc quizCallback) (string, error) {
	session, ok := h.activeSession(chatID, qc.SessionID)
	if !ok || session.State != entities.StateInProgress || session.Index != qc.QuestionNum {
		return msgQuizExpired, nil
	}

	q, _ := session.Current()
	if qc.OptionIndex >= len(q.Options) {
		return msgQuizExpired, nil
	}

	rec, err := session.SelectAnswer(q.Options[qc.OptionIndex])
	if err != nil {
		return "", err
	}

	edit := newEdit(chatID, msgID, formatReveal(session, rec))
	kb := buildQuizNextKeyboard(session)
	edit.ReplyMarkup = &kb
	if err := h.send(edit); err != nil {
		return "", err
	}

	if rec.IsCorrect {
		return "✅", nil
	}
	return "❌", nil
}

func (h *Handler) handleNext(chatID int64, msgID int, qc quizCallback) (string, error) {
	session, ok := h.activeSession(chatID, qc.SessionID)
	if !ok || session.State != entities.StateAnswerRevealed {
		return msgQuizExpired, nil
	}

	// Drop the Next button from the answered question.
	_ = h.send(tgbotapi.NewEditMessageReplyMarkup(chatID, msgID, tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{},
	}))

	if err := session.Advance(); err != nil {
		return "", err
	}

	if session.State == entities.StateInProgress {
		return "", h.sendQuestion(chatID, session)
	}

	sum, err := session.Summary()
	if err != nil {
		return "", err
	}

	msg := newMessage(chatID, formatSummary(sum))
	msg.ReplyMarkup = buildQuizRetryKeyboard(session)
	return "", h.send(msg)
}

func (h *Handler) handleRetry(ctx context.Context, chatID int64, qc quizCallback) (string, error) {
	session, ok := h.activeSession(chatID, qc.SessionID)
	if !ok {
		return msgQuizExpired, nil
	}

	if err := session.Retry(); err != nil {
		if errors.Is(err, entities.ErrInvalidTransition) {
			return msgQuizExpired, nil
		}
		return "", err
	}

	return "", h.loadQuiz(ctx, chatID, session)
}

func (h *Handler) answerCallback(cb *tgbotapi.CallbackQuery, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(cb.ID, text)); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}

func failureMessage(err error) string {
	if errors.Is(err, service.ErrInsufficientTerms) {
		return msgNotEnoughTerms
	}
	return msgQuizFailed
}
