package telegram

import (
	"context"
	"math/rand/v2"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/mapping-glossary-quiz/internal/domain/entities"
)

type QuizService interface {
	GenerateQuiz(ctx context.Context, rng *rand.Rand) (entities.QuestionSet, error)
}

type SessionStore interface {
	Store(chatID int64, session *entities.Session)
	Get(chatID int64) (*entities.Session, bool)
	Delete(chatID int64)
}

type Handler struct {
	bot         *tgbotapi.BotAPI
	logger      *zap.Logger
	quizService QuizService
	sessions    SessionStore
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	quizService QuizService,
	sessions SessionStore,
) *Handler {
	return &Handler{
		bot:         bot,
		logger:      logger,
		quizService: quizService,
		sessions:    sessions,
	}
}

// Commands lists the bot commands shown in the Telegram menu.
func Commands() []tgbotapi.BotCommand {
	return []tgbotapi.BotCommand{
		{Command: "start", Description: "Start the bot"},
		{Command: "quiz", Description: "Start a new quiz"},
		{Command: "help", Description: "Help"},
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	if _, err := h.bot.Request(tgbotapi.NewSetMyCommands(Commands()...)); err != nil {
		h.logger.Warn("failed to set bot commands", zap.Error(err))
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if !update.Message.IsCommand() {
		_ = h.send(newPlainMessage(chatID, msgUnknownCommand))
		return
	}

	switch update.Message.Command() {
	case "start", "help":
		msg := newPlainMessage(chatID, msgWelcome)
		msg.ReplyMarkup = buildStartKeyboard()
		_ = h.send(msg)

	case "quiz":
		_ = h.withErrorHandling(h.startQuiz())(ctx, chatID)

	default:
		_ = h.send(newPlainMessage(chatID, msgUnknownCommand))
	}
}

func (h *Handler) sendError(chatID int64, err string) {
	_ = h.send(newPlainMessage(chatID, err))
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}
