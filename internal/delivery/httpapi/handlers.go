package httpapi

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aliskhannn/mapping-glossary-quiz/internal/domain/entities"
	"github.com/aliskhannn/mapping-glossary-quiz/internal/service"
	"github.com/aliskhannn/mapping-glossary-quiz/internal/web"
)

const (
	msgQuizFailed      = "failed to generate quiz"
	msgNotEnoughTerms  = "not enough terms"
	msgTermsFailed     = "failed to load glossary"
	msgRenderingFailed = "failed to render page"
)

type QuizService interface {
	GenerateQuiz(ctx context.Context, rng *rand.Rand) (entities.QuestionSet, error)
	Terms(ctx context.Context) ([]entities.Term, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	quiz     QuizService
	logger   *zap.Logger
	basePath string
}

func NewHandler(quiz QuizService, logger *zap.Logger, basePath string) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		quiz:     quiz,
		logger:   logger,
		basePath: basePath,
	}
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// Index serves the browser quiz page, which loads questions from /api/quiz.
func (h *Handler) Index(c *gin.Context) {
	var buf bytes.Buffer
	if err := web.Render(&buf, web.Page{BasePath: h.basePath}); err != nil {
		h.logger.Error("render index", zap.Error(err))
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, msgRenderingFailed)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// GetQuiz returns a freshly assembled quiz. The optional seed query
// parameter makes the result reproducible.
func (h *Handler) GetQuiz(c *gin.Context) {
	rng := service.NewRand()
	if seed := c.Query("seed"); seed != "" {
		rng = service.NewSeededRand(seed)
	}

	questions, err := h.quiz.GenerateQuiz(c.Request.Context(), rng)
	if err != nil {
		h.logger.Error("generate quiz", zap.Error(err))
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: quizErrorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, questions)
}

func (h *Handler) GetTerms(c *gin.Context) {
	terms, err := h.quiz.Terms(c.Request.Context())
	if err != nil {
		h.logger.Error("get terms", zap.Error(err))
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: msgTermsFailed})
		return
	}

	if terms == nil {
		terms = []entities.Term{}
	}
	c.JSON(http.StatusOK, terms)
}

func quizErrorMessage(err error) string {
	if errors.Is(err, service.ErrInsufficientTerms) {
		return msgNotEnoughTerms
	}
	return msgQuizFailed
}
