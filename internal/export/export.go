package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/aliskhannn/mapping-glossary-quiz/internal/domain/entities"
	"github.com/aliskhannn/mapping-glossary-quiz/internal/service"
	"github.com/aliskhannn/mapping-glossary-quiz/internal/web"
)

// Config describes where and how the static site is written.
type Config struct {
	OutDir   string
	BasePath string
	Rounds   int
	// Seed makes the exported rounds reproducible when set.
	Seed string
}

// Exporter runs extraction and assembly once and writes a static site.
type Exporter struct {
	quiz   *service.QuizService
	cfg    Config
	logger *zap.Logger
}

func NewExporter(quiz *service.QuizService, cfg Config, logger *zap.Logger) *Exporter {
	if cfg.Rounds <= 0 {
		cfg.Rounds = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Exporter{quiz: quiz, cfg: cfg, logger: logger}
}

// Run fetches the glossary once, assembles the configured number of rounds
// and writes index.html and quiz.json into the output directory.
func (e *Exporter) Run(ctx context.Context) ([]entities.QuestionSet, error) {
	terms, err := e.quiz.Terms(ctx)
	if err != nil {
		return nil, err
	}

	rng := service.NewRand()
	if e.cfg.Seed != "" {
		rng = service.NewSeededRand(e.cfg.Seed)
	}

	rounds := make([]entities.QuestionSet, 0, e.cfg.Rounds)
	for i := 0; i < e.cfg.Rounds; i++ {
		qs, err := e.quiz.Assemble(rng, terms)
		if err != nil {
			return nil, fmt.Errorf("assemble round %d: %w", i+1, err)
		}
		rounds = append(rounds, qs)
	}

	if err := os.MkdirAll(e.cfg.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var page bytes.Buffer
	if err := web.Render(&page, web.Page{BasePath: e.cfg.BasePath, Rounds: rounds}); err != nil {
		return nil, err
	}
	if err := writeFile(filepath.Join(e.cfg.OutDir, "index.html"), page.Bytes()); err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(rounds, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal rounds: %w", err)
	}
	if err := writeFile(filepath.Join(e.cfg.OutDir, "quiz.json"), data); err != nil {
		return nil, err
	}

	e.logger.Info("static quiz exported",
		zap.String("out_dir", e.cfg.OutDir),
		zap.Int("terms", len(terms)),
		zap.Int("rounds", len(rounds)),
	)

	return rounds, nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
