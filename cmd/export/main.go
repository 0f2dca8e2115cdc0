package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aliskhannn/mapping-glossary-quiz/internal/config"
	"github.com/aliskhannn/mapping-glossary-quiz/internal/export"
	"github.com/aliskhannn/mapping-glossary-quiz/internal/infra/glossary"
	"github.com/aliskhannn/mapping-glossary-quiz/internal/logger"
	"github.com/aliskhannn/mapping-glossary-quiz/internal/repository"
	"github.com/aliskhannn/mapping-glossary-quiz/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	outDir := flag.String("out", cfg.Export.OutDir, "output directory")
	rounds := flag.Int("rounds", cfg.Export.Rounds, "number of quizzes embedded in the page")
	seed := flag.String("seed", "", "seed for reproducible output")
	flag.Parse()

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := glossary.NewClient(glossary.ClientConfig{
		URL:       cfg.Glossary.URL,
		UserAgent: cfg.Glossary.UserAgent,
		Timeout:   cfg.Glossary.Timeout,
	})
	termRepo := repository.NewTermRepository(client, cfg.Glossary.BaseURL, lg.Named("repository"))
	quizService := service.NewQuizService(termRepo, cfg.Quiz.QuestionCount, cfg.Quiz.OptionCount, lg.Named("quiz"))

	exporter := export.NewExporter(quizService, export.Config{
		OutDir:   *outDir,
		BasePath: cfg.HTTP.BasePath,
		Rounds:   *rounds,
		Seed:     *seed,
	}, lg.Named("export"))

	if _, err := exporter.Run(ctx); err != nil {
		lg.Fatal("export failed", zap.Error(err))
	}
}
