package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/mapping-glossary-quiz/internal/config"
	"github.com/aliskhannn/mapping-glossary-quiz/internal/delivery/httpapi"
	"github.com/aliskhannn/mapping-glossary-quiz/internal/delivery/telegram"
	"github.com/aliskhannn/mapping-glossary-quiz/internal/infra/glossary"
	"github.com/aliskhannn/mapping-glossary-quiz/internal/logger"
	"github.com/aliskhannn/mapping-glossary-quiz/internal/repository"
	"github.com/aliskhannn/mapping-glossary-quiz/internal/service"
	"github.com/aliskhannn/mapping-glossary-quiz/internal/storage"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize glossary client, repository and quiz service.
	client := glossary.NewClient(glossary.ClientConfig{
		URL:       cfg.Glossary.URL,
		UserAgent: cfg.Glossary.UserAgent,
		Timeout:   cfg.Glossary.Timeout,
	})
	termRepo := repository.NewTermRepository(client, cfg.Glossary.BaseURL, lg.Named("repository"))
	quizService := service.NewQuizService(termRepo, cfg.Quiz.QuestionCount, cfg.Quiz.OptionCount, lg.Named("quiz"))

	router := httpapi.NewRouter(httpapi.RouterConfig{
		Handler:      httpapi.NewHandler(quizService, lg.Named("http"), cfg.HTTP.BasePath),
		Logger:       lg.Named("http"),
		BasePath:     cfg.HTTP.BasePath,
		AllowOrigins: cfg.HTTP.AllowOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		lg.Info("http server started", zap.String("addr", cfg.HTTP.Addr), zap.String("base_path", cfg.HTTP.BasePath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		lg.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.TelegramAPIToken != "" {
		bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
		if err != nil {
			lg.Fatal("failed to create telegram bot", zap.Error(err))
		}
		bot.Debug = cfg.Env != "production"
		lg.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

		handler := telegram.NewHandler(bot, lg.Named("telegram"), quizService, storage.NewSessionStorage())
		g.Go(func() error {
			if err := handler.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		lg.Fatal("server stopped with error", zap.Error(err))
	}
	lg.Info("server stopped")
}
