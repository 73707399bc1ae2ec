package main

import (
	"StoryTutor/internal/ai"
	"StoryTutor/internal/config"
	"StoryTutor/internal/server"
	"StoryTutor/internal/service/storyteller"
	"StoryTutor/internal/service/tts"
	"StoryTutor/internal/service/tts/google"
	"StoryTutor/internal/story"
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// HTTP API генерации учебных рассказов на русском языке.
func main() {
	cfg := config.NewConfig()

	var (
		logger *zap.Logger
		err    error
	)
	if cfg.DebugMode {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	//сброс буфера логгера
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sugar.Infow("Starting StoryTutor",
		"DebugMode", cfg.DebugMode,
		"provider", cfg.Provider,
		"historyFile", cfg.HistoryFilePath,
	)

	gen, err := ai.New(ctx, cfg, sugar)
	if err != nil {
		sugar.Errorw("failed to init generator", "error", err)
		return
	}

	// История загружается один раз при старте
	store := story.NewFileStore(cfg.HistoryFilePath, sugar)
	history := story.NewHistory(store.Load())
	sugar.Infow("History loaded", "entries", history.Len())

	teller := storyteller.New(gen, history, store, sugar)

	var speech tts.Synthesizer
	if cfg.Speech.Enabled {
		speech = google.New(cfg.Speech, sugar)
	}

	srv := server.New(cfg, teller, speech, sugar)
	if err := srv.Start(ctx); err != nil {
		sugar.Errorw("failed to start server", "error", err)
		return
	}

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeoutCause(context.Background(), 5*time.Second, errors.New("shutdown timeout"))
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		sugar.Warnw("graceful shutdown error", "error", err)
	}
	sugar.Infow("server stopped")
}
