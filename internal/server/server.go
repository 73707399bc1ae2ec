// Package server exposes the storyteller over HTTP.
package server

import (
	"StoryTutor/internal/config"
	"StoryTutor/internal/service/tts"
	"StoryTutor/internal/story"
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

// StoryService описывает то, что сервер требует от storyteller.Storyteller.
type StoryService interface {
	Generate(ctx context.Context, lastRating string) (string, error)
	History() []story.Entry
}

type Server struct {
	cfg     *config.Config
	srv     *http.Server
	stories StoryService
	speech  tts.Synthesizer // nil, если озвучка выключена
	logger  *zap.SugaredLogger
	running atomic.Bool
}

// New собирает маршруты и http.Server. speech может быть nil.
func New(cfg *config.Config, stories StoryService, speech tts.Synthesizer, logger *zap.SugaredLogger) *Server {
	s := &Server{cfg: cfg, stories: stories, speech: speech, logger: logger}

	// Генерация упирается в таймаут модели, запись ответа должна его пережить.
	writeTimeout := cfg.RequestTimeout + 10*time.Second
	s.srv = &http.Server{
		Addr:              cfg.BindAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Handler возвращает маршруты, обёрнутые в CORS.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/generate_story", s.handleGenerateStory)
	mux.HandleFunc("/history", s.handleHistory)
	if s.speech != nil {
		mux.HandleFunc("/speak", s.handleSpeak)
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions, http.MethodHead},
		AllowedHeaders:   []string{"*"},
	})
	return c.Handler(mux)
}

// Start запускает сервер в отдельной горутине и немедленно возвращается.
func (s *Server) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return nil
	}
	go func() {
		s.logger.Infow("StoryTutor API listening", "addr", s.srv.Addr, "speech", s.speech != nil)
		if err := s.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) && err != nil {
			s.logger.Errorw("StoryTutor API stopped with error", "error", err)
		} else {
			s.logger.Infow("StoryTutor API stopped")
		}
	}()

	go func() {
		<-ctx.Done()
		_ = s.Stop(context.WithoutCancel(ctx))
	}()
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeoutCause(ctx, 5*time.Second, errors.New("storytutor shutdown timeout"))
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Warnw("graceful shutdown error", "error", err)
		return s.srv.Close()
	}
	return nil
}

func (s *Server) Addr() string { return s.cfg.BindAddr }
