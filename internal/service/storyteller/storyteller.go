package storyteller

import (
	"StoryTutor/internal/ai"
	"StoryTutor/internal/story"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Store сохраняет историю целиком после каждого изменения.
type Store interface {
	Save(entries []story.Entry) error
}

// Storyteller владеет историей и выполняет сценарий генерации:
// промпт из истории -> запрос к модели -> запись в историю -> сохранение.
type Storyteller struct {
	gen     ai.Generator
	history *story.History
	store   Store
	logger  *zap.SugaredLogger
}

// New создаёт сервис. history уже загружена из файла, store сохраняет её обратно.
func New(gen ai.Generator, history *story.History, store Store, logger *zap.SugaredLogger) *Storyteller {
	return &Storyteller{gen: gen, history: history, store: store, logger: logger}
}

// Generate генерирует новый рассказ с учётом последней оценки.
// При оценке "Just Right" рассказ возвращается, но в историю не записывается.
// При ошибке модели история не меняется.
func (s *Storyteller) Generate(ctx context.Context, lastRating string) (string, error) {
	prompt := story.BuildPrompt(s.history.Entries(), lastRating)

	start := time.Now()
	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate story: %w", err)
	}
	s.logger.Infow("Story generated", "rating", lastRating, "runes", len([]rune(text)), "took", time.Since(start).String())

	if lastRating == story.RatingJustRight {
		return text, nil
	}

	s.history.Append(story.NewEntry(text, lastRating))
	if err := s.store.Save(s.history.Entries()); err != nil {
		return "", fmt.Errorf("persist history: %w", err)
	}
	return text, nil
}

// History возвращает текущую историю без побочных эффектов.
func (s *Storyteller) History() []story.Entry {
	return s.history.Entries()
}
