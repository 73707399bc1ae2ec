package tts

import "context"

// Synthesizer абстракция TTS. Возвращает аудио в формате MP3.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
