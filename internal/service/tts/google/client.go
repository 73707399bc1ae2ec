package google

import (
	"StoryTutor/internal/config"
	"context"
	"errors"
	"strings"
	"time"

	gctts "cloud.google.com/go/texttospeech/apiv1"
	ttspb "cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"go.uber.org/zap"
)

// Client реализует синтез речи через Google Cloud Text-to-Speech.
type Client struct {
	cfg    config.SpeechConfig
	logger *zap.SugaredLogger
}

func New(cfg config.SpeechConfig, logger *zap.SugaredLogger) *Client {
	return &Client{cfg: cfg, logger: logger}
}

// Synthesize выполняет запрос к Google TTS и возвращает MP3.
// Текст в теге <speak> отправляется как SSML.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("google tts: empty input text")
	}

	// Клиент SDK берёт ключ из GOOGLE_APPLICATION_CREDENTIALS
	ttsClient, err := gctts.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	defer ttsClient.Close()

	var input *ttspb.SynthesisInput
	if strings.HasPrefix(strings.TrimSpace(text), "<speak>") {
		input = &ttspb.SynthesisInput{InputSource: &ttspb.SynthesisInput_Ssml{Ssml: text}}
	} else {
		input = &ttspb.SynthesisInput{InputSource: &ttspb.SynthesisInput_Text{Text: text}}
	}

	voice := &ttspb.VoiceSelectionParams{
		LanguageCode: c.cfg.Language,
		Name:         c.cfg.Voice,
	}

	// Только MP3
	audio := &ttspb.AudioConfig{
		AudioEncoding: ttspb.AudioEncoding_MP3,
		SpeakingRate:  c.cfg.SpeakingRate,
	}

	req := &ttspb.SynthesizeSpeechRequest{Input: input, Voice: voice, AudioConfig: audio}
	started := time.Now()
	resp, err := ttsClient.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, err
	}
	c.logger.Infow("Google TTS synthesize completed", "took", time.Since(started).String(), "bytes", len(resp.GetAudioContent()))
	return resp.GetAudioContent(), nil
}
