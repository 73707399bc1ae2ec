package ai

import (
	"StoryTutor/internal/config"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
)

var geminiScopes = []string{
	"https://www.googleapis.com/auth/cloud-platform",
	"https://www.googleapis.com/auth/generative-language",
}

// GeminiClient вызывает REST метод generateContent.
type GeminiClient struct {
	http     *http.Client
	endpoint string
	apiKey   string // пустой в режиме adc
	logger   *zap.SugaredLogger
}

// requestPayload: {contents: [{parts: [{text}]}]}
type requestPayload struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateResponse описывает только путь candidates[0].content.parts[0].text.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text *string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// NewGeminiClient создаёт клиента. В режиме adc HTTP‑клиент получает токены через
// Application Default Credentials, API ключ не используется.
func NewGeminiClient(ctx context.Context, cfg config.GeminiConfig, timeout time.Duration, logger *zap.SugaredLogger) (*GeminiClient, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = config.DefaultGeminiEndpoint
	}
	if _, err := url.Parse(endpoint); err != nil {
		return nil, fmt.Errorf("gemini: invalid endpoint: %w", err)
	}

	c := &GeminiClient{endpoint: endpoint, logger: logger}
	switch cfg.Auth {
	case config.GeminiAuthADC:
		hc, err := google.DefaultClient(ctx, geminiScopes...)
		if err != nil {
			return nil, fmt.Errorf("gemini: ADC credentials not found: %w", err)
		}
		hc.Timeout = timeout
		c.http = hc
	default:
		c.apiKey = strings.TrimSpace(cfg.APIKey)
		if c.apiKey == "" {
			// Запросы всё равно уходят: upstream ответит ошибкой авторизации.
			logger.Warnw("GEMINI_API_KEY is empty, generation requests will be rejected upstream")
		}
		c.http = &http.Client{Timeout: timeout}
	}
	return c, nil
}

// Generate выполняет один запрос без повторов.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(requestPayload{Contents: []content{{Parts: []part{{Text: prompt}}}}})
	if err != nil {
		return "", err
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", err
	}
	if c.apiKey != "" {
		q := u.Query()
		q.Set("key", c.apiKey)
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Errorw("Gemini request failed", "took", time.Since(started).String(), "error", err)
		return "", &RemoteServiceError{Provider: config.ProviderGemini, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Infow("Gemini request completed", "status", resp.StatusCode, "took", time.Since(started).String())

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if len(b) == 0 {
			b = []byte(resp.Status)
		}
		return "", &RemoteServiceError{
			Provider:   config.ProviderGemini,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(b)),
		}
	}

	var gr generateResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 5<<20)).Decode(&gr); err != nil {
		return "", fmt.Errorf("gemini: decode json response: %w", ErrMalformedResponse)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 || gr.Candidates[0].Content.Parts[0].Text == nil {
		return "", fmt.Errorf("gemini: no candidates[0].content.parts[0].text: %w", ErrMalformedResponse)
	}
	return *gr.Candidates[0].Content.Parts[0].Text, nil
}
