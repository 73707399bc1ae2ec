package ai

import (
	"StoryTutor/internal/config"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"go.uber.org/zap"
)

// responsesService: минимальный срез openai.Client.Responses, подменяется в тестах.
type responsesService interface {
	New(ctx context.Context, body responses.ResponseNewParams, opts ...option.RequestOption) (*responses.Response, error)
}

// OpenAIClient отправляет только текст в OpenAI Responses API
type OpenAIClient struct {
	responses responsesService
	model     string
	logger    *zap.SugaredLogger
}

// NewOpenAIClient создаёт клиента без автоматических повторов SDK.
func NewOpenAIClient(cfg config.OpenAIConfig, timeout time.Duration, logger *zap.SugaredLogger) *OpenAIClient {
	opts := []option.RequestOption{
		option.WithMaxRetries(0),
		option.WithRequestTimeout(timeout),
	}
	if key := strings.TrimSpace(cfg.APIKey); key != "" {
		opts = append(opts, option.WithAPIKey(key))
	}
	client := openai.NewClient(opts...)
	model := cfg.Model
	if model == "" {
		model = string(openai.ChatModelGPT4o)
	}
	return &OpenAIClient{responses: &client.Responses, model: model, logger: logger}
}

func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	resp, err := c.responses.New(ctx, responses.ResponseNewParams{
		Model: openai.ChatModel(c.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam{
				responses.ResponseInputItemParamOfMessage(
					responses.ResponseInputMessageContentListParam{
						{
							OfInputText: &responses.ResponseInputTextParam{
								Text: prompt,
							},
						},
					},
					responses.EasyInputMessageRoleUser,
				),
			},
		},
	})
	dur := time.Since(start)
	if err != nil {
		c.logger.Errorw("OpenAI request failed", "duration", dur.String(), "error", err)
		re := &RemoteServiceError{Provider: config.ProviderOpenAI, Err: err}
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			re.StatusCode = apiErr.StatusCode
		}
		return "", re
	}
	c.logger.Infow("OpenAI response received", "duration", dur.String())

	if resp == nil {
		return "", ErrMalformedResponse
	}
	text := resp.OutputText()
	if text == "" {
		return "", ErrMalformedResponse
	}
	return text, nil
}
