package ai

import "context"

// StubClient заглушка, которая не делает реальных запросов
type StubClient struct{}

func NewStubClient() *StubClient { return &StubClient{} }

func (c *StubClient) Generate(_ context.Context, _ string) (string, error) {
	return "Утром Анна пошла на рынок. Там она купила хлеб, молоко и яблоки.", nil
}
