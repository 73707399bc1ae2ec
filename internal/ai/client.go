package ai

import "context"

// Generator отправляет промпт в модель и возвращает сгенерированный текст.
// Все реализации взаимозаменяемы; один вызов делает один запрос без повторов.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
