// Package story содержит модель истории рассказов, её файловое хранилище
// и построение промпта с адаптацией сложности по последней оценке.
package story

// Оценки сложности, которые присылает фронтенд.
const (
	RatingTooEasy   = "Too Easy"
	RatingTooHard   = "Too Hard"
	RatingJustRight = "Just Right"
	// RatingNone сохраняется, если запрос пришёл без оценки.
	RatingNone = "N/A"
)

// Entry — рассказ и оценка, с которой он был запрошен.
type Entry struct {
	Story  string `json:"story"`
	Rating string `json:"rating"`
}

// NewEntry подставляет RatingNone для пустой оценки.
func NewEntry(story, rating string) Entry {
	if rating == "" {
		rating = RatingNone
	}
	return Entry{Story: story, Rating: rating}
}
