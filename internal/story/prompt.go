package story

import (
	"fmt"
	"strings"
)

// FirstStoryPrompt отправляется, пока история пуста.
const FirstStoryPrompt = "Write a short story in Russian, 2-3 paragraphs long, suitable for a learner at the intermediate level. " +
	"Aim for a story that is interesting and engaging. " +
	"Do not include any English translation or explanation."

const (
	feedbackTooEasy   = "The last story was too easy. Please generate a new story that is more challenging."
	feedbackTooHard   = "The last story was too hard. Please generate a new story that is easier."
	feedbackJustRight = "The last story was just right. You do not need to generate a new story unless requested."
	feedbackDefault   = "Please generate a new story, adjusting the difficulty as appropriate."

	newStoryInstruction = "Write a new short story in Russian, 5-6 paragraphs long. " +
		"Do not include any English translation or explanation. " +
		"The example texts have 'Story' or 'История' in the beginning, you must NOT include it.\n"
	progressionInstruction = "When generating a new story, always try to stay on the harder side of 'just right' for the user."
)

// BuildPrompt собирает промпт из последних MaxEntries записей и последней оценки.
func BuildPrompt(entries []Entry, lastRating string) string {
	if len(entries) == 0 {
		return FirstStoryPrompt
	}
	if len(entries) > MaxEntries {
		entries = entries[len(entries)-MaxEntries:]
	}

	var b strings.Builder
	b.WriteString("Here are the last stories and their ratings:\n")
	for i, e := range entries {
		fmt.Fprintf(&b, "\nStory %d:\n%s\nRating: %s\n", i+1, e.Story, e.Rating)
	}
	b.WriteString("\n\n")
	b.WriteString(feedbackFor(lastRating))
	b.WriteString("\n")
	b.WriteString(newStoryInstruction)
	b.WriteString(progressionInstruction)
	return b.String()
}

func feedbackFor(rating string) string {
	switch rating {
	case RatingTooEasy:
		return feedbackTooEasy
	case RatingTooHard:
		return feedbackTooHard
	case RatingJustRight:
		return feedbackJustRight
	default:
		return feedbackDefault
	}
}
