package story

import (
	"fmt"
	"strings"
	"testing"
)

func TestBuildPrompt_EmptyHistoryIgnoresRating(t *testing.T) {
	for _, rating := range []string{"", RatingTooEasy, RatingTooHard, RatingJustRight, "whatever"} {
		if got := BuildPrompt(nil, rating); got != FirstStoryPrompt {
			t.Fatalf("rating %q: want first-story prompt, got %q", rating, got)
		}
		if got := BuildPrompt([]Entry{}, rating); got != FirstStoryPrompt {
			t.Fatalf("rating %q: want first-story prompt for empty slice, got %q", rating, got)
		}
	}
	if !strings.Contains(FirstStoryPrompt, "2-3 paragraphs") || !strings.Contains(FirstStoryPrompt, "intermediate") {
		t.Fatalf("unexpected first-story prompt: %q", FirstStoryPrompt)
	}
}

func TestBuildPrompt_ContainsEntries(t *testing.T) {
	entries := []Entry{
		{Story: "Жил-был кот.", Rating: RatingTooEasy},
		{Story: "Маша пошла в лес.", Rating: RatingNone},
	}
	got := BuildPrompt(entries, RatingTooEasy)
	for i, e := range entries {
		want := fmt.Sprintf("\nStory %d:\n%s\nRating: %s\n", i+1, e.Story, e.Rating)
		if !strings.Contains(got, want) {
			t.Fatalf("prompt misses entry %d block %q:\n%s", i, want, got)
		}
	}
	if !strings.HasPrefix(got, "Here are the last stories and their ratings:\n") {
		t.Fatalf("unexpected prompt header:\n%s", got)
	}
	if !strings.Contains(got, "5-6 paragraphs") || !strings.Contains(got, "you must NOT include it") {
		t.Fatalf("prompt misses new story instruction:\n%s", got)
	}
	if !strings.HasSuffix(got, "always try to stay on the harder side of 'just right' for the user.") {
		t.Fatalf("prompt misses progression instruction:\n%s", got)
	}
}

func TestBuildPrompt_OnlyLastFive(t *testing.T) {
	var entries []Entry
	for i := 0; i < 7; i++ {
		entries = append(entries, Entry{Story: fmt.Sprintf("story-%d", i), Rating: RatingTooHard})
	}
	got := BuildPrompt(entries, "")
	for _, old := range []string{"story-0\n", "story-1\n"} {
		if strings.Contains(got, old) {
			t.Fatalf("prompt should not contain evicted %q", old)
		}
	}
	for i := 2; i < 7; i++ {
		if !strings.Contains(got, fmt.Sprintf("story-%d", i)) {
			t.Fatalf("prompt misses story-%d", i)
		}
	}
	if !strings.Contains(got, "Story 5:\nstory-6\n") {
		t.Fatalf("numbering should restart at the oldest kept entry:\n%s", got)
	}
}

func TestBuildPrompt_FeedbackClause(t *testing.T) {
	entries := []Entry{{Story: "Текст", Rating: RatingNone}}
	cases := []struct {
		rating string
		want   string
	}{
		{RatingTooEasy, "more challenging"},
		{RatingTooHard, "easier"},
		{RatingJustRight, "do not need to generate"},
		{"", "adjusting the difficulty as appropriate"},
		{"Meh", "adjusting the difficulty as appropriate"},
	}
	for _, tc := range cases {
		got := BuildPrompt(entries, tc.rating)
		if !strings.Contains(got, tc.want) {
			t.Errorf("rating %q: prompt misses %q:\n%s", tc.rating, tc.want, got)
		}
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	entries := []Entry{{Story: "a", Rating: RatingTooHard}, {Story: "b", Rating: RatingTooEasy}}
	if BuildPrompt(entries, RatingTooHard) != BuildPrompt(entries, RatingTooHard) {
		t.Fatal("prompt must be deterministic")
	}
}
