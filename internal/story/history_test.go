package story

import (
	"fmt"
	"testing"
)

func TestHistory_EvictsOldest(t *testing.T) {
	h := NewHistory(nil)
	for i := 0; i < 8; i++ {
		h.Append(Entry{Story: fmt.Sprintf("s%d", i), Rating: RatingTooEasy})
		if h.Len() > MaxEntries {
			t.Fatalf("history grew to %d", h.Len())
		}
	}
	got := h.Entries()
	if len(got) != MaxEntries {
		t.Fatalf("want %d entries, got %d", MaxEntries, len(got))
	}
	for i, e := range got {
		if want := fmt.Sprintf("s%d", i+3); e.Story != want {
			t.Fatalf("entry %d: want %s, got %s", i, want, e.Story)
		}
	}
}

func TestNewHistory_TrimsLoadedEntries(t *testing.T) {
	var loaded []Entry
	for i := 0; i < 7; i++ {
		loaded = append(loaded, Entry{Story: fmt.Sprintf("s%d", i), Rating: RatingNone})
	}
	h := NewHistory(loaded)
	got := h.Entries()
	if len(got) != MaxEntries || got[0].Story != "s2" || got[4].Story != "s6" {
		t.Fatalf("unexpected entries after load: %+v", got)
	}
}

func TestHistory_EntriesIsCopy(t *testing.T) {
	h := NewHistory([]Entry{{Story: "a", Rating: RatingTooHard}})
	got := h.Entries()
	got[0].Story = "mutated"
	if h.Entries()[0].Story != "a" {
		t.Fatal("internal state mutated via returned slice")
	}
}

func TestNewEntry_DefaultsRating(t *testing.T) {
	if e := NewEntry("x", ""); e.Rating != RatingNone {
		t.Fatalf("want %q, got %q", RatingNone, e.Rating)
	}
	if e := NewEntry("x", RatingTooHard); e.Rating != RatingTooHard {
		t.Fatalf("want %q, got %q", RatingTooHard, e.Rating)
	}
}
