package story

import "sync"

// MaxEntries: сколько последних рассказов хранится и попадает в промпт.
const MaxEntries = 5

// History — буфер фиксированной ёмкости, при переполнении удаляется самая старая запись.
// Мьютекс защищает только сам срез: сценарий генерации целиком не сериализуется.
type History struct {
	cap     int
	entries []Entry
	mu      sync.Mutex
}

// NewHistory создаёт историю из загруженных записей, оставляя последние MaxEntries.
func NewHistory(entries []Entry) *History {
	h := &History{cap: MaxEntries, entries: make([]Entry, 0, MaxEntries)}
	if len(entries) > h.cap {
		entries = entries[len(entries)-h.cap:]
	}
	h.entries = append(h.entries, entries...)
	return h
}

// Append добавляет запись, при переполнении удаляет самую старую.
func (h *History) Append(e Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) == h.cap {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:h.cap-1]
	}
	h.entries = append(h.entries, e)
}

// Entries возвращает копию записей от старой к новой.
func (h *History) Entries() []Entry {
	h.mu.Lock()
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	h.mu.Unlock()
	return out
}

func (h *History) Len() int {
	h.mu.Lock()
	l := len(h.entries)
	h.mu.Unlock()
	return l
}
