package search

import "dexbar/internal/domain"

// History is a most-recent-first list of selected entities without
// duplicates. A limit of 0 means unbounded.
type History struct {
	entries []domain.Entity
	limit   int
}

// NewHistory creates an empty history capped at limit entries
func NewHistory(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

// Push moves e to the front, dropping any earlier occurrence and
// evicting the oldest entries past the limit.
func (h *History) Push(e domain.Entity) {
	entries := make([]domain.Entity, 0, len(h.entries)+1)
	entries = append(entries, e)
	for _, existing := range h.entries {
		if !existing.Equal(e) {
			entries = append(entries, existing)
		}
	}
	if h.limit > 0 && len(entries) > h.limit {
		entries = entries[:h.limit]
	}
	h.entries = entries
}

// Len returns the number of entries
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the history, most recent first
func (h *History) Entries() []domain.Entity {
	return cloneEntities(h.entries)
}
