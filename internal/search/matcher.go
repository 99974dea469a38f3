package search

import (
	"strings"

	"golang.org/x/text/cases"

	"dexbar/internal/catalog"
	"dexbar/internal/domain"
)

// Matcher finds catalog entries whose display or phonetic name starts
// with a query, ignoring case.
type Matcher struct {
	catalog *catalog.Catalog
	keys    [][2]string // folded display and phonetic name per entity
}

// NewMatcher precomputes folded match keys for every catalog entry
func NewMatcher(cat *catalog.Catalog) *Matcher {
	m := &Matcher{catalog: cat}
	cat.Each(func(e domain.Entity) bool {
		m.keys = append(m.keys, [2]string{fold(e.DisplayName), fold(e.PhoneticName)})
		return true
	})
	return m
}

// Matches returns the matching entities in catalog order. An empty
// query matches everything.
func (m *Matcher) Matches(query string) []domain.Entity {
	prefix := fold(query)
	all := m.catalog.All()
	matches := make([]domain.Entity, 0, len(all))
	for i, e := range all {
		if strings.HasPrefix(m.keys[i][0], prefix) || strings.HasPrefix(m.keys[i][1], prefix) {
			matches = append(matches, e)
		}
	}
	return matches
}

func fold(s string) string {
	// cases.Caser is stateful, so each call gets its own
	return cases.Fold().String(s)
}
