package search

import "dexbar/internal/domain"

// Intent is a user action dispatched to the store. The set is closed:
// only the types in this file implement it.
type Intent interface {
	intent()
	Name() string
}

// QueryChange replaces the search text
type QueryChange struct {
	Query string
}

// Select picks an entity from the current results or history
type Select struct {
	Entity domain.Entity
}

// Back dismisses the current selection
type Back struct{}

// Cancel resets the search to idle
type Cancel struct{}

func (QueryChange) intent() {}
func (Select) intent()      {}
func (Back) intent()        {}
func (Cancel) intent()      {}

func (QueryChange) Name() string { return "query_change" }
func (Select) Name() string      { return "select" }
func (Back) Name() string        { return "back" }
func (Cancel) Name() string      { return "cancel" }
