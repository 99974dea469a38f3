package search

import "dexbar/internal/domain"

// Mode is the logical mode of the search bar
type Mode int

const (
	ModeIdle Mode = iota
	ModeActive
)

func (m Mode) String() string {
	if m == ModeActive {
		return "active"
	}
	return "idle"
}

// State is an immutable snapshot of the search UI.
// Slices are owned by the snapshot and must not be modified.
type State struct {
	Query      string
	IsQuerying bool
	Selected   *domain.Entity
	Results    []domain.Entity
	History    []domain.Entity
	Seq        uint64 // 0 for the initial snapshot, +1 per intent
}

// Mode reports whether the store is idle or in an active search
func (s State) Mode() Mode {
	if s.IsQuerying {
		return ModeActive
	}
	return ModeIdle
}

// Visible is the list shown inside the open search bar: matches while
// querying, history otherwise.
func (s State) Visible() []domain.Entity {
	if s.IsQuerying {
		return s.Results
	}
	return s.History
}

// HasSelection reports whether an entity is selected
func (s State) HasSelection() bool {
	return s.Selected != nil
}

// copy returns a snapshot whose slices and selection don't alias s
func (s State) copy() State {
	out := s
	out.Results = cloneEntities(s.Results)
	out.History = cloneEntities(s.History)
	if s.Selected != nil {
		sel := s.Selected.Clone()
		out.Selected = &sel
	}
	return out
}

func cloneEntities(in []domain.Entity) []domain.Entity {
	out := make([]domain.Entity, len(in))
	for i, e := range in {
		out[i] = e.Clone()
	}
	return out
}
