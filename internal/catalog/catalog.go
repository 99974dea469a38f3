package catalog

import (
	"dexbar/internal/domain"
)

// Catalog is an ordered, read-only list of entities. Every entity
// handed out is a copy.
type Catalog struct {
	entities []domain.Entity
	byID     map[int]int // id -> index
}

// New creates a catalog that keeps the given order
func New(entities ...domain.Entity) *Catalog {
	c := &Catalog{
		entities: make([]domain.Entity, len(entities)),
		byID:     make(map[int]int, len(entities)),
	}
	for i, e := range entities {
		c.entities[i] = e.Clone()
		if _, dup := c.byID[e.ID]; !dup {
			c.byID[e.ID] = i
		}
	}
	return c
}

// All returns a copy of every entity in catalog order
func (c *Catalog) All() []domain.Entity {
	out := make([]domain.Entity, len(c.entities))
	for i, e := range c.entities {
		out[i] = e.Clone()
	}
	return out
}

// Len returns the number of entities
func (c *Catalog) Len() int {
	return len(c.entities)
}

// ByID looks up an entity by its id
func (c *Catalog) ByID(id int) (domain.Entity, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Entity{}, false
	}
	return c.entities[i].Clone(), true
}

// Each calls fn for every entity in order until fn returns false
func (c *Catalog) Each(fn func(domain.Entity) bool) {
	for _, e := range c.entities {
		if !fn(e.Clone()) {
			return
		}
	}
}
