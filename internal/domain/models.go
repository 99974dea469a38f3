package domain

import "strings"

// Category is a fixed tag attached to an entity
type Category int

const (
	CategoryFire Category = iota
	CategoryWater
	CategoryGrass
	CategoryPoison
	CategoryFlying
)

type categoryInfo struct {
	tag   string
	label string
	color string // hex RGB
}

var categories = [...]categoryInfo{
	CategoryFire:   {tag: "FIRE", label: "ほのお", color: "#F44336"},
	CategoryWater:  {tag: "WATER", label: "みず", color: "#2196F3"},
	CategoryGrass:  {tag: "GRASS", label: "くさ", color: "#4CAF50"},
	CategoryPoison: {tag: "POISON", label: "どく", color: "#9C27B0"},
	CategoryFlying: {tag: "FLYING", label: "ひこう", color: "#00BCD4"},
}

// Categories returns every known category in declaration order
func Categories() []Category {
	out := make([]Category, len(categories))
	for i := range categories {
		out[i] = Category(i)
	}
	return out
}

func (c Category) info() (categoryInfo, bool) {
	if c < 0 || int(c) >= len(categories) {
		return categoryInfo{}, false
	}
	return categories[c], true
}

// String returns the upper-case tag, e.g. "FIRE"
func (c Category) String() string {
	if info, ok := c.info(); ok {
		return info.tag
	}
	return "UNKNOWN"
}

// Label returns the display label shown on category chips
func (c Category) Label() string {
	info, _ := c.info()
	return info.label
}

// Color returns the chip color as a hex string
func (c Category) Color() string {
	info, _ := c.info()
	return info.color
}

// ParseCategory maps a tag (case-insensitive) back to its category
func ParseCategory(tag string) (Category, bool) {
	for i, info := range categories {
		if strings.EqualFold(info.tag, tag) {
			return Category(i), true
		}
	}
	return 0, false
}

// Entity is a catalog item. Values are never mutated after construction.
type Entity struct {
	ID           int
	DisplayName  string
	PhoneticName string // kana reading, secondary match key
	Categories   []Category
	ImageRef     string // thumbnail URI, resolved by the renderer
}

// Equal reports whether two entities share the same identity
func (e Entity) Equal(other Entity) bool {
	return e.ID == other.ID
}

// Clone returns a copy that shares no slices with e
func (e Entity) Clone() Entity {
	if e.Categories != nil {
		e.Categories = append([]Category(nil), e.Categories...)
	}
	return e
}

// CategoryLabels returns the display labels of the entity's categories
func (e Entity) CategoryLabels() []string {
	labels := make([]string, 0, len(e.Categories))
	for _, c := range e.Categories {
		labels = append(labels, c.Label())
	}
	return labels
}
