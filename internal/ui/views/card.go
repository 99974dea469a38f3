package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dexbar/internal/domain"
)

// CardRenderer handles rendering of entity cards
type CardRenderer struct {
	styles         *Styles
	showImageRefs  bool
	showCategories bool
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles, showImageRefs, showCategories bool) *CardRenderer {
	return &CardRenderer{
		styles:         styles,
		showImageRefs:  showImageRefs,
		showCategories: showCategories,
	}
}

// RenderCard renders one entity as a bordered card
func (r *CardRenderer) RenderCard(e domain.Entity, isSelected bool, width int) string {
	var b strings.Builder

	b.WriteString(r.styles.Dim.Render(formatNumber(e.ID)))
	b.WriteString(" ")
	b.WriteString(r.styles.CardName.Render(e.DisplayName))
	b.WriteString(" ")
	b.WriteString(r.styles.Dim.Render(e.PhoneticName))

	if r.showImageRefs && e.ImageRef != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render(e.ImageRef))
	}

	if r.showCategories && len(e.Categories) > 0 {
		b.WriteString("\n")
		b.WriteString(r.RenderChips(e.Categories))
	}

	style := r.styles.Card
	if isSelected {
		style = r.styles.CardActive
	}
	if width > 4 {
		// Width excludes the border
		style = style.Width(width - 2)
	}
	return style.Render(b.String())
}

// RenderChips renders category labels as colored chips
func (r *CardRenderer) RenderChips(categories []domain.Category) string {
	chips := make([]string, 0, len(categories))
	for _, c := range categories {
		chips = append(chips, r.styles.ChipStyle(c.Color()).Render(c.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

// RenderCardList renders cards top to bottom starting at offset, stopping
// before the rendered list would exceed maxHeight lines.
func (r *CardRenderer) RenderCardList(entities []domain.Entity, selectedID, offset, width, maxHeight int) (string, int) {
	if offset < 0 {
		offset = 0
	}
	var cards []string
	used := 0
	shown := 0
	for i := offset; i < len(entities); i++ {
		card := r.RenderCard(entities[i], entities[i].ID == selectedID, width)
		h := lipgloss.Height(card)
		if maxHeight > 0 && used+h > maxHeight && shown > 0 {
			break
		}
		cards = append(cards, card)
		used += h
		shown++
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...), shown
}

func formatNumber(id int) string {
	return fmt.Sprintf("No.%03d", id)
}
