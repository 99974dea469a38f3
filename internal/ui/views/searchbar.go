package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dexbar/internal/domain"
)

// Icons used by the search bar
const (
	IconSearch  = "⌕"
	IconBack    = "←"
	IconCancel  = "✕"
	IconHistory = "↺"
)

// Messages shown when the dropdown has nothing to list
const (
	NotFoundText  = "Not found"
	NoHistoryText = "No search history"
)

// SearchBarRenderer renders the search bar and its dropdown
type SearchBarRenderer struct {
	styles *Styles
}

// NewSearchBarRenderer creates a new search bar renderer
func NewSearchBarRenderer(styles *Styles) *SearchBarRenderer {
	return &SearchBarRenderer{styles: styles}
}

// RenderBar renders the bar line. input is the already rendered text input.
func (r *SearchBarRenderer) RenderBar(input string, active, querying bool, width int) string {
	leading := IconSearch
	style := r.styles.Bar
	if active {
		leading = IconBack
		style = r.styles.BarActive
	}

	line := r.styles.BarIcon.Render(leading) + " " + input
	if querying {
		trailing := r.styles.BarIcon.Render(IconCancel)
		if width > 4 {
			inner := width - 4 // border and padding
			gap := inner - lipgloss.Width(line) - lipgloss.Width(trailing)
			if gap < 1 {
				gap = 1
			}
			line += strings.Repeat(" ", gap) + trailing
		} else {
			line += " " + trailing
		}
	}

	if width > 2 {
		style = style.Width(width - 2)
	}
	return style.Render(line)
}

// RenderDropdown renders the list shown under an open bar. Rows show a
// search icon while querying and a history icon otherwise.
func (r *SearchBarRenderer) RenderDropdown(items []domain.Entity, cursor int, querying bool, width, maxRows int) string {
	style := r.styles.Dropdown
	if width > 2 {
		style = style.Width(width - 2)
	}

	if len(items) == 0 {
		text := NoHistoryText
		if querying {
			text = NotFoundText
		}
		return style.Render(r.styles.Empty.Render(text))
	}

	icon := IconHistory
	if querying {
		icon = IconSearch
	}

	start, end := window(len(items), cursor, maxRows)
	rows := make([]string, 0, end-start+2)
	if start > 0 {
		rows = append(rows, r.styles.Scroll.Render("↑ more"))
	}
	for i := start; i < end; i++ {
		row := icon + "  " + items[i].DisplayName
		if i == cursor {
			rows = append(rows, r.styles.RowCursor.Render(row))
		} else {
			rows = append(rows, r.styles.Row.Render(row))
		}
	}
	if end < len(items) {
		rows = append(rows, r.styles.Scroll.Render("↓ more"))
	}
	return style.Render(strings.Join(rows, "\n"))
}

// window returns the visible [start,end) range that keeps cursor on screen
func window(total, cursor, maxRows int) (int, int) {
	if maxRows <= 0 || total <= maxRows {
		return 0, total
	}
	start := cursor - maxRows + 1
	if start < 0 {
		start = 0
	}
	end := start + maxRows
	if end > total {
		end = total
		start = end - maxRows
	}
	return start, end
}
