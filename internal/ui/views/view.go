package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"dexbar/internal/search"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Snapshot      search.State
	Input         string // rendered text input
	Active        bool   // search bar open
	Cursor        int    // dropdown cursor
	CardOffset    int    // first card shown below the bar
	ShowHelp      bool
	HelpContent   string
	StatusMessage string
	HelpModel     help.Model
	HelpKeys      help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	barRender   *SearchBarRenderer
	cardRender  *CardRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showImageRefs, showCategories bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		barRender:   NewSearchBarRenderer(styles),
		cardRender:  NewCardRenderer(styles, showImageRefs, showCategories),
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles returns the styles used by the renderer
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.ShowHelp {
		return r.popupRender.RenderPopup(state.HelpContent, state.Width, state.Height)
	}

	width := state.Width
	if width <= 0 {
		width = 80
	}

	var sections []string
	sections = append(sections, r.renderTitle(state.Snapshot, width))
	sections = append(sections, r.barRender.RenderBar(state.Input, state.Active, state.Snapshot.IsQuerying, width))

	footer := r.renderFooter(state)
	used := lipgloss.Height(strings.Join(sections, "\n")) + lipgloss.Height(footer)
	remaining := state.Height - used
	if state.Height <= 0 {
		remaining = 0 // unknown size, render everything
	}

	if state.Active {
		maxRows := 0
		if remaining > 0 {
			maxRows = max(1, remaining-3) // border plus scroll markers
		}
		visible := state.Snapshot.Visible()
		sections = append(sections, r.barRender.RenderDropdown(visible, state.Cursor, state.Snapshot.IsQuerying, width, maxRows))
	} else {
		sections = append(sections, r.renderCards(state, width, remaining))
	}

	sections = append(sections, footer)
	return strings.Join(sections, "\n")
}

func (r *Renderer) renderTitle(st search.State, width int) string {
	logo := r.styles.Title.Render("dexbar")

	var right string
	switch {
	case st.Selected != nil:
		right = r.styles.Highlight.Render(fmt.Sprintf("● %s", st.Selected.DisplayName))
	case st.IsQuerying:
		right = r.styles.Dim.Render(fmt.Sprintf("%d found", len(st.Results)))
	}
	if right == "" {
		return logo
	}

	gap := width - lipgloss.Width(logo) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	// Title has a bottom margin; keep the right side on its first line
	lines := strings.SplitN(logo, "\n", 2)
	lines[0] += strings.Repeat(" ", gap) + right
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderCards(state ViewState, width, maxHeight int) string {
	results := state.Snapshot.Results
	if len(results) == 0 {
		return r.styles.Empty.Render(NotFoundText)
	}

	selectedID := 0
	if state.Snapshot.Selected != nil {
		selectedID = state.Snapshot.Selected.ID
	}

	reserve := 0
	if state.CardOffset > 0 {
		reserve++
	}
	list, shown := r.cardRender.RenderCardList(results, selectedID, state.CardOffset, width, maxHeight-reserve-1)

	var b strings.Builder
	if state.CardOffset > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", state.CardOffset)))
		b.WriteString("\n")
	}
	b.WriteString(list)
	if below := len(results) - state.CardOffset - shown; below > 0 {
		b.WriteString("\n")
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", below)))
	}
	return b.String()
}

func (r *Renderer) renderFooter(state ViewState) string {
	var parts []string
	if state.StatusMessage != "" {
		parts = append(parts, r.styles.Status.Render(state.StatusMessage))
	}
	if state.HelpKeys != nil {
		parts = append(parts, r.styles.Help.Render(state.HelpModel.View(state.HelpKeys)))
	}
	return strings.Join(parts, "\n")
}
