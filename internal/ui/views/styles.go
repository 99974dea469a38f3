package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Bar         lipgloss.Style
	BarActive   lipgloss.Style
	BarIcon     lipgloss.Style
	Placeholder lipgloss.Style
	Dropdown    lipgloss.Style
	Row         lipgloss.Style
	RowCursor   lipgloss.Style
	Empty       lipgloss.Style
	Card        lipgloss.Style
	CardActive  lipgloss.Style
	CardName    lipgloss.Style
	Dim         lipgloss.Style
	Chip        lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	HelpBox     lipgloss.Style
	Scroll      lipgloss.Style
	Highlight   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Bar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		BarActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		BarIcon:     lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Placeholder: lipgloss.NewStyle().Faint(true),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, true, true).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Row:       lipgloss.NewStyle(),
		RowCursor: lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true),
		Empty:     lipgloss.NewStyle().Faint(true).Italic(true).Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		CardActive: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("226")).
			Padding(0, 1),
		CardName: lipgloss.NewStyle().Bold(true),
		Dim:      lipgloss.NewStyle().Faint(true),
		Chip: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1).
			MarginRight(1),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2),
		Scroll:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	}
}

// ChipStyle returns the chip style filled with a category color
func (s *Styles) ChipStyle(hex string) lipgloss.Style {
	if hex == "" {
		return s.Chip.Background(lipgloss.Color("241"))
	}
	return s.Chip.Background(lipgloss.Color(hex))
}
