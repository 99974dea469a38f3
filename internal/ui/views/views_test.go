package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"dexbar/internal/catalog"
	"dexbar/internal/domain"
	"dexbar/internal/search"
)

func sampleEntity(id int) domain.Entity {
	e, _ := catalog.Sample().ByID(id)
	return e
}

func TestRenderCardShowsNameAndChips(t *testing.T) {
	r := NewCardRenderer(NewStyles(), true, true)
	out := ansi.Strip(r.RenderCard(sampleEntity(6), false, 100))

	assert.Contains(t, out, "No.006")
	assert.Contains(t, out, "リザードン")
	assert.Contains(t, out, "りざーどん")
	assert.Contains(t, out, "006.png")
	assert.Contains(t, out, "ほのお")
	assert.Contains(t, out, "ひこう")
}

func TestRenderCardHonoursSettings(t *testing.T) {
	r := NewCardRenderer(NewStyles(), false, false)
	out := ansi.Strip(r.RenderCard(sampleEntity(1), false, 100))

	assert.Contains(t, out, "フシギダネ")
	assert.NotContains(t, out, "001.png")
	assert.NotContains(t, out, "くさ")
}

func TestRenderCardListRespectsHeight(t *testing.T) {
	r := NewCardRenderer(NewStyles(), true, true)
	all := catalog.Sample().All()

	_, shownAll := r.RenderCardList(all, 0, 0, 100, 0)
	assert.Equal(t, 9, shownAll)

	// Each card is five lines tall with border, image line and chips
	out, shown := r.RenderCardList(all, 0, 2, 100, 10)
	assert.Equal(t, 2, shown)
	plain := ansi.Strip(out)
	assert.Contains(t, plain, "フシギバナ")
	assert.Contains(t, plain, "ヒトカゲ")
	assert.NotContains(t, plain, "リザード")
}

func TestRenderDropdownEmptyTexts(t *testing.T) {
	r := NewSearchBarRenderer(NewStyles())

	assert.Contains(t, ansi.Strip(r.RenderDropdown(nil, 0, true, 40, 0)), NotFoundText)
	assert.Contains(t, ansi.Strip(r.RenderDropdown(nil, 0, false, 40, 0)), NoHistoryText)
}

func TestRenderDropdownIcons(t *testing.T) {
	r := NewSearchBarRenderer(NewStyles())
	items := []domain.Entity{sampleEntity(5), sampleEntity(6)}

	querying := ansi.Strip(r.RenderDropdown(items, 0, true, 40, 0))
	assert.Contains(t, querying, IconSearch+"  リザード")
	assert.NotContains(t, querying, IconHistory)

	history := ansi.Strip(r.RenderDropdown(items, 1, false, 40, 0))
	assert.Contains(t, history, IconHistory+"  リザードン")
}

func TestRenderDropdownWindowFollowsCursor(t *testing.T) {
	r := NewSearchBarRenderer(NewStyles())
	all := catalog.Sample().All()

	out := ansi.Strip(r.RenderDropdown(all, 8, true, 40, 3))
	assert.Contains(t, out, "カメックス")
	assert.Contains(t, out, "↑ more")
	assert.NotContains(t, out, "フシギダネ")
}

func TestWindow(t *testing.T) {
	tests := []struct {
		total, cursor, max int
		start, end         int
	}{
		{5, 0, 0, 0, 5},
		{5, 4, 10, 0, 5},
		{10, 0, 3, 0, 3},
		{10, 5, 3, 3, 6},
		{10, 9, 3, 7, 10},
	}
	for _, tt := range tests {
		start, end := window(tt.total, tt.cursor, tt.max)
		assert.Equal(t, tt.start, start)
		assert.Equal(t, tt.end, end)
	}
}

func TestRenderBarIcons(t *testing.T) {
	r := NewSearchBarRenderer(NewStyles())

	idle := ansi.Strip(r.RenderBar("", false, false, 40))
	assert.Contains(t, idle, IconSearch)
	assert.NotContains(t, idle, IconCancel)

	active := ansi.Strip(r.RenderBar("リザ", true, true, 40))
	assert.Contains(t, active, IconBack)
	assert.Contains(t, active, IconCancel)
	assert.Contains(t, active, "リザ")
}

func TestRenderShowsDropdownOnlyWhenActive(t *testing.T) {
	r := NewRenderer(true, true)
	st := search.State{
		Query:      "リザ",
		IsQuerying: true,
		Results:    []domain.Entity{sampleEntity(5), sampleEntity(6)},
	}

	open := ansi.Strip(r.Render(ViewState{Width: 100, Height: 40, Snapshot: st, Active: true}))
	assert.Contains(t, open, IconSearch+"  リザード")
	assert.Contains(t, open, "2 found")

	closed := ansi.Strip(r.Render(ViewState{Width: 100, Height: 40, Snapshot: st}))
	assert.NotContains(t, closed, IconSearch+"  リザード")
	assert.Contains(t, closed, "No.005")
}

func TestRenderHelpPopup(t *testing.T) {
	r := NewRenderer(true, true)
	out := r.Render(ViewState{Width: 80, Height: 30, ShowHelp: true, HelpContent: "Keys"})
	assert.True(t, strings.Contains(ansi.Strip(out), "Keys"))
}
