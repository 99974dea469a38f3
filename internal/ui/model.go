package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"dexbar/internal/config"
	"dexbar/internal/search"
	"dexbar/internal/ui/views"
)

const placeholder = "Search by name"

// Model is the Bubble Tea model for the search screen. It holds view
// state only; search state lives in the store and arrives as snapshots.
type Model struct {
	store  *search.Store
	config *config.Config
	logger *log.Logger

	snapshot search.State
	updates  <-chan search.State
	stop     func()

	input      textinput.Model
	active     bool // search bar open
	cursor     int  // dropdown row
	cardOffset int
	showHelp   bool
	status     string

	width  int
	height int
	keys   keyMap
	help   help.Model

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	helpOps      *HelpOps
	paused       bool

	program *tea.Program
}

// NewModel creates a new UI model bound to store
func NewModel(store *search.Store, cfg *config.Config, logger *log.Logger) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = log.Default()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 64

	updates, stop := store.Subscribe(8)

	return &Model{
		store:        store,
		config:       cfg,
		logger:       logger.WithPrefix("ui"),
		snapshot:     store.State(),
		updates:      updates,
		stop:         stop,
		input:        ti,
		keys:         newKeyMap(),
		help:         help.New(),
		renderer:     views.NewRenderer(cfg.UISettings.ShowImageRefs, cfg.UISettings.ShowCategories),
		helpRenderer: NewHelpRenderer(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Close releases the store subscription
func (m *Model) Close() {
	if m.stop != nil {
		m.stop()
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForState())
}

// waitForState blocks on the subscription until the next snapshot
func (m *Model) waitForState() tea.Cmd {
	updates := m.updates
	return func() tea.Msg {
		st, ok := <-updates
		if !ok {
			return nil
		}
		return stateMsg{state: st}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(10, msg.Width-12)
		return m, nil

	case stateMsg:
		m.applySnapshot(msg.state)
		return m, m.waitForState()

	case pauseRenderingMsg:
		m.paused = true
		return m, nil

	case resumeRenderingMsg:
		m.paused = false
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			m.logger.Warn("help pager failed, falling back to popup", "err", msg.err)
			m.showHelp = true
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, m.quit()
	}

	if m.showHelp {
		switch msg.String() {
		case "esc", "q", "?":
			m.showHelp = false
		}
		return m, nil
	}

	if m.active {
		return m.handleBarKey(msg)
	}
	return m.handleListKey(msg)
}

// handleBarKey handles keys while the search bar is open
func (m *Model) handleBarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.dispatch(search.Back{})
		m.closeBar()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		if m.snapshot.IsQuerying {
			m.dispatch(search.Cancel{})
		}
		m.closeBar()
		return m, nil

	case key.Matches(msg, m.keys.Select):
		visible := m.snapshot.Visible()
		if m.cursor >= 0 && m.cursor < len(visible) {
			m.dispatch(search.Select{Entity: visible[m.cursor]})
		}
		m.closeBar()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.snapshot.Visible())-1 {
			m.cursor++
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.dispatch(search.QueryChange{Query: after})
	}
	return m, cmd
}

// handleListKey handles keys while browsing the card list
func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()

	case key.Matches(msg, m.keys.Open):
		return m, m.openBar()

	case key.Matches(msg, m.keys.Back):
		if m.snapshot.HasSelection() {
			m.dispatch(search.Back{})
		}
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		if m.snapshot.IsQuerying {
			m.dispatch(search.Cancel{})
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.scrollCards(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.scrollCards(1)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.scrollCards(-m.pageSize())
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.scrollCards(m.pageSize())
		return m, nil

	case key.Matches(msg, m.keys.Help):
		return m, m.showHelpPager()
	}
	return m, nil
}

func (m *Model) dispatch(intent search.Intent) {
	st := m.store.Dispatch(intent)
	m.applySnapshot(st)

	switch in := intent.(type) {
	case search.Select:
		m.status = fmt.Sprintf("Selected %s (%d in history)", in.Entity.DisplayName, len(st.History))
	case search.Cancel:
		m.status = "Search cleared"
	case search.QueryChange:
		m.status = ""
	}
}

// applySnapshot takes st unless a newer snapshot is already shown
func (m *Model) applySnapshot(st search.State) {
	if st.Seq < m.snapshot.Seq {
		return
	}
	m.snapshot = st

	if m.input.Value() != st.Query {
		m.input.SetValue(st.Query)
		m.input.CursorEnd()
	}

	if n := len(st.Visible()); m.cursor >= n {
		m.cursor = max(0, n-1)
	}
	if m.cardOffset >= len(st.Results) {
		m.cardOffset = max(0, len(st.Results)-1)
	}
}

func (m *Model) openBar() tea.Cmd {
	m.active = true
	m.cursor = 0
	return m.input.Focus()
}

func (m *Model) closeBar() {
	m.active = false
	m.cursor = 0
	m.cardOffset = 0
	m.input.Blur()
}

func (m *Model) scrollCards(delta int) {
	m.cardOffset += delta
	if last := len(m.snapshot.Results) - 1; m.cardOffset > last {
		m.cardOffset = last
	}
	if m.cardOffset < 0 {
		m.cardOffset = 0
	}
}

func (m *Model) pageSize() int {
	// Cards are about five lines tall
	return max(1, (m.height-8)/5)
}

func (m *Model) quit() tea.Cmd {
	m.Close()
	return tea.Quit
}

// showHelpPager returns a command that shows help using ov pager
func (m *Model) showHelpPager() tea.Cmd {
	content := m.helpRenderer.RenderHelpContent()
	program := m.program
	ops := m.helpOps
	return func() tea.Msg {
		if program == nil {
			return helpPagerMsg{err: errNoProgram}
		}
		program.Send(pauseRenderingMsg{})
		err := ops.ShowHelpInPager(content)
		program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// View renders the model
func (m *Model) View() string {
	if m.paused {
		return ""
	}

	var helpKeys help.KeyMap = listKeys{m.keys}
	if m.active {
		helpKeys = barKeys{m.keys}
	}

	return m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Snapshot:      m.snapshot,
		Input:         m.input.View(),
		Active:        m.active,
		Cursor:        m.cursor,
		CardOffset:    m.cardOffset,
		ShowHelp:      m.showHelp,
		HelpContent:   m.helpRenderer.RenderHelpContent(),
		StatusMessage: m.status,
		HelpModel:     m.help,
		HelpKeys:      helpKeys,
	})
}

// Snapshot returns the snapshot currently rendered
func (m *Model) Snapshot() search.State {
	return m.snapshot
}

// Active reports whether the search bar is open
func (m *Model) Active() bool {
	return m.active
}
