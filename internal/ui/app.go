package ui

import (
	"context"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwhitfield/sleuth/internal/finder"
	"github.com/mwhitfield/sleuth/internal/prefs"
	"github.com/mwhitfield/sleuth/internal/session"
)

// focusArea identifies which part of the screen receives keys.
type focusArea int

const (
	focusQuery focusArea = iota
	focusFilters
	focusResults
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    finder.EvidenceSearcher
	Session   *session.Store
	Filters   *session.FilterSet
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    finder.EvidenceSearcher
	session   *session.Store
	filters   *session.FilterSet
	prefsPath string

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool
	focus  focusArea

	// Query input
	queryInput textinput.Model

	// Loading indicators
	spin    spinner.Model
	rotator statusRotator

	// Source-type catalog (fetched once at startup; empty on load failure)
	catalog      []finder.SourceTypeOption
	filterCursor int

	// Results
	resultsViewport viewport.Model
	selectedCard    int
	cardOffsets     []int // first content line of each card, for scroll-to-selection

	// Startup health probe
	healthKnown  bool
	apiReachable bool

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	filters := opts.Filters
	if filters == nil {
		filters = session.NewFilterSet()
	}

	input := textinput.New()
	input.Placeholder = "Enter a claim or question..."
	input.Prompt = "> "
	input.Focus()

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))

	return Model{
		ctx:        ctx,
		client:     opts.Client,
		session:    opts.Session,
		filters:    filters,
		prefsPath:  prefsPath,
		theme:      GetTheme(themeName),
		queryInput: input,
		spin:       spin,
	}
}

// Init implements tea.Model. The source-type catalog is fetched exactly once
// here; it is never re-fetched on search.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		textinput.Blink,
		loadSourceTypesCmd(m.ctx, m.client),
		checkHealthCmd(m.ctx, m.client),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.resultsViewport = viewport.New(msg.Width, m.contentHeight())
		}
		m.ready = true
		m.resultsViewport.Width = msg.Width
		m.resultsViewport.Height = m.contentHeight() - 1 // count line above
		m.refreshResults()
		return m, nil

	case statusTickMsg:
		// The tick chain re-schedules only while a search is in flight, so
		// leaving Loading for any reason drops the timer.
		if m.session.Loading() {
			m.rotator.Advance()
			return m, statusTickCmd()
		}
		m.rotator.Stop()
		return m, nil

	case spinner.TickMsg:
		if !m.session.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case healthMsg:
		m.healthKnown = true
		m.apiReachable = msg.ok
		if msg.err != nil {
			log.Printf("health probe failed: %v", msg.err)
		}
		return m, nil

	case sourceTypesMsg:
		if msg.err != nil {
			// Silent to the user: the filter row is simply omitted and
			// searching proceeds unfiltered.
			log.Printf("source type catalog load failed: %v", msg.err)
			return m, nil
		}
		m.catalog = msg.options
		return m, nil

	case searchDoneMsg:
		if !m.session.Complete(msg.seq, msg.result, msg.err) {
			// A newer submission superseded this request.
			return m, nil
		}
		m.rotator.Stop()
		m.selectedCard = 0
		m.refreshResults()
		m.resultsViewport.GotoTop()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "ctrl+t":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.refreshResults()
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case "f1":
		m.showHelp = true
		return m, nil

	case "tab":
		m.cycleFocus(1)
		return m, nil

	case "shift+tab":
		m.cycleFocus(-1)
		return m, nil

	case "esc":
		m.setFocus(focusQuery)
		return m, nil
	}

	switch m.focus {
	case focusQuery:
		return m.handleQueryKey(msg)
	case focusFilters:
		return m.handleFilterKey(msg)
	case focusResults:
		return m.handleResultsKey(msg)
	}

	return m, nil
}

// handleQueryKey processes keys while the query input is focused.
func (m Model) handleQueryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		return m.submit()
	}
	var cmd tea.Cmd
	m.queryInput, cmd = m.queryInput.Update(msg)
	return m, cmd
}

// handleFilterKey processes keys while the filter row is focused.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.catalog) == 0 {
		m.setFocus(focusQuery)
		return m, nil
	}

	switch msg.String() {
	case "left", "h":
		if m.filterCursor > 0 {
			m.filterCursor--
		}
	case "right", "l":
		if m.filterCursor < len(m.catalog)-1 {
			m.filterCursor++
		}
	case " ", "enter":
		// Toggling never touches an in-flight request; it shapes the next
		// submission only.
		m.filters.Toggle(m.catalog[m.filterCursor].Value)
	case "?":
		m.showHelp = true
	}
	return m, nil
}

// handleResultsKey processes keys while the results list is focused.
func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cards := m.cards()

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil
	case "j", "down":
		if m.selectedCard < len(cards)-1 {
			m.selectedCard++
			m.refreshResults()
			m.scrollToSelected()
		}
		return m, nil
	case "k", "up":
		if m.selectedCard > 0 {
			m.selectedCard--
			m.refreshResults()
			m.scrollToSelected()
		}
		return m, nil
	case "g", "home":
		m.selectedCard = 0
		m.refreshResults()
		m.resultsViewport.GotoTop()
		return m, nil
	case "G", "end":
		if len(cards) > 0 {
			m.selectedCard = len(cards) - 1
		}
		m.refreshResults()
		m.resultsViewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.resultsViewport, cmd = m.resultsViewport.Update(msg)
	return m, cmd
}

// submit runs the search for the current query text and filter selection.
// Empty and whitespace-only queries are rejected by the session store before
// any request is issued.
func (m Model) submit() (tea.Model, tea.Cmd) {
	seq, ok := m.session.Begin(m.queryInput.Value())
	if !ok {
		return m, nil
	}

	req := finder.SearchRequest{
		Query:       m.session.State().Query,
		SourceTypes: m.filters.Values(),
	}

	cmds := []tea.Cmd{searchCmd(m.ctx, m.client, seq, req)}
	if !m.rotator.Running() {
		cmds = append(cmds, statusTickCmd(), m.spin.Tick)
	}
	// Re-entering Loading restarts the rotation at the first message.
	m.rotator.Start()

	return m, tea.Batch(cmds...)
}

// cycleFocus moves focus by delta through query → filters → results,
// skipping the filter row when the catalog is empty.
func (m *Model) cycleFocus(delta int) {
	order := []focusArea{focusQuery, focusResults}
	if len(m.catalog) > 0 {
		order = []focusArea{focusQuery, focusFilters, focusResults}
	}

	current := 0
	for i, area := range order {
		if area == m.focus {
			current = i
			break
		}
	}
	next := order[(current+delta+len(order))%len(order)]
	m.setFocus(next)
}

func (m *Model) setFocus(area focusArea) {
	m.focus = area
	if area == focusQuery {
		m.queryInput.Focus()
	} else {
		m.queryInput.Blur()
	}
}

// cards returns the evidence cards of the current result, if any.
func (m Model) cards() []finder.EvidenceCard {
	state := m.session.State()
	if state.Result == nil {
		return nil
	}
	return state.Result.EvidenceCards
}

// contentHeight is the vertical space left for the results area.
func (m Model) contentHeight() int {
	// header + query box (3 rows) + footer
	h := m.height - 1 - 3 - 1
	if len(m.catalog) > 0 {
		h-- // filter row
	}
	if h < 1 {
		h = 1
	}
	return h
}

// scrollToSelected keeps the selected card visible in the viewport.
func (m *Model) scrollToSelected() {
	if m.selectedCard < 0 || m.selectedCard >= len(m.cardOffsets) {
		return
	}
	top := m.cardOffsets[m.selectedCard]
	if top < m.resultsViewport.YOffset ||
		top >= m.resultsViewport.YOffset+m.resultsViewport.Height {
		m.resultsViewport.SetYOffset(top)
	}
}

// refreshResults re-renders the card list into the viewport.
func (m *Model) refreshResults() {
	if !m.ready {
		return
	}
	content, offsets := m.renderCardList(m.width)
	m.cardOffsets = offsets
	m.resultsViewport.SetContent(content)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	sections := []string{
		m.renderHeader(),
		m.renderQueryBox(),
	}
	if len(m.catalog) > 0 {
		sections = append(sections, m.renderFilterRow())
	}
	sections = append(sections, m.renderContent(), m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderContent renders the area below the query box for the current phase.
func (m Model) renderContent() string {
	styles := m.theme.Styles()
	state := m.session.State()
	height := m.contentHeight()

	switch state.Phase {
	case session.PhaseLoading:
		status := m.spin.View() + " " + styles.AccentText.Render(m.rotator.Current())
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, status)

	case session.PhaseError:
		banner := styles.DangerText.Render(state.ErrMessage)
		hint := styles.MutedText.Render("Adjust the query and press enter to retry.")
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center, banner, "", hint))

	case session.PhaseSuccess:
		return m.renderResults(height)

	default:
		return m.renderWelcome(height)
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Session == nil {
		return fmt.Errorf("ui requires a session store")
	}
	if opts.Client == nil {
		return fmt.Errorf("ui requires an api client")
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
