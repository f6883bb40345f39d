package tui

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/collegelist/internal/college"
	"github.com/rshade/collegelist/internal/listing"
	listview "github.com/rshade/collegelist/internal/tui/list"
)

// revealMoreMsg asks the model to reveal the next batch. It is emitted once
// the selection gets close to the last visible row.
type revealMoreMsg struct{}

// sortKeys maps number keys to the sortable columns in header order.
//
//nolint:gochecknoglobals // Key table.
var sortKeys = map[string]listing.Field{
	"1": listing.FieldRank,
	"2": listing.FieldFees,
	"3": listing.FieldPlacement,
	"4": listing.FieldUserReviews,
	"5": listing.FieldRanking,
}

// BrowserModel is the Bubble Tea model of the college browser. It forwards
// search, header and scroll events to a listing.Pipeline and renders the
// pipeline's visible rows.
type BrowserModel struct {
	state    ViewState
	pipeline *listing.Pipeline
	rows     []college.Record

	virtualList *listview.VirtualListModel[college.Record]
	textInput   textinput.Model
	loading     *LoadingState

	width           int
	height          int
	showFilter      bool
	scrollThreshold int

	// pending is set while a reveal request is in flight.
	pending bool

	// selectedTags holds the review tag index chosen per college.
	selectedTags map[college.ID]int
}

// NewBrowserModel creates a browser over p. A reveal is requested when the
// selection is within scrollThreshold rows of the last visible row.
func NewBrowserModel(p *listing.Pipeline, scrollThreshold int) *BrowserModel {
	m := &BrowserModel{
		state:           ViewStateList,
		pipeline:        p,
		textInput:       newSearchInput(),
		loading:         NewLoadingState(),
		width:           defaultWidth,
		height:          defaultHeight,
		scrollThreshold: max(scrollThreshold, 0),
		selectedTags:    make(map[college.ID]int),
	}
	m.rows = p.Visible()
	m.virtualList = listview.NewVirtualListModel(m.rows, m.listHeight(), m.width, m.renderRow)
	return m
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search by college name"
	ti.CharLimit = filterInputCharLimit
	ti.Width = filterInputWidth
	return ti
}

// Run starts the browser on the given terminal streams and blocks until the
// user quits or ctx is cancelled.
func Run(ctx context.Context, p *listing.Pipeline, scrollThreshold int, in io.Reader, out io.Writer) error {
	program := tea.NewProgram(
		NewBrowserModel(p, scrollThreshold),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	return err
}

// Init implements tea.Model.
func (m *BrowserModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.virtualList.SetSize(m.listHeight(), m.width)
		return m, nil
	case revealMoreMsg:
		return m, m.handleReveal()
	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		return m, m.loading.Update(msg)
	}

	if m.showFilter {
		return m.handleFilterInput(msg)
	}

	switch m.state {
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail:
		return m.handleDetailUpdate(msg)
	case ViewStateQuitting:
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m *BrowserModel) handleFilterInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEnter, keyEsc:
			m.showFilter = false
			m.textInput.Blur()
			return m, nil
		}
	}

	before := m.textInput.Value()
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	if m.textInput.Value() != before {
		m.pipeline.SetFilterText(m.textInput.Value())
		m.refresh(true)
	}
	return m, cmd
}

func (m *BrowserModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	if field, isSort := sortKeys[key]; isSort {
		// Fields in sortKeys are always sortable.
		_ = m.pipeline.SetSort(field)
		m.refresh(true)
		return m, nil
	}

	switch key {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyEnter:
		if len(m.rows) > 0 {
			m.state = ViewStateDetail
		}
		return m, nil
	case keySlash:
		m.showFilter = true
		return m, m.textInput.Focus()
	case keyEsc:
		if m.textInput.Value() != "" {
			m.textInput.SetValue("")
			m.pipeline.SetFilterText("")
			m.refresh(true)
		}
		return m, nil
	case keyMore:
		return m, m.requestMore()
	}

	before := m.virtualList.Selected()
	_, _ = m.virtualList.Update(keyMsg)
	if m.virtualList.Selected() != before && m.virtualList.RemainingBelow() <= m.scrollThreshold {
		return m, m.requestMore()
	}
	return m, nil
}

func (m *BrowserModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyEsc:
		m.state = ViewStateList
	case keyTag:
		if rec := m.virtualList.GetSelectedItem(); rec != nil {
			m.cycleTag(rec.ID)
		}
	}
	return m, nil
}

// requestMore schedules a reveal unless one is already pending or the
// pipeline is exhausted.
func (m *BrowserModel) requestMore() tea.Cmd {
	if m.pending || m.pipeline.Exhausted() {
		return nil
	}
	m.pending = true
	return tea.Batch(m.loading.Tick, func() tea.Msg { return revealMoreMsg{} })
}

func (m *BrowserModel) handleReveal() tea.Cmd {
	m.pending = false
	if m.pipeline.RequestMore() {
		m.refresh(false)
	}
	return nil
}

// refresh re-reads the visible rows. resetSelection moves the cursor to the
// top, which is used after sort and filter changes.
func (m *BrowserModel) refresh(resetSelection bool) {
	m.rows = m.pipeline.Visible()
	m.virtualList.SetItems(m.rows)
	if resetSelection {
		m.virtualList.SetSelected(0)
	}
}

// cycleTag moves a college's review tag through none -> each tag -> none.
func (m *BrowserModel) cycleTag(id college.ID) {
	next := 0
	if cur, ok := m.selectedTags[id]; ok {
		next = cur + 1
	}
	if next >= len(college.ReviewTags) {
		delete(m.selectedTags, id)
		return
	}
	m.selectedTags[id] = next
}

// SelectedTag returns the review tag chosen for id, or "".
func (m *BrowserModel) SelectedTag(id college.ID) string {
	if i, ok := m.selectedTags[id]; ok {
		return college.ReviewTags[i]
	}
	return ""
}

func (m *BrowserModel) listHeight() int {
	return max(m.height-chromeHeight, minHeight)
}

// State returns the current view state.
func (m *BrowserModel) State() ViewState { return m.state }

// Rows returns the rows currently rendered.
func (m *BrowserModel) Rows() []college.Record { return m.rows }

// Pending reports whether a reveal is in flight.
func (m *BrowserModel) Pending() bool { return m.pending }

// Filtering reports whether the search box has focus.
func (m *BrowserModel) Filtering() bool { return m.showFilter }
