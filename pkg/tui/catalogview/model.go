// Package catalogview is the interactive host for a catalog view: it turns
// key presses and store changes into controller calls and renders the result.
package catalogview

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/hairjourney/pkg/app"
	"tableflip.dev/hairjourney/pkg/catalog"
	"tableflip.dev/hairjourney/pkg/entry"
	"tableflip.dev/hairjourney/pkg/glyph"
	"tableflip.dev/hairjourney/pkg/logger"
	"tableflip.dev/hairjourney/pkg/store"
	"tableflip.dev/hairjourney/pkg/tui/theme"
)

const helpText = "/ search · tab filter · s sort · j/k move · r reload · q quit"

// viewSink receives views from the controller observer. It is written on
// whichever goroutine drives the controller, which after load is Update.
type viewSink struct {
	view catalog.View
}

type timelineLoadedMsg struct {
	timeline *app.Timeline
	sink     *viewSink
	reload   bool
	err      error
}

// Model is the Bubble Tea model for the catalog view.
type Model struct {
	ctx  context.Context
	svc  *app.Service
	open app.OpenOptions

	timeline *app.Timeline
	sink     *viewSink
	entries  []*entry.Entry
	cursor   int

	search    textinput.Model
	searching bool

	width  int
	height int
	status string
	err    error
	theme  theme.Theme

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New constructs a model. Nothing is loaded until Init runs.
func New(ctx context.Context, svc *app.Service, open app.OpenOptions) *Model {
	in := textinput.New()
	in.Prompt = "/ "
	in.Placeholder = "search titles"
	in.CharLimit = 120
	in.SetValue(open.Search)

	return &Model{
		ctx:    ctx,
		svc:    svc,
		open:   open,
		search: in,
		theme:  theme.Default(),
		status: "Loading…",
	}
}

// Run launches the Bubble Tea program.
func Run(ctx context.Context, svc *app.Service, open app.OpenOptions) error {
	m := New(ctx, svc, open)
	defer m.stopWatch()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(false), startWatchCmd(m.ctx, m.svc))
}

// loadCmd opens a fresh timeline off the update loop. The view state is
// carried over in adopt, so input handled meanwhile is not lost.
func (m *Model) loadCmd(reload bool) tea.Cmd {
	svc, ctx, open := m.svc, m.ctx, m.open
	return func() tea.Msg {
		sink := &viewSink{}
		open.Observer = func(v catalog.View) { sink.view = v }
		t, err := svc.Open(ctx, open)
		return timelineLoadedMsg{timeline: t, sink: sink, reload: reload, err: err}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case timelineLoadedMsg:
		m.adopt(msg)
	case watchStartedMsg:
		if msg.err != nil {
			logger.Warn("watch unavailable", "err", msg.err)
			m.status = "Not watching for changes"
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		logger.Debug("store changed", "type", msg.event.Type, "kind", msg.event.Kind)
		cmds = append(cmds, m.reloadCmd())
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
	case tea.KeyPressMsg:
		if cmd, quit := m.handleKey(msg); quit {
			return m, tea.Quit
		} else if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) adopt(msg timelineLoadedMsg) {
	if msg.err != nil {
		m.err = msg.err
		m.status = "ERR: " + msg.err.Error()
		return
	}
	var selected string
	if e := m.Selected(); e != nil {
		selected = e.ID
	}
	if m.timeline != nil {
		if err := msg.timeline.Restore(m.timeline.State()); err != nil {
			m.err = err
			m.status = "ERR: " + err.Error()
			return
		}
	}
	m.timeline = msg.timeline
	m.sink = msg.sink
	m.err = nil
	if m.searching {
		// The input box is what the user is editing right now.
		m.timeline.SetSearch(m.search.Value())
	} else {
		m.search.SetValue(m.timeline.State().Search)
	}
	m.refresh()
	if selected != "" {
		if i := slices.IndexFunc(m.entries, func(e *entry.Entry) bool { return e.ID == selected }); i >= 0 {
			m.cursor = i
		}
	}
	if msg.reload {
		m.status = "Reloaded"
	} else {
		m.status = fmt.Sprintf("%d records", m.timeline.Len())
	}
}

// refresh resolves the last observed view into entries.
func (m *Model) refresh() {
	if m.timeline == nil || m.sink == nil {
		return
	}
	m.entries = m.entries[:0]
	for _, id := range m.sink.view.IDs {
		if e, ok := m.timeline.Lookup(id); ok {
			m.entries = append(m.entries, e)
		}
	}
	m.cursor = min(m.cursor, max(len(m.entries)-1, 0))
}

func (m *Model) reloadCmd() tea.Cmd {
	return m.loadCmd(m.timeline != nil)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	key := msg.String()
	if key == "ctrl+c" {
		return nil, true
	}

	if m.searching {
		switch key {
		case "esc", "enter":
			m.searching = false
			m.search.Blur()
			return nil, false
		}
		prev := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if v := m.search.Value(); v != prev && m.timeline != nil {
			m.timeline.SetSearch(v)
			m.refresh()
		}
		return cmd, false
	}

	if m.timeline == nil {
		if key == "q" {
			return nil, true
		}
		return nil, false
	}

	switch key {
	case "q":
		return nil, true
	case "/":
		m.searching = true
		return m.search.Focus(), false
	case "esc":
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.timeline.SetSearch("")
			m.refresh()
		}
	case "tab":
		m.timeline.SetFilter(stepFilter(m.timeline.State().Filter, 1))
		m.refresh()
	case "shift+tab":
		m.timeline.SetFilter(stepFilter(m.timeline.State().Filter, -1))
		m.refresh()
	case "s", "S":
		step := 1
		if key == "S" {
			step = -1
		}
		if err := m.timeline.SetSort(stepSort(m.timeline.State().Sort, step)); err != nil {
			m.status = "ERR: " + err.Error()
			break
		}
		m.refresh()
	case "j", "down":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = max(len(m.entries)-1, 0)
	case "r":
		m.status = "Reloading…"
		return m.reloadCmd(), false
	}
	return nil, false
}

// Selected returns the record under the cursor, or nil.
func (m *Model) Selected() *entry.Entry {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return nil
	}
	return m.entries[m.cursor]
}

// View implements tea.Model.
func (m *Model) View() (string, *tea.Cursor) {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	searchLine := m.search.View()
	var cursor *tea.Cursor
	if m.searching {
		if c := m.search.Cursor(); c != nil {
			cp := *c
			cp.Y = 1
			cursor = &cp
		}
	} else if m.search.Value() == "" {
		searchLine = m.theme.Footer.Help.Render("press / to search")
	}
	b.WriteString(m.theme.Header.Search.Render(searchLine))
	b.WriteString("\n\n")

	b.WriteString(m.renderList())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String(), cursor
}

func (m *Model) renderHeader() string {
	title := m.theme.Header.Title.Render("hairjourney")
	if m.timeline == nil {
		return title
	}
	st := m.timeline.State()
	state := fmt.Sprintf(" filter %s · sort %s · %d of %d",
		m.theme.Header.Active.Render(st.Filter),
		m.theme.Header.Active.Render(string(st.Sort)),
		len(m.entries), m.timeline.Len())
	return title + m.theme.Header.State.Render(state)
}

func (m *Model) renderList() string {
	if m.timeline == nil {
		return m.theme.List.Empty.Render(m.status)
	}
	if len(m.entries) == 0 {
		return m.theme.List.Empty.Render(m.emptyMessage())
	}

	rows := m.visibleRows()
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := min(start+rows, len(m.entries))

	titleWidth := uint(max(m.width-30, 20))
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		e := m.entries[i]
		g := glyph.For(e.Kind)
		line := fmt.Sprintf("%s %s  %s  %s",
			m.theme.List.Symbol.Render(g.Symbol),
			truncate.StringWithTail(e.Title, titleWidth, "…"),
			m.theme.List.Date.Render(e.Created.Date()),
			m.theme.List.Detail.Render(detail(e)))
		if i == m.cursor {
			line = m.theme.List.Selected.Render(line)
		} else {
			line = m.theme.List.Row.Render(line)
		}
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) emptyMessage() string {
	st := m.timeline.State()
	switch {
	case m.timeline.Len() == 0:
		return "Nothing recorded yet. Add one with: hairjourney add entry <title>"
	case st.Search != "":
		return fmt.Sprintf("No titles match %q.", st.Search)
	default:
		return fmt.Sprintf("No %s yet.", st.Filter)
	}
}

func (m *Model) renderFooter() string {
	status := m.theme.Footer.Status.Render(m.status)
	if m.err != nil {
		status = m.theme.Footer.Error.Render(m.status)
	}
	return status + "  " + m.theme.Footer.Help.Render(helpText)
}

func (m *Model) visibleRows() int {
	if m.height <= 0 {
		return 20
	}
	// header, search, blank, footer
	return max(m.height-5, 1)
}

func filterCycle() []string {
	cycle := []string{catalog.FilterAll}
	for _, g := range glyph.DefaultGlyphs() {
		cycle = append(cycle, string(g.Category))
	}
	return cycle
}

// stepFilter moves through all and the known categories. An unknown filter
// restarts the cycle.
func stepFilter(current string, step int) string {
	cycle := filterCycle()
	i := slices.Index(cycle, current)
	if i < 0 {
		return cycle[0]
	}
	return cycle[(i+step+len(cycle))%len(cycle)]
}

func stepSort(current catalog.SortOrder, step int) catalog.SortOrder {
	orders := catalog.AllSortOrders()
	i := slices.Index(orders, current)
	if i < 0 {
		return orders[0]
	}
	return orders[(i+step+len(orders))%len(orders)]
}
