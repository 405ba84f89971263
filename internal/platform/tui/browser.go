package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkorolev/riverhop/internal/core"
	"github.com/mkorolev/riverhop/internal/storage"
)

var browserHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// BrowserModel lists saved replays in a table. Enter starts playback of the
// selected replay; d deletes it.
type BrowserModel struct {
	store    *storage.Store
	variant  string
	table    table.Model
	entries  []storage.ReplayEntry
	selected int64
	errMsg   string
	quitting bool
}

// NewBrowserModel creates a replay browser over the given store.
// An empty variant lists replays for every variant.
func NewBrowserModel(store *storage.Store, variant string, height int) (BrowserModel, error) {
	m := BrowserModel{store: store, variant: variant, selected: -1}

	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Variant", Width: 10},
		{Title: "Score", Width: 7},
		{Title: "Ticks", Width: 8},
		{Title: "Commands", Width: 9},
		{Title: "Recorded", Width: 17},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(3, height-4)),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("10"))
	t.SetStyles(styles)

	m.table = t
	if err := m.reload(); err != nil {
		return m, err
	}
	return m, nil
}

// reload refreshes the table rows from the store.
func (m *BrowserModel) reload() error {
	entries, err := m.store.ListReplays(m.variant, 100)
	if err != nil {
		return err
	}
	m.entries = entries

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			strconv.FormatInt(e.ID, 10),
			e.Variant,
			strconv.Itoa(e.Score),
			strconv.FormatUint(e.Ticks, 10),
			strconv.Itoa(e.Commands),
			e.CreatedAt.Format("2006-01-02 15:04"),
		}
	}
	m.table.SetRows(rows)
	return nil
}

// Init implements tea.Model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles browser input.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if e, ok := m.current(); ok {
				m.selected = e.ID
				return m, tea.Quit
			}
			return m, nil
		case "d":
			if e, ok := m.current(); ok {
				if err := m.store.DeleteReplay(e.ID); err != nil {
					m.errMsg = err.Error()
				} else if err := m.reload(); err != nil {
					m.errMsg = err.Error()
				}
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.table.SetHeight(core.Max(3, msg.Height-4))
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// current returns the entry under the cursor.
func (m BrowserModel) current() (storage.ReplayEntry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.entries) {
		return storage.ReplayEntry{}, false
	}
	return m.entries[i], true
}

// Selected returns the ID chosen with enter, or -1 if none was chosen.
func (m BrowserModel) Selected() int64 {
	return m.selected
}

// View renders the table plus a one-line footer.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	footer := browserHelpStyle.Render("enter: watch  d: delete  q: quit")
	if m.errMsg != "" {
		footer = browserHelpStyle.Render(fmt.Sprintf("error: %s", m.errMsg))
	}
	if len(m.entries) == 0 {
		return "No replays recorded yet.\n\n" + footer
	}
	return m.table.View() + "\n" + footer
}

// RunBrowser shows the replay browser and returns the chosen replay ID,
// or -1 when the user quit without choosing.
func RunBrowser(store *storage.Store, variant string, height int) (int64, error) {
	model, err := NewBrowserModel(store, variant, height)
	if err != nil {
		return -1, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return -1, err
	}
	if m, ok := final.(BrowserModel); ok {
		return m.Selected(), nil
	}
	return -1, nil
}
