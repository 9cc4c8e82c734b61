package main

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/twquant/warroom/internal/dashboard"
)

// Model is the Bubble Tea model for the watch command. It renders one table
// row per configured symbol and refreshes on a timer or on demand.
type Model struct {
	service   *dashboard.Service
	interval  time.Duration
	snapshots map[string]dashboard.Snapshot
	errs      map[string]error
	table     watchTable
	width     int
	height    int
	lastSync  time.Time
}

// NewModel creates a Model over the given service. interval controls how
// often the table refreshes itself.
func NewModel(service *dashboard.Service, interval time.Duration) Model {
	if interval <= 0 {
		interval = time.Minute
	}

	return Model{
		service:   service,
		interval:  interval,
		snapshots: make(map[string]dashboard.Snapshot),
		errs:      make(map[string]error),
		table:     NewWatchTable(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refreshAll(), m.tick())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			// The refresh key bypasses the cache, like the dashboard's
			// refresh button. The periodic tick stays cache-respecting.
			m.service.Invalidate()

			return m, m.refreshAll()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.inner.SetWidth(msg.Width)
		m.table.inner.SetHeight(msg.Height - 6)

		return m, nil

	case SnapshotMsg:
		delete(m.errs, msg.Snapshot.Ticker)
		m.snapshots[msg.Snapshot.Ticker] = msg.Snapshot
		m.lastSync = msg.Snapshot.FetchedAt
		m.table = UpdateTableRows(m.table, m.service.Symbols(), m.snapshots)

		return m, nil

	case SnapshotErrorMsg:
		m.errs[msg.Ticker] = msg.Err

		return m, nil

	case TickMsg:
		return m, tea.Batch(m.refreshAll(), m.tick())
	}

	var cmd tea.Cmd
	m.table.inner, cmd = m.table.inner.Update(msg)

	return m, cmd
}

// refreshAll returns one command per configured symbol so that slow providers
// do not hold up the rest of the table.
func (m Model) refreshAll() tea.Cmd {
	symbols := m.service.Symbols()
	cmds := make([]tea.Cmd, 0, len(symbols))

	for _, symbol := range symbols {
		ticker := symbol.Ticker

		cmds = append(cmds, func() tea.Msg {
			snapshot, err := m.service.Snapshot(context.Background(), ticker)
			if err != nil {
				return SnapshotErrorMsg{Ticker: ticker, Err: err}
			}

			return SnapshotMsg{Snapshot: snapshot}
		})
	}

	return tea.Batch(cmds...)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("Warroom - Taiwan Market Watch"))
	s.WriteString("\n\n")

	if len(m.snapshots) == 0 && len(m.errs) == 0 {
		s.WriteString("Loading symbols...\n")
	} else {
		s.WriteString(m.table.inner.View())
		s.WriteString("\n")
	}

	// Config order keeps the error block stable between frames.
	for _, symbol := range m.service.Symbols() {
		if err, ok := m.errs[symbol.Ticker]; ok {
			s.WriteString(ErrorStyle.Render(symbol.Ticker + ": " + err.Error()))
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")

	help := "r: refresh | q: quit"
	if !m.lastSync.IsZero() {
		help += " | updated " + m.lastSync.Format("15:04:05")
	}

	s.WriteString(HelpStyle.Render(help))

	return s.String()
}
