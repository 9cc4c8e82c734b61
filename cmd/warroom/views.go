package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/twquant/warroom/internal/config"
	"github.com/twquant/warroom/internal/dashboard"
)

// watchTable wraps the bubbles table so the model owns a single value.
type watchTable struct {
	inner table.Model
}

// NewWatchTable creates the symbol table with one column per quote and
// indicator field.
func NewWatchTable() watchTable {
	columns := []table.Column{
		{Title: "Symbol", Width: 10},
		{Title: "Name", Width: 16},
		{Title: "Close", Width: 12},
		{Title: "Chg", Width: 10},
		{Title: "Chg%", Width: 8},
		{Title: "K", Width: 8},
		{Title: "D", Width: 8},
		{Title: "MACD", Width: 10},
		{Title: "Hist", Width: 10},
		{Title: "Time", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	t.SetStyles(s)

	return watchTable{inner: t}
}

// UpdateTableRows rebuilds the rows in config order from the latest
// snapshots. Symbols that have not loaded yet render as pending.
func UpdateTableRows(t watchTable, symbols []config.SymbolConfig, snapshots map[string]dashboard.Snapshot) watchTable {
	rows := make([]table.Row, 0, len(symbols))

	for _, symbol := range symbols {
		snapshot, ok := snapshots[symbol.Ticker]
		if !ok || len(snapshot.Bars) == 0 {
			rows = append(rows, table.Row{symbol.Ticker, symbol.Name, "-", "-", "-", "-", "-", "-", "-", "-"})

			continue
		}

		last := snapshot.Bars[len(snapshot.Bars)-1]
		quote := snapshot.Quote

		rows = append(rows, table.Row{
			symbol.Ticker,
			symbol.Name,
			fmt.Sprintf("%.2f", quote.Last),
			FormatChange(quote.Change.String(), quote.Direction),
			FormatChange(quote.ChangePercent.String()+"%", quote.Direction),
			fmt.Sprintf("%.2f", last.K),
			fmt.Sprintf("%.2f", last.D),
			fmt.Sprintf("%.2f", last.MACD),
			fmt.Sprintf("%.2f", last.Hist),
			snapshot.FetchedAt.Format("15:04:05"),
		})
	}

	t.inner.SetRows(rows)

	return t
}
