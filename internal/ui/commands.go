package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// fetchPageCmd returns a command that fetches one table page.
func (m *Model) fetchPageCmd(page int) tea.Cmd {
	rows := m.state.Window.Rows
	return func() tea.Msg {
		result, err := m.fetcher.FetchPage(context.Background(), page, rows)
		if err != nil {
			return pageFailedMsg{page: page, err: err}
		}
		return pageLoadedMsg{page: page, result: result}
	}
}

// bulkFetchCmd returns a command that fetches one page of a bulk
// sweep. Pages are fetched strictly one at a time: the next command is
// only issued after this page's records were absorbed.
func (m *Model) bulkFetchCmd(page int) tea.Cmd {
	rows := m.state.Window.Rows
	return func() tea.Msg {
		result, err := m.fetcher.FetchPage(context.Background(), page, rows)
		if err != nil {
			return bulkPageFailedMsg{page: page, err: err}
		}
		return bulkPageLoadedMsg{page: page, result: result}
	}
}

// Timer intervals, variables so tests can shrink them.
var (
	tickInterval = 80 * time.Millisecond
	statusLinger = 4 * time.Second
)

// tickCmd keeps the spinner animated while work is in flight.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// clearStatusCmd clears the status line after a short delay.
func clearStatusCmd() tea.Cmd {
	return tea.Tick(statusLinger, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
