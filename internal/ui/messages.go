package ui

import (
	"time"

	"galleria/internal/catalog"
)

// pageLoadedMsg carries a fetched catalog page for the table.
type pageLoadedMsg struct {
	page   int
	result *catalog.PageResult
}

// pageFailedMsg reports a failed table page fetch.
type pageFailedMsg struct {
	page int
	err  error
}

// bulkPageLoadedMsg carries one page of a bulk selection sweep.
type bulkPageLoadedMsg struct {
	page   int
	result *catalog.PageResult
}

// bulkPageFailedMsg reports a failed fetch inside a bulk sweep.
type bulkPageFailedMsg struct {
	page int
	err  error
}

// clearStatusMsg clears the transient status line.
type clearStatusMsg struct{}

// tickMsg drives the loading spinner.
type tickMsg time.Time
