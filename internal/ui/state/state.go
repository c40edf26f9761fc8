package state

import (
	"galleria/internal/domain"
)

// AppState contains all the application state
type AppState struct {
	// Catalog data for the visible page
	Artworks []domain.Artwork
	Window   domain.PageWindow

	// Cursor within the visible page
	Cursor int

	// Operation states
	Loading bool // a page fetch for the table is in flight
	Loaded  bool // at least one page has been displayed

	// Bulk expansion state. While BulkActive, navigation and further
	// bulk requests are rejected instead of racing the sweep.
	BulkActive   bool
	BulkTarget   int
	BulkNeeded   int
	BulkNextPage int

	// UI state
	ShowBulkPanel bool
	ShowHelp      bool
	StatusMessage string
	StatusKind    string
}

// NewAppState creates a new application state
func NewAppState(rows int) *AppState {
	return &AppState{
		Window: domain.PageWindow{Rows: rows},
	}
}

// SetPage installs a fetched page and the authoritative total.
func (s *AppState) SetPage(page int, artworks []domain.Artwork, total int) {
	s.Artworks = artworks
	s.Window.First = (page - 1) * s.Window.Rows
	s.Window.Total = total
	s.Window = s.Window.Clamp()
	s.Loaded = true
	s.ClampCursor()
}

// PageIDs returns the identifiers present on the visible page.
func (s *AppState) PageIDs() []int {
	ids := make([]int, 0, len(s.Artworks))
	for _, a := range s.Artworks {
		ids = append(ids, a.ID)
	}
	return ids
}

// ArtworkAt returns the record under the given row index.
func (s *AppState) ArtworkAt(i int) (domain.Artwork, bool) {
	if i < 0 || i >= len(s.Artworks) {
		return domain.Artwork{}, false
	}
	return s.Artworks[i], true
}

// ClampCursor keeps the cursor on the page.
func (s *AppState) ClampCursor() {
	if s.Cursor >= len(s.Artworks) {
		s.Cursor = len(s.Artworks) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// ResetBulk clears bulk expansion progress.
func (s *AppState) ResetBulk() {
	s.BulkActive = false
	s.BulkTarget = 0
	s.BulkNeeded = 0
	s.BulkNextPage = 0
}

// SetStatus sets the transient notification line.
func (s *AppState) SetStatus(kind, message string) {
	s.StatusKind = kind
	s.StatusMessage = message
}

// ClearStatus clears the notification line.
func (s *AppState) ClearStatus() {
	s.StatusKind = ""
	s.StatusMessage = ""
}
