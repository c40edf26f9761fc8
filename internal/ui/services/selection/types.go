package selection

import (
	"galleria/internal/domain"
)

// State holds selection data. The map is keyed by artwork identifier
// and survives page navigation; only reconciliation against the visible
// page or an explicit shrink removes entries.
type State struct {
	Selected map[int]domain.Artwork
}

// Change describes what a selection operation did.
type Change struct {
	Added   []int
	Removed []int
	Total   int
}

// Empty reports whether the operation was a no-op.
func (c Change) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0
}
