// Package selection maintains the cross-page selection set: the global
// mapping of artwork identifiers to their records, reconciled against
// whichever catalog page is currently visible.
package selection

import (
	"sort"

	"galleria/internal/domain"
)

// Service handles selection logic. All operations are synchronous and
// free of I/O; fetching for bulk expansion stays with the caller.
type Service struct {
	state *State
}

// NewService creates a new selection service
func NewService() *Service {
	return &Service{
		state: &State{
			Selected: make(map[int]domain.Artwork),
		},
	}
}

// Reconcile merges a page-level checkbox event into the selection:
// every identifier on the visible page that is absent from checked was
// explicitly unchecked and is removed; every checked record is
// upserted. Identifiers belonging to other pages are never touched,
// which is what makes the selection persist across pagination.
func (s *Service) Reconcile(pageIDs []int, checked []domain.Artwork) Change {
	checkedSet := make(map[int]bool, len(checked))
	for _, a := range checked {
		checkedSet[a.ID] = true
	}

	var change Change
	for _, id := range pageIDs {
		if checkedSet[id] {
			continue
		}
		if _, ok := s.state.Selected[id]; ok {
			delete(s.state.Selected, id)
			change.Removed = append(change.Removed, id)
		}
	}

	for _, a := range checked {
		if _, ok := s.state.Selected[a.ID]; !ok {
			change.Added = append(change.Added, a.ID)
		}
		// Newest fetched record wins if an id reappears.
		s.state.Selected[a.ID] = a
	}

	change.Total = len(s.state.Selected)
	return change
}

// Toggle flips the selection state of one record.
func (s *Service) Toggle(a domain.Artwork) Change {
	var change Change
	if _, ok := s.state.Selected[a.ID]; ok {
		delete(s.state.Selected, a.ID)
		change.Removed = append(change.Removed, a.ID)
	} else {
		s.state.Selected[a.ID] = a
		change.Added = append(change.Added, a.ID)
	}
	change.Total = len(s.state.Selected)
	return change
}

// Shrink keeps exactly the target numerically smallest identifiers and
// drops the rest. Callers guarantee target <= Count.
func (s *Service) Shrink(target int) Change {
	if target < 0 {
		target = 0
	}

	ids := s.SortedIDs()
	var change Change
	for _, id := range ids[min(target, len(ids)):] {
		delete(s.state.Selected, id)
		change.Removed = append(change.Removed, id)
	}
	change.Total = len(s.state.Selected)
	return change
}

// Absorb inserts up to needed records that are not yet selected,
// walking records in their fetched order, and returns how many it took.
// This is one step of the bulk expansion sweep.
func (s *Service) Absorb(records []domain.Artwork, needed int) int {
	taken := 0
	for _, a := range records {
		if taken >= needed {
			break
		}
		if _, ok := s.state.Selected[a.ID]; ok {
			continue
		}
		s.state.Selected[a.ID] = a
		taken++
	}
	return taken
}

// IsSelected checks if an artwork is selected
func (s *Service) IsSelected(id int) bool {
	_, ok := s.state.Selected[id]
	return ok
}

// Get returns the stored record for an identifier.
func (s *Service) Get(id int) (domain.Artwork, bool) {
	a, ok := s.state.Selected[id]
	return a, ok
}

// Count returns the number of selected items
func (s *Service) Count() int {
	return len(s.state.Selected)
}

// Clear drops the whole selection.
func (s *Service) Clear() Change {
	var change Change
	for id := range s.state.Selected {
		change.Removed = append(change.Removed, id)
	}
	s.state.Selected = make(map[int]domain.Artwork)
	return change
}

// SortedIDs returns all selected identifiers in ascending order.
func (s *Service) SortedIDs() []int {
	ids := make([]int, 0, len(s.state.Selected))
	for id := range s.state.Selected {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
