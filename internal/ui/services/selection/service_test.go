package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"galleria/internal/domain"
)

func artwork(id int) domain.Artwork {
	return domain.Artwork{ID: id, Title: "Artwork"}
}

func artworks(ids ...int) []domain.Artwork {
	out := make([]domain.Artwork, 0, len(ids))
	for _, id := range ids {
		out = append(out, artwork(id))
	}
	return out
}

func TestReconcileAddsCheckedRecords(t *testing.T) {
	s := NewService()

	change := s.Reconcile([]int{101, 102, 103}, artworks(101, 103))

	require.Equal(t, 2, s.Count())
	assert.ElementsMatch(t, []int{101, 103}, change.Added)
	assert.Empty(t, change.Removed)
	assert.True(t, s.IsSelected(101))
	assert.True(t, s.IsSelected(103))
	assert.False(t, s.IsSelected(102))
}

func TestReconcileRemovesExactlyTheUncheckedID(t *testing.T) {
	s := NewService()
	s.Reconcile([]int{101, 102, 103}, artworks(101, 102, 103))

	// 102 was unchecked, 101 and 103 stay checked.
	change := s.Reconcile([]int{101, 102, 103}, artworks(101, 103))

	assert.Equal(t, []int{102}, change.Removed)
	assert.Empty(t, change.Added)
	require.Equal(t, 2, s.Count())
	assert.True(t, s.IsSelected(101))
	assert.True(t, s.IsSelected(103))
}

func TestReconcileLeavesOtherPagesAlone(t *testing.T) {
	s := NewService()

	// Page 1 holds 101..112, the user checks two records.
	s.Reconcile([]int{101, 102, 103}, artworks(101, 103))
	// Page 2 holds 113..115, the user checks one and the page event
	// reports only that page's checked set.
	s.Reconcile([]int{113, 114, 115}, artworks(113))

	require.Equal(t, 3, s.Count())
	assert.True(t, s.IsSelected(101))
	assert.True(t, s.IsSelected(103))
	assert.True(t, s.IsSelected(113))

	// Clearing every checkbox on page 2 must not touch page 1.
	s.Reconcile([]int{113, 114, 115}, nil)
	assert.Equal(t, []int{101, 103}, s.SortedIDs())
}

func TestReconcileNewestRecordWins(t *testing.T) {
	s := NewService()
	s.Reconcile([]int{7}, []domain.Artwork{{ID: 7, Title: "old"}})

	s.Reconcile([]int{7}, []domain.Artwork{{ID: 7, Title: "new"}})

	got, ok := s.Get(7)
	require.True(t, ok)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, 1, s.Count())
}

func TestToggle(t *testing.T) {
	s := NewService()

	change := s.Toggle(artwork(42))
	assert.Equal(t, []int{42}, change.Added)
	assert.True(t, s.IsSelected(42))

	change = s.Toggle(artwork(42))
	assert.Equal(t, []int{42}, change.Removed)
	assert.False(t, s.IsSelected(42))
	assert.Equal(t, 0, change.Total)
}

func TestShrinkKeepsLowestIdentifiers(t *testing.T) {
	s := NewService()
	s.Reconcile([]int{101, 103, 113}, artworks(101, 103, 113))

	change := s.Shrink(2)

	assert.Equal(t, []int{101, 103}, s.SortedIDs())
	assert.ElementsMatch(t, []int{113}, change.Removed)
	assert.Equal(t, 2, change.Total)
}

func TestShrinkToZeroAndBeyond(t *testing.T) {
	s := NewService()
	s.Reconcile([]int{1, 2}, artworks(1, 2))

	s.Shrink(0)
	assert.Equal(t, 0, s.Count())

	// Shrinking an empty selection stays empty.
	change := s.Shrink(3)
	assert.True(t, change.Empty())
	assert.Equal(t, 0, s.Count())
}

func TestAbsorbSkipsAlreadySelected(t *testing.T) {
	s := NewService()
	s.Reconcile([]int{113}, artworks(113))

	taken := s.Absorb(artworks(113, 114, 115, 116), 2)

	assert.Equal(t, 2, taken)
	assert.Equal(t, []int{113, 114, 115}, s.SortedIDs())
}

func TestAbsorbStopsAtNeeded(t *testing.T) {
	s := NewService()

	taken := s.Absorb(artworks(1, 2, 3, 4, 5), 3)

	assert.Equal(t, 3, taken)
	assert.Equal(t, []int{1, 2, 3}, s.SortedIDs())
}

func TestAbsorbShortPage(t *testing.T) {
	s := NewService()

	taken := s.Absorb(artworks(1, 2), 10)

	assert.Equal(t, 2, taken)
	assert.Equal(t, 2, s.Count())
}

func TestClear(t *testing.T) {
	s := NewService()
	s.Reconcile([]int{1, 2, 3}, artworks(1, 2, 3))

	change := s.Clear()

	assert.Len(t, change.Removed, 3)
	assert.Equal(t, 0, s.Count())
}
