package domain

// Artwork is one catalog record as returned by the remote listing API.
// Records are decoded verbatim and never mutated after the fetch.
type Artwork struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	PlaceOfOrigin string `json:"place_of_origin"`
	ArtistDisplay string `json:"artist_display"`
	Inscriptions  string `json:"inscriptions"`
	DateStart     int    `json:"date_start"`
	DateEnd       int    `json:"date_end"`
}

// PageWindow describes the slice of the catalog currently on screen:
// the offset of the first visible record, the page size, and the
// server-reported total. First is kept a multiple of Rows; Total only
// changes when a fetch response reports a new value.
type PageWindow struct {
	First int
	Rows  int
	Total int
}

// Page returns the 1-based page number for the window.
func (w PageWindow) Page() int {
	if w.Rows <= 0 {
		return 1
	}
	return w.First/w.Rows + 1
}

// PageCount returns how many pages the catalog spans.
func (w PageWindow) PageCount() int {
	if w.Rows <= 0 || w.Total <= 0 {
		return 1
	}
	return (w.Total + w.Rows - 1) / w.Rows
}

// HasNext reports whether a page exists after the window.
func (w PageWindow) HasNext() bool {
	return w.First+w.Rows < w.Total
}

// HasPrev reports whether a page exists before the window.
func (w PageWindow) HasPrev() bool {
	return w.First > 0
}

// Clamp pulls the window back onto the catalog after Total shrinks.
func (w PageWindow) Clamp() PageWindow {
	for w.First > 0 && w.First >= w.Total {
		w.First -= w.Rows
	}
	if w.First < 0 {
		w.First = 0
	}
	return w
}
