// Package pagination slices ordered result sets into fixed-size pages.
// Requested page numbers are clamped to the valid range, never rejected.
package pagination

import "strconv"

// PerPage is the fixed listing page size.
const PerPage = 12

// Page describes one page of an ordered result set.
type Page struct {
	Number     int `json:"number"`
	Size       int `json:"size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// New computes page metadata for a result set of totalItems rows.
// requested is 1-based; values below 1 clamp to the first page and
// values past the end clamp to the last page. An empty result set
// still yields a single (empty) page.
func New(totalItems, size, requested int) Page {
	if size < 1 {
		size = PerPage
	}
	totalPages := (totalItems + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if requested < 1 {
		requested = 1
	}
	if requested > totalPages {
		requested = totalPages
	}
	return Page{
		Number:     requested,
		Size:       size,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// Offset returns the row offset of the page's first item.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// HasNext reports whether a later page exists.
func (p Page) HasNext() bool {
	return p.Number < p.TotalPages
}

// HasPrevious reports whether an earlier page exists.
func (p Page) HasPrevious() bool {
	return p.Number > 1
}

// ParseNumber converts a raw page query parameter to a 1-based page
// number. Non-numeric or missing values fall back to the first page;
// out-of-range values are clamped later by New.
func ParseNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return n
}
