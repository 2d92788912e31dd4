package helpers

import (
	"strconv"
)

const (
	// DefaultPageSize is the fixed feed page size.
	DefaultPageSize = 10
	// DefaultPage is the 1-based first page.
	DefaultPage = 1
)

// Page describes one page of a paginated listing.
type Page struct {
	Number     int   `json:"number"`     // 1-based page number after clamping
	Size       int   `json:"size"`       // page size
	TotalItems int64 `json:"totalItems"` // total items across all pages
	TotalPages int   `json:"totalPages"` // at least 1, even when empty
}

// HasNext reports whether a later page exists.
func (p Page) HasNext() bool {
	return p.Number < p.TotalPages
}

// HasPrevious reports whether an earlier page exists.
func (p Page) HasPrevious() bool {
	return p.Number > 1
}

// NextNumber returns the following page number.
func (p Page) NextNumber() int {
	return p.Number + 1
}

// PreviousNumber returns the preceding page number.
func (p Page) PreviousNumber() int {
	return p.Number - 1
}

// ParsePage parses a page query parameter. Missing or malformed values
// fall back to page 1; range clamping happens later, once the total is
// known.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return DefaultPage
	}
	return page
}

// Paginate clamps a requested 1-based page number against totalItems
// and returns the page descriptor plus the SQL offset/limit for it.
// An out-of-range request resolves to the last non-empty page rather
// than erroring; an empty listing resolves to page 1.
func Paginate(requested int, totalItems int64, size int) (Page, int, int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	if requested < 1 {
		requested = DefaultPage
	}

	totalPages := int((totalItems + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}
	if requested > totalPages {
		requested = totalPages
	}

	page := Page{
		Number:     requested,
		Size:       size,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
	return page, (requested - 1) * size, size
}
