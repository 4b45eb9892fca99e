package model

import "strconv"

const (
	defaultPageNumber = 1
	defaultPageLimit  = 20
	maxPageLimit      = 100
)

// Page holds normalized pagination parameters.
type Page struct {
	Number int
	Limit  int
}

// NewPage parses raw query parameters into a Page. Absent, non-numeric or
// out-of-range values fall back to page 1, limit 20; limit is capped at 100.
func NewPage(rawPage, rawLimit string) Page {
	number, err := strconv.Atoi(rawPage)
	if err != nil || number < 1 {
		number = defaultPageNumber
	}

	limit, err := strconv.Atoi(rawLimit)
	if err != nil || limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return Page{Number: number, Limit: limit}
}

// Offset returns the number of rows to skip: (page-1) * limit.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}
