package queries

import "shareit/internal/pkg/errs"

const DefaultPageSize = 20

// Page is a validated (offset, limit) pair. Offset must be non-negative and
// limit strictly positive.
type Page struct {
	Offset int
	Limit  int
}

func NewPage(offset, limit int) (Page, error) {
	if offset < 0 || limit <= 0 {
		return Page{}, errs.ErrInvalidPagination
	}
	return Page{Offset: offset, Limit: limit}, nil
}
