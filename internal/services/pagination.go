package services

import "github.com/sbilibin2017/bizlink/internal/repositories"

// Pagination defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Paginate clamps a 1-indexed page and a page size into a store window.
// Non-positive pages become the first page, non-positive limits the default,
// and oversized limits MaxLimit, so the skip offset is never negative.
func Paginate(page, limit int) repositories.Page {
	if page <= 0 {
		page = DefaultPage
	}
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	return repositories.Page{
		Skip:  int64(page-1) * int64(limit),
		Limit: int64(limit),
	}
}
