package pagination

import "math"

const (
	// DefaultPageSize is the default number of items per page
	DefaultPageSize = 10
	// MaxPageSize is the maximum number of items per page
	MaxPageSize = 100
)

// TotalPages returns the page count for a list, never less than 1 so an
// empty list still renders as "1 / 1".
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := int(math.Ceil(float64(total) / float64(pageSize)))
	if pages < 1 {
		return 1
	}
	return pages
}

// Bounds returns the half-open [start, end) slice indexes for a 1-based
// page. An out-of-range page yields start == end == total.
func Bounds(page, pageSize, total int) (int, int) {
	if page < 1 || pageSize <= 0 {
		return 0, 0
	}
	start := (page - 1) * pageSize
	if start > total {
		return total, total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return start, end
}

// Sanitize clamps a requested page size into the allowed range.
func Sanitize(pageSize int) int {
	if pageSize <= 0 {
		return DefaultPageSize
	}
	if pageSize > MaxPageSize {
		return MaxPageSize
	}
	return pageSize
}
