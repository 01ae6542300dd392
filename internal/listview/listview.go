// Package listview holds the client-side list state for fetched reviews:
// the sort key, the pagination cursor and the derived visible page. It
// never talks to the network; callers replace the item set wholesale after
// every fetch.
package listview

import (
	"sort"

	"github.com/richxcame/route-reviews/internal/reviews"
	"github.com/richxcame/route-reviews/pkg/pagination"
)

// Sort selects the ordering applied before pagination
type Sort string

const (
	SortNewest  Sort = "newest"
	SortOldest  Sort = "oldest"
	SortHighest Sort = "highest"
	SortLowest  Sort = "lowest"
)

// Cycle returns the next sort order, wrapping around
func (s Sort) Cycle() Sort {
	switch s {
	case SortNewest:
		return SortOldest
	case SortOldest:
		return SortHighest
	case SortHighest:
		return SortLowest
	default:
		return SortNewest
	}
}

// Label returns the human-readable name shown in the sort control
func (s Sort) Label() string {
	switch s {
	case SortOldest:
		return "Oldest"
	case SortHighest:
		return "Highest rated"
	case SortLowest:
		return "Lowest rated"
	default:
		return "Newest"
	}
}

// State holds the in-memory review list with its pagination cursor and
// sort key. The page is 1-based.
type State struct {
	items    []reviews.Review
	page     int
	pageSize int
	sort     Sort
}

// Page is the derived projection of a State: what the renderer shows.
type Page struct {
	Items      []reviews.Review
	PageNumber int
	TotalPages int
	Total      int
	Empty      bool
}

// New creates a State with the defaults: first page, given page size,
// newest first.
func New(pageSize int) *State {
	return &State{
		page:     1,
		pageSize: pagination.Sanitize(pageSize),
		sort:     SortNewest,
	}
}

// SetItems replaces the item list wholesale and rewinds to the first page.
// Items are never merged or patched in place.
func (s *State) SetItems(items []reviews.Review) {
	s.items = items
	s.page = 1
}

// SetSort changes the ordering and rewinds to the first page
func (s *State) SetSort(order Sort) {
	s.sort = order
	s.page = 1
}

// SetPageSize changes the page size and rewinds to the first page
func (s *State) SetPageSize(pageSize int) {
	s.pageSize = pagination.Sanitize(pageSize)
	s.page = 1
}

// Sort returns the current sort order
func (s *State) Sort() Sort { return s.sort }

// PageSize returns the current page size
func (s *State) PageSize() int { return s.pageSize }

// PageNumber returns the current 1-based page
func (s *State) PageNumber() int { return s.page }

// CanPrev reports whether the previous-page control is enabled
func (s *State) CanPrev() bool { return s.page > 1 }

// CanNext reports whether the next-page control is enabled
func (s *State) CanNext() bool {
	return s.page < pagination.TotalPages(len(s.items), s.pageSize)
}

// Prev moves back one page when not already on the first
func (s *State) Prev() {
	if s.page > 1 {
		s.page--
	}
}

// Next advances one page unconditionally. Bounds are enforced by the
// control layer via CanNext, not here.
func (s *State) Next() {
	s.page++
}

// View derives the visible page: a stable sort over a copy of the items,
// then a slice for the current cursor. The page number is never clamped;
// a cursor past the end simply yields an empty slice.
func (s *State) View() Page {
	sorted := sortReviews(s.items, s.sort)

	total := len(sorted)
	totalPages := pagination.TotalPages(total, s.pageSize)
	start, end := pagination.Bounds(s.page, s.pageSize, total)

	return Page{
		Items:      sorted[start:end],
		PageNumber: s.page,
		TotalPages: totalPages,
		Total:      total,
		Empty:      total == 0,
	}
}

// sortReviews returns a sorted copy; the input order is preserved.
func sortReviews(items []reviews.Review, order Sort) []reviews.Review {
	sorted := make([]reviews.Review, len(items))
	copy(sorted, items)

	switch order {
	case SortOldest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		})
	case SortHighest:
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Rating != sorted[j].Rating {
				return sorted[i].Rating > sorted[j].Rating
			}
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	case SortLowest:
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Rating != sorted[j].Rating {
				return sorted[i].Rating < sorted[j].Rating
			}
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		})
	default: // newest
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	}

	return sorted
}
