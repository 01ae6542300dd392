package listview

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richxcame/route-reviews/internal/reviews"
)

func reviewAt(id int64, rating int, createdAt string) reviews.Review {
	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		panic(err)
	}
	return reviews.Review{
		ID:        id,
		RouteID:   1,
		Rating:    rating,
		Title:     fmt.Sprintf("review %d", id),
		CreatedAt: ts,
	}
}

func ids(items []reviews.Review) []int64 {
	out := make([]int64, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestSortNewestDefault(t *testing.T) {
	s := New(10)
	s.SetItems([]reviews.Review{
		reviewAt(1, 3, "2025-06-01T10:00:00Z"),
		reviewAt(2, 5, "2025-06-03T10:00:00Z"),
		reviewAt(3, 4, "2025-06-02T10:00:00Z"),
	})

	assert.Equal(t, SortNewest, s.Sort())
	assert.Equal(t, []int64{2, 3, 1}, ids(s.View().Items))
}

func TestSortOldest(t *testing.T) {
	s := New(10)
	s.SetItems([]reviews.Review{
		reviewAt(1, 3, "2025-06-01T10:00:00Z"),
		reviewAt(2, 5, "2025-06-03T10:00:00Z"),
	})
	s.SetSort(SortOldest)

	assert.Equal(t, []int64{1, 2}, ids(s.View().Items))
}

func TestSortHighestWithCreatedAtTieBreak(t *testing.T) {
	s := New(10)
	s.SetItems([]reviews.Review{
		reviewAt(1, 3, "2025-06-01T10:00:00Z"),
		reviewAt(2, 5, "2025-06-02T10:00:00Z"),
		reviewAt(3, 5, "2025-06-03T10:00:00Z"),
	})
	s.SetSort(SortHighest)

	// highest rating first; equal ratings newest first
	assert.Equal(t, []int64{3, 2, 1}, ids(s.View().Items))
}

func TestSortHighestOrderIndependentOfInput(t *testing.T) {
	a := reviewAt(1, 3, "2025-06-01T10:00:00Z")
	b := reviewAt(2, 5, "2025-06-02T10:00:00Z")

	s := New(10)
	s.SetSort(SortHighest)

	s.SetItems([]reviews.Review{a, b})
	assert.Equal(t, []int64{2, 1}, ids(s.View().Items))

	s.SetItems([]reviews.Review{b, a})
	s.SetSort(SortHighest)
	assert.Equal(t, []int64{2, 1}, ids(s.View().Items))
}

func TestSortLowestWithCreatedAtTieBreak(t *testing.T) {
	s := New(10)
	s.SetItems([]reviews.Review{
		reviewAt(1, 2, "2025-06-03T10:00:00Z"),
		reviewAt(2, 2, "2025-06-01T10:00:00Z"),
		reviewAt(3, 4, "2025-06-02T10:00:00Z"),
	})
	s.SetSort(SortLowest)

	// lowest rating first; equal ratings oldest first
	assert.Equal(t, []int64{2, 1, 3}, ids(s.View().Items))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	input := []reviews.Review{
		reviewAt(1, 3, "2025-06-01T10:00:00Z"),
		reviewAt(2, 5, "2025-06-03T10:00:00Z"),
	}
	s := New(10)
	s.SetItems(input)
	_ = s.View()

	assert.Equal(t, []int64{1, 2}, ids(input))
}

func manyReviews(n int) []reviews.Review {
	items := make([]reviews.Review, 0, n)
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		items = append(items, reviews.Review{
			ID:        int64(i + 1),
			RouteID:   1,
			Rating:    (i % 5) + 1,
			Title:     fmt.Sprintf("review %d", i+1),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	return items
}

func TestPaginationLastShortPage(t *testing.T) {
	s := New(10)
	s.SetItems(manyReviews(25))

	s.Next()
	s.Next()
	require.Equal(t, 3, s.PageNumber())

	page := s.View()
	assert.Len(t, page.Items, 5)
	assert.Equal(t, 3, page.TotalPages)
	assert.False(t, s.CanNext(), "next must be disabled on the last page")
	assert.True(t, s.CanPrev())
}

func TestPrevStopsAtFirstPage(t *testing.T) {
	s := New(10)
	s.SetItems(manyReviews(25))

	assert.False(t, s.CanPrev())
	s.Prev()
	assert.Equal(t, 1, s.PageNumber())
}

func TestPageSizeChangeRewindsToFirstPage(t *testing.T) {
	s := New(10)
	s.SetItems(manyReviews(25))
	s.Next()
	require.Equal(t, 2, s.PageNumber())

	s.SetPageSize(5)
	assert.Equal(t, 1, s.PageNumber())
	assert.Equal(t, 5, s.View().TotalPages)
}

func TestSortChangeRewindsToFirstPage(t *testing.T) {
	s := New(10)
	s.SetItems(manyReviews(25))
	s.Next()

	s.SetSort(SortLowest)
	assert.Equal(t, 1, s.PageNumber())
}

func TestItemShrinkDoesNotClampPage(t *testing.T) {
	s := New(10)
	s.SetItems(manyReviews(25))
	s.Next()
	s.Next()
	require.Equal(t, 3, s.PageNumber())

	// Force the cursor past the end; the derivation must not clamp it.
	s.Next()
	page := s.View()
	assert.Equal(t, 4, page.PageNumber)
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.TotalPages)
}

func TestSetItemsRewindsToFirstPage(t *testing.T) {
	s := New(10)
	s.SetItems(manyReviews(25))
	s.Next()

	s.SetItems(manyReviews(3))
	assert.Equal(t, 1, s.PageNumber())
	assert.Len(t, s.View().Items, 3)
}

func TestEmptyList(t *testing.T) {
	s := New(10)
	page := s.View()

	assert.True(t, page.Empty)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 1, page.PageNumber)
	assert.False(t, s.CanNext())
	assert.False(t, s.CanPrev())
}

func TestSortCycle(t *testing.T) {
	order := SortNewest
	seen := []Sort{}
	for i := 0; i < 4; i++ {
		order = order.Cycle()
		seen = append(seen, order)
	}
	assert.Equal(t, []Sort{SortOldest, SortHighest, SortLowest, SortNewest}, seen)
}
