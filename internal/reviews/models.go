package reviews

import "time"

// Review represents a commuter's review of a transit route. The server owns
// id and the timestamps; the client never mutates them.
type Review struct {
	ID         int64     `json:"id"`
	RouteID    int64     `json:"routeId"`
	CommuterID int64     `json:"commuterId"`
	Rating     int       `json:"rating"` // 1-5
	Title      string    `json:"title"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// RatingSummary represents the server-computed aggregate for a route
type RatingSummary struct {
	RouteID       int64   `json:"routeId"`
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int64   `json:"totalReviews"`
}

// ========================================
// REQUEST TYPES
// ========================================

// CreateReviewRequest creates a review for a route
type CreateReviewRequest struct {
	RouteID    int64  `json:"routeId" validate:"required"`
	CommuterID int64  `json:"commuterId" validate:"required"`
	Rating     int    `json:"rating" validate:"required,gte=1,lte=5"`
	Title      string `json:"title" validate:"required,max=120"`
	Comment    string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}

// UpdateReviewRequest updates an existing review. Only rating, title and
// comment are mutable; routeId and commuterId are never resent in the body.
type UpdateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Title   string `json:"title" validate:"required,max=120"`
	Comment string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}
