package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/richxcame/route-reviews/pkg/httpclient"
)

// ErrMalformedResponse is returned when a mutation succeeds at the HTTP
// level but the decoded body lacks a review id.
var ErrMalformedResponse = errors.New("server response missing review id")

// Client calls the route-reviews REST API. Every operation is a single
// attempt; failures carry the raw *httpclient.HTTPError so callers can
// inspect the response body.
type Client struct {
	http *httpclient.Client
}

// NewClient creates a new reviews API client
func NewClient(httpClient *httpclient.Client) *Client {
	return &Client{http: httpClient}
}

// ListByRoute fetches all reviews for a route
func (c *Client) ListByRoute(ctx context.Context, routeID int64) ([]Review, error) {
	body, err := c.http.Get(ctx, fmt.Sprintf("/api/routes/%d/reviews", routeID))
	if err != nil {
		return nil, err
	}

	var items []Review
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode reviews list: %w", err)
	}
	return items, nil
}

// Summary fetches the aggregate rating for a route
func (c *Client) Summary(ctx context.Context, routeID int64) (*RatingSummary, error) {
	body, err := c.http.Get(ctx, fmt.Sprintf("/api/routes/%d/rating", routeID))
	if err != nil {
		return nil, err
	}

	var summary RatingSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("decode rating summary: %w", err)
	}
	return &summary, nil
}

// GetByID fetches a single review
func (c *Client) GetByID(ctx context.Context, id int64) (*Review, error) {
	body, err := c.http.Get(ctx, fmt.Sprintf("/api/reviews/%d", id))
	if err != nil {
		return nil, err
	}

	var review Review
	if err := json.Unmarshal(body, &review); err != nil {
		return nil, fmt.Errorf("decode review: %w", err)
	}
	return &review, nil
}

// Create submits a new review
func (c *Client) Create(ctx context.Context, req *CreateReviewRequest) (*Review, error) {
	body, err := c.http.Post(ctx, "/api/reviews", req)
	if err != nil {
		return nil, err
	}
	return decodeReview(body)
}

// Update modifies an existing review. The commuter ID travels as a query
// parameter; ownership is checked server-side.
func (c *Client) Update(ctx context.Context, id, commuterID int64, req *UpdateReviewRequest) (*Review, error) {
	body, err := c.http.Put(ctx, fmt.Sprintf("/api/reviews/%d?commuterId=%d", id, commuterID), req)
	if err != nil {
		return nil, err
	}
	return decodeReview(body)
}

// Delete removes a review
func (c *Client) Delete(ctx context.Context, id, commuterID int64) error {
	_, err := c.http.Delete(ctx, fmt.Sprintf("/api/reviews/%d?commuterId=%d", id, commuterID))
	return err
}

// Load fetches the review list and the rating summary for a route
// concurrently and waits for both before returning. There is no guard
// against a slower earlier Load overwriting a newer one; callers that
// change routes mid-flight can observe stale results (known race, kept
// to match the reference behavior).
func (c *Client) Load(ctx context.Context, routeID int64) ([]Review, *RatingSummary, error) {
	var (
		items   []Review
		summary *RatingSummary
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = c.ListByRoute(ctx, routeID)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = c.Summary(ctx, routeID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return items, summary, nil
}

func decodeReview(body []byte) (*Review, error) {
	var review Review
	if err := json.Unmarshal(body, &review); err != nil {
		return nil, fmt.Errorf("decode review: %w", err)
	}
	if review.ID == 0 {
		return nil, ErrMalformedResponse
	}
	return &review, nil
}
