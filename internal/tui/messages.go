package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/richxcame/route-reviews/internal/reviews"
	"github.com/richxcame/route-reviews/pkg/logger"
)

// Messages carry typed payloads instead of encoding identifiers in strings;
// every async result arrives here and is applied in Update.

// loadedMsg is the joined result of the list and summary fetches
type loadedMsg struct {
	routeID int64
	items   []reviews.Review
	summary *reviews.RatingSummary
	err     error
}

// submittedMsg is the result of a create or update
type submittedMsg struct {
	updated bool
	review  *reviews.Review
	err     error
}

// deletedMsg is the result of a delete
type deletedMsg struct {
	err error
}

// toastTimeoutMsg dismisses the toast whose sequence number it carries;
// stale timers from replaced toasts are ignored.
type toastTimeoutMsg struct {
	seq int
}

// requestContext tags each user-triggered request chain with a fresh
// correlation ID for the backend logs.
func requestContext() context.Context {
	return logger.ContextWithCorrelationID(context.Background(), uuid.New().String())
}

// loadCmd fetches list + summary for a route. Both requests run
// concurrently and the message is only emitted once both settle.
func (m Model) loadCmd(routeID int64) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx := requestContext()
		items, summary, err := client.Load(ctx, routeID)
		if err != nil {
			logger.ErrorContext(ctx, "load failed", zap.Int64("route_id", routeID), zap.Error(err))
		}
		return loadedMsg{routeID: routeID, items: items, summary: summary, err: err}
	}
}

// submitCmd issues the create or update matching the edit state captured
// at the moment the user submitted.
func (m Model) submitCmd(values reviews.FormValues) tea.Cmd {
	client := m.client

	if m.inEditMode() {
		id, commuterID := *m.editID, *m.editCommuterID
		req := &reviews.UpdateReviewRequest{
			Rating:  values.Rating,
			Title:   values.Title,
			Comment: values.Comment,
		}
		return func() tea.Msg {
			ctx := requestContext()
			review, err := client.Update(ctx, id, commuterID, req)
			if err != nil {
				logger.ErrorContext(ctx, "update failed", zap.Int64("review_id", id), zap.Error(err))
			}
			return submittedMsg{updated: true, review: review, err: err}
		}
	}

	req := &reviews.CreateReviewRequest{
		RouteID:    values.RouteID,
		CommuterID: values.CommuterID,
		Rating:     values.Rating,
		Title:      values.Title,
		Comment:    values.Comment,
	}
	return func() tea.Msg {
		ctx := requestContext()
		review, err := client.Create(ctx, req)
		if err != nil {
			logger.ErrorContext(ctx, "create failed", zap.Int64("route_id", req.RouteID), zap.Error(err))
		}
		return submittedMsg{updated: false, review: review, err: err}
	}
}

// deleteCmd issues the delete confirmed through the modal
func (m Model) deleteCmd(id, commuterID int64) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx := requestContext()
		err := client.Delete(ctx, id, commuterID)
		if err != nil {
			logger.ErrorContext(ctx, "delete failed", zap.Int64("review_id", id), zap.Error(err))
		}
		return deletedMsg{err: err}
	}
}

// showToast replaces any visible toast and restarts the dismiss timer
func (m *Model) showToast(message string, isError bool) tea.Cmd {
	m.toastSeq++
	m.toast = toastState{message: message, isError: isError, visible: true}
	seq := m.toastSeq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastTimeoutMsg{seq: seq}
	})
}
