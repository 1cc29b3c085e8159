package ports

import (
	"context"

	"leetcode-revision/internal/domain/model"
)

// Calendar is the subset of a calendar service used to manage reminders.
type Calendar interface {
	// SearchEvents returns single (non-recurring) event instances matching query.
	SearchEvents(ctx context.Context, query model.EventQuery) ([]model.CalendarEvent, error)
	// CreateEvent inserts event and returns its assigned ID.
	CreateEvent(ctx context.Context, event model.CalendarEvent) (string, error)
	// PatchDescription replaces only the description of an existing event.
	PatchDescription(ctx context.Context, eventID, description string) error
}
