package ports

import (
	"context"

	"leetcode-revision/internal/domain/model"
)

// Notifier delivers a run summary to a downstream channel (e.g. Discord).
type Notifier interface {
	Send(ctx context.Context, notification model.Notification) error
}
