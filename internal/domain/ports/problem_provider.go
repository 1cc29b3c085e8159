package ports

import (
	"context"
	"errors"

	"leetcode-revision/internal/domain/model"
)

// ErrSessionExpired is returned when LeetCode rejects the session credentials.
var ErrSessionExpired = errors.New("leetcode session expired")

// CatalogProvider fetches the full LeetCode problem catalog.
type CatalogProvider interface {
	FetchCatalog(ctx context.Context) (model.Catalog, error)
}

// SubmissionProvider fetches a user's most recent accepted submissions, newest first.
type SubmissionProvider interface {
	RecentAcceptedSubmissions(ctx context.Context, username string, limit int) ([]model.Submission, error)
}
