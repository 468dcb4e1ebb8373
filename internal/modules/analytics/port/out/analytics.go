package out

import (
	"context"

	"wellness/internal/modules/analytics/domain"
)

// LogReader returns up to limit most recent documents of one category for
// a user, newest first. Failures wrap apperrors.ErrStoreUnavailable.
type LogReader interface {
	Fetch(ctx context.Context, category domain.Category, userID string, limit int) ([]domain.RawDocument, error)
}
