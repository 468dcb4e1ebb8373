package out

import (
	"context"

	"wellness/internal/modules/logbook/domain"
)

type DocumentStore interface {
	Append(ctx context.Context, docs ...domain.Document) error
	Recent(ctx context.Context, userID string, category domain.Category, limit int) ([]domain.Document, error)
}

// ImportSource reads a legacy export into loosely-typed documents per category.
type ImportSource interface {
	Read(ctx context.Context, path string) (map[domain.Category][]map[string]any, error)
}
