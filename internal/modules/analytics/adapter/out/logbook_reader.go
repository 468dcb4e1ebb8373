package out

import (
	"context"
	"errors"
	"fmt"

	"wellness/internal/modules/analytics/domain"
	analyticsout "wellness/internal/modules/analytics/port/out"
	logbookdto "wellness/internal/modules/logbook/dto"
	logbookin "wellness/internal/modules/logbook/port/in"
	apperrors "wellness/internal/platform/errors"
)

// LogbookReader reads raw documents through the logbook module.
type LogbookReader struct {
	logbook logbookin.Usecase
}

func NewLogbookReader(logbook logbookin.Usecase) analyticsout.LogReader {
	return &LogbookReader{logbook: logbook}
}

func (r *LogbookReader) Fetch(ctx context.Context, category domain.Category, userID string, limit int) ([]domain.RawDocument, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}
	docs, err := r.logbook.Recent(ctx, logbookdto.RecentInput{UserID: userID, Category: string(category), Limit: limit})
	if err != nil {
		if errors.Is(err, apperrors.ErrStoreUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: read %s: %v", apperrors.ErrStoreUnavailable, category, err)
	}
	out := make([]domain.RawDocument, 0, len(docs))
	for _, doc := range docs {
		out = append(out, domain.RawDocument(doc.Fields))
	}
	return out, nil
}
