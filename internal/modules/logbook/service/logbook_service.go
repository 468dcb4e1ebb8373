package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wellness/internal/modules/logbook/domain"
	logbookout "wellness/internal/modules/logbook/port/out"
	"wellness/internal/platform/clock"
	apperrors "wellness/internal/platform/errors"
	"wellness/internal/platform/id"
)

const DefaultRecentLimit = 30

type LogbookService struct {
	clock clock.Clock
	idGen id.Generator
	store logbookout.DocumentStore
}

func NewLogbookService(clock clock.Clock, idGen id.Generator, store logbookout.DocumentStore) *LogbookService {
	return &LogbookService{clock: clock, idGen: idGen, store: store}
}

func (s *LogbookService) WriteMood(ctx context.Context, userID string, form domain.MoodForm) (domain.Document, error) {
	now := s.clock.Now()
	if form.Date.IsZero() {
		form.Date = now
	}
	if err := form.Validate(); err != nil {
		return domain.Document{}, err
	}
	return s.write(ctx, userID, domain.CategoryMood, form.Fields(), now)
}

func (s *LogbookService) WriteSleep(ctx context.Context, userID string, form domain.SleepForm) (domain.Document, error) {
	form = form.Normalized()
	if err := form.Validate(); err != nil {
		return domain.Document{}, err
	}
	now := s.clock.Now()
	return s.write(ctx, userID, domain.CategorySleep, form.Fields(now), now)
}

func (s *LogbookService) WriteExercise(ctx context.Context, userID string, form domain.ExerciseForm) (domain.Document, error) {
	if err := form.Validate(); err != nil {
		return domain.Document{}, err
	}
	now := s.clock.Now()
	return s.write(ctx, userID, domain.CategoryExercise, form.Fields(now), now)
}

// Import appends documents as-is. Empty documents are skipped; nothing else is validated.
func (s *LogbookService) Import(ctx context.Context, userID string, batch map[domain.Category][]map[string]any) (map[domain.Category]int, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	now := s.clock.Now()
	counts := map[domain.Category]int{}
	docs := make([]domain.Document, 0)
	for _, category := range domain.Categories {
		for _, fields := range batch[category] {
			if len(fields) == 0 {
				continue
			}
			docs = append(docs, s.newDocument(userID, category, fields, now))
			counts[category]++
		}
	}
	if err := s.store.Append(ctx, docs...); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return counts, nil
}

func (s *LogbookService) Recent(ctx context.Context, userID string, category domain.Category, limit int) ([]domain.Document, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	docs, err := s.store.Recent(ctx, userID, category, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return docs, nil
}

func (s *LogbookService) write(ctx context.Context, userID string, category domain.Category, fields map[string]any, now time.Time) (domain.Document, error) {
	if err := requireUser(userID); err != nil {
		return domain.Document{}, err
	}
	doc := s.newDocument(userID, category, fields, now)
	if err := s.store.Append(ctx, doc); err != nil {
		return domain.Document{}, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return doc, nil
}

func (s *LogbookService) newDocument(userID string, category domain.Category, fields map[string]any, now time.Time) domain.Document {
	return domain.Document{
		ID:        s.idGen.New(),
		UserID:    userID,
		Category:  category,
		Fields:    fields,
		SortKey:   domain.SortKeyFor(category, fields),
		CreatedAt: now,
	}
}

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperrors.ErrNoActiveUser
	}
	return nil
}
