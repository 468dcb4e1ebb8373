package out_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	logbookout "wellness/internal/modules/logbook/adapter/out"
	"wellness/internal/modules/logbook/domain"
)

func TestSQLiteDocumentStoreRecentOrdersNewestFirstWithLimit(t *testing.T) {
	t.Parallel()
	store, err := logbookout.NewSQLiteDocumentStore(filepath.Join(t.TempDir(), "nested", "wellness.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	ctx := context.Background()
	base := time.Date(2026, 10, 10, 7, 0, 0, 0, time.UTC)
	docs := []domain.Document{}
	for i, id := range []string{"s-1", "s-3", "s-2"} {
		at := base.Add(time.Duration([]int{0, 48, 24}[i]) * time.Hour)
		fields := map[string]any{"timestamp": at.Format(time.RFC3339), "duration_minutes": 400 + i}
		docs = append(docs, domain.Document{
			ID:        id,
			UserID:    "u-1",
			Category:  domain.CategorySleep,
			Fields:    fields,
			SortKey:   domain.SortKeyFor(domain.CategorySleep, fields),
			CreatedAt: base,
		})
	}
	docs = append(docs, domain.Document{ID: "other", UserID: "u-2", Category: domain.CategorySleep, Fields: map[string]any{}, CreatedAt: base})
	docs = append(docs, domain.Document{ID: "mood", UserID: "u-1", Category: domain.CategoryMood, Fields: map[string]any{}, CreatedAt: base})
	if err := store.Append(ctx, docs...); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := store.Recent(ctx, "u-1", domain.CategorySleep, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 || got[0].ID != "s-3" || got[1].ID != "s-2" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[0].Fields["duration_minutes"] != float64(401) {
		t.Fatalf("payload not round-tripped: %v", got[0].Fields)
	}
	if !got[0].CreatedAt.Equal(base) {
		t.Fatalf("unexpected created_at %s", got[0].CreatedAt)
	}

	none, err := store.Recent(ctx, "u-3", domain.CategorySleep, 10)
	if err != nil || len(none) != 0 {
		t.Fatalf("expected no documents for unknown user, got %v %v", none, err)
	}
}

func TestSQLiteDocumentStoreRejectsDuplicateIDsAtomically(t *testing.T) {
	t.Parallel()
	store, err := logbookout.NewSQLiteDocumentStore(filepath.Join(t.TempDir(), "wellness.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	ctx := context.Background()
	doc := domain.Document{ID: "dup", UserID: "u-1", Category: domain.CategoryMood, Fields: map[string]any{"mood_score": 5}}
	fresh := domain.Document{ID: "fresh", UserID: "u-1", Category: domain.CategoryMood, Fields: map[string]any{"mood_score": 6}}
	if err := store.Append(ctx, doc); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.Append(ctx, fresh, doc); err == nil {
		t.Fatalf("expected duplicate id to fail")
	}
	got, err := store.Recent(ctx, "u-1", domain.CategoryMood, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 1 || got[0].ID != "dup" {
		t.Fatalf("failed batch must roll back, got %+v", got)
	}
}

func TestSQLiteDocumentStoreReturnsSameDayDocumentsInWriteOrder(t *testing.T) {
	t.Parallel()
	store, err := logbookout.NewSQLiteDocumentStore(filepath.Join(t.TempDir(), "wellness.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	ctx := context.Background()
	written := time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC)
	mood := func(id string, score int, at time.Time) domain.Document {
		fields := map[string]any{"date": "2026-10-12", "mood_score": score}
		return domain.Document{
			ID:        id,
			UserID:    "u-1",
			Category:  domain.CategoryMood,
			Fields:    fields,
			SortKey:   domain.SortKeyFor(domain.CategoryMood, fields),
			CreatedAt: at,
		}
	}
	// Fractional and whole seconds side by side, then an exact tie.
	for _, doc := range []domain.Document{
		mood("first", 3, written),
		mood("second", 5, written.Add(500*time.Millisecond)),
		mood("third", 9, written.Add(time.Second)),
		mood("fourth", 7, written.Add(time.Second)),
	} {
		if err := store.Append(ctx, doc); err != nil {
			t.Fatalf("append %s: %v", doc.ID, err)
		}
	}
	got, err := store.Recent(ctx, "u-1", domain.CategoryMood, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	want := []string{"first", "second", "third", "fourth"}
	if len(got) != len(want) {
		t.Fatalf("expected %d documents, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: want %s, got %s", i, id, got[i].ID)
		}
	}
	if !got[1].CreatedAt.Equal(written.Add(500 * time.Millisecond)) {
		t.Fatalf("created_at not round-tripped: %s", got[1].CreatedAt)
	}
}
