package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"wellness/internal/modules/analytics/domain"
	"wellness/internal/modules/analytics/service"
	"wellness/internal/platform/clock"
	apperrors "wellness/internal/platform/errors"
	"wellness/internal/platform/logging"
	"wellness/internal/platform/notice"
)

var now = time.Date(2026, 10, 15, 15, 0, 0, 0, time.UTC)

type fakeReader struct {
	mu      sync.Mutex
	docs    map[string]map[domain.Category][]domain.RawDocument
	fail    map[domain.Category]error
	gates   map[string]chan struct{}
	started chan string
	calls   int
	limits  []int
}

func (f *fakeReader) Fetch(_ context.Context, category domain.Category, userID string, limit int) ([]domain.RawDocument, error) {
	f.mu.Lock()
	f.calls++
	f.limits = append(f.limits, limit)
	gate := f.gates[userID]
	err := f.fail[category]
	docs := f.docs[userID][category]
	f.mu.Unlock()

	if gate != nil {
		f.started <- userID
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (f *fakeReader) setFailure(category domain.Category, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail = map[domain.Category]error{category: err}
}

func (f *fakeReader) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func weekDocs() map[domain.Category][]domain.RawDocument {
	return map[domain.Category][]domain.RawDocument{
		domain.CategoryMood: {
			{"date": "2026-10-15", "mood_score": 9},
			{"date": "2026-10-14", "mood_score": 9},
			{"date": "2026-10-13", "mood_score": 8},
			{"date": "2026-10-12", "mood_score": "bad"},
		},
		domain.CategorySleep: {
			{"timestamp": "2026-10-15T07:00:00Z", "duration_minutes": 420},
			{"timestamp": "2026-10-14T07:00:00Z", "duration_minutes": 480},
		},
		domain.CategoryExercise: {
			{"timestamp": "2026-10-15T18:00:00Z", "activity_type": "Running", "duration_minutes": 30},
			{"timestamp": "2026-10-14T18:00:00Z", "activity_type": "Running", "duration_minutes": 20},
			{"timestamp": "2026-10-13T18:00:00Z", "activity_type": "Yoga", "duration_minutes": 15},
		},
	}
}

func newOrchestrator(reader *fakeReader, notifier notice.Notifier) *service.Orchestrator {
	return service.NewOrchestrator(reader, clock.Fixed{At: now}, notifier, logging.Discard(), service.Options{Location: time.UTC})
}

func TestOrchestratorFetchesAndDerivesView(t *testing.T) {
	t.Parallel()
	reader := &fakeReader{docs: map[string]map[domain.Category][]domain.RawDocument{"u-1": weekDocs()}}
	o := newOrchestrator(reader, nil)
	if o.State() != service.StateIdle {
		t.Fatalf("expected idle before identity, got %s", o.State())
	}

	view, err := o.SetIdentity(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("set identity: %v", err)
	}
	if o.State() != service.StateReady {
		t.Fatalf("expected ready, got %s", o.State())
	}
	if reader.callCount() != 3 {
		t.Fatalf("expected three category reads, got %d", reader.callCount())
	}
	for _, limit := range reader.limits {
		if limit != service.DefaultFetchLimit {
			t.Fatalf("expected fetch limit %d, got %d", service.DefaultFetchLimit, limit)
		}
	}
	if view.Window != domain.DefaultWindow || view.UserID != "u-1" {
		t.Fatalf("unexpected view header %+v", view)
	}
	if view.KPIs.AvgMood.String() != "8.7" || view.KPIs.AvgSleepHours != 7.5 {
		t.Fatalf("unexpected KPIs %+v", view.KPIs)
	}
	if view.KPIs.TopActivity != "Running" || view.KPIs.TotalExerciseHours != 1.1 {
		t.Fatalf("unexpected exercise KPIs %+v", view.KPIs)
	}
	if view.Insight.Kind != domain.InsightKindAffirm {
		t.Fatalf("unexpected insight %+v", view.Insight)
	}
	if len(view.Heatmap.Cells) != view.Heatmap.StartWeekday+view.Heatmap.DaysInMonth {
		t.Fatalf("unexpected heatmap size %d", len(view.Heatmap.Cells))
	}

	again, err := o.SetIdentity(context.Background(), "u-1")
	if err != nil || reader.callCount() != 3 || again.KPIs != view.KPIs {
		t.Fatalf("selecting the same ready user must not refetch: calls=%d err=%v", reader.callCount(), err)
	}
}

func TestOrchestratorWindowChangeDoesNotRefetch(t *testing.T) {
	t.Parallel()
	reader := &fakeReader{docs: map[string]map[domain.Category][]domain.RawDocument{"u-1": weekDocs()}}
	o := newOrchestrator(reader, nil)
	full, err := o.SetIdentity(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("set identity: %v", err)
	}

	narrow, err := o.SetWindow(1)
	if err != nil {
		t.Fatalf("set window: %v", err)
	}
	if reader.callCount() != 3 {
		t.Fatalf("window change must not refetch, calls=%d", reader.callCount())
	}
	if narrow.Window != 1 || len(narrow.Filtered.Mood) != 2 {
		t.Fatalf("unexpected narrowed view: window=%d mood=%d", narrow.Window, len(narrow.Filtered.Mood))
	}
	if narrow.Insight != full.Insight || len(narrow.Heatmap.Cells) != len(full.Heatmap.Cells) {
		t.Fatalf("heatmap and insight must not depend on the window")
	}

	if _, err := o.SetWindow(0); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid window, got %v", err)
	}
	if o.Window() != 1 {
		t.Fatalf("invalid window must not be applied, got %d", o.Window())
	}
}

func TestOrchestratorFailedFetchKeepsPreviousSnapshot(t *testing.T) {
	t.Parallel()
	reader := &fakeReader{docs: map[string]map[domain.Category][]domain.RawDocument{"u-1": weekDocs()}}
	rec := &notice.Recorder{}
	o := newOrchestrator(reader, rec)
	before, err := o.SetIdentity(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("set identity: %v", err)
	}

	reader.setFailure(domain.CategorySleep, errors.New("connection reset"))
	after, err := o.Refresh(context.Background())
	if !errors.Is(err, apperrors.ErrStoreUnavailable) {
		t.Fatalf("expected store unavailable, got %v", err)
	}
	if o.State() != service.StateDegraded {
		t.Fatalf("expected error-degraded, got %s", o.State())
	}
	if after.KPIs != before.KPIs || len(after.Filtered.Mood) != len(before.Filtered.Mood) {
		t.Fatalf("successful reads must not be applied partially")
	}
	if len(rec.Notices()) != 1 {
		t.Fatalf("expected one notice, got %v", rec.Notices())
	}
	if !errors.Is(o.LastError(), apperrors.ErrStoreUnavailable) {
		t.Fatalf("expected last error to be recorded, got %v", o.LastError())
	}

	reader.setFailure(domain.CategorySleep, nil)
	if _, err := o.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh after recovery: %v", err)
	}
	if o.State() != service.StateReady || o.LastError() != nil {
		t.Fatalf("expected recovery to ready, got %s %v", o.State(), o.LastError())
	}
}

func TestOrchestratorFailedFirstFetchLeavesEmptyView(t *testing.T) {
	t.Parallel()
	reader := &fakeReader{fail: map[domain.Category]error{domain.CategoryMood: fmt.Errorf("%w: offline", apperrors.ErrStoreUnavailable)}}
	o := newOrchestrator(reader, nil)
	view, err := o.SetIdentity(context.Background(), "u-1")
	if !errors.Is(err, apperrors.ErrStoreUnavailable) {
		t.Fatalf("expected store unavailable, got %v", err)
	}
	if view.KPIs.AvgMood.String() != "N/A" || view.KPIs.TopActivity != "N/A" || view.Insight.Kind != domain.InsightKindLogMore {
		t.Fatalf("expected empty sentinels, got %+v", view.KPIs)
	}
}

func TestOrchestratorDiscardsStaleFetch(t *testing.T) {
	t.Parallel()
	gate := make(chan struct{})
	reader := &fakeReader{
		docs: map[string]map[domain.Category][]domain.RawDocument{
			"slow": weekDocs(),
			"fast": {domain.CategoryMood: {{"date": "2026-10-15", "mood_score": 2}}},
		},
		gates:   map[string]chan struct{}{"slow": gate},
		started: make(chan string, 3),
	}
	o := newOrchestrator(reader, nil)

	type result struct {
		view domain.View
		err  error
	}
	slow := make(chan result, 1)
	go func() {
		view, err := o.SetIdentity(context.Background(), "slow")
		slow <- result{view: view, err: err}
	}()
	<-reader.started

	fast, err := o.SetIdentity(context.Background(), "fast")
	if err != nil {
		t.Fatalf("set identity fast: %v", err)
	}
	close(gate)
	got := <-slow
	if !errors.Is(got.err, apperrors.ErrStaleFetch) {
		t.Fatalf("expected stale fetch, got %v", got.err)
	}

	current := o.View()
	if current.UserID != "fast" || len(current.Filtered.Mood) != 1 || current.Filtered.Mood[0].Score != 2 {
		t.Fatalf("stale result overwrote the newer user: %+v", current.Filtered.Mood)
	}
	if fast.UserID != "fast" || o.State() != service.StateReady {
		t.Fatalf("unexpected final state %s for %s", o.State(), fast.UserID)
	}
}

func TestOrchestratorRefreshWithoutUser(t *testing.T) {
	t.Parallel()
	o := newOrchestrator(&fakeReader{}, nil)
	if _, err := o.Refresh(context.Background()); !errors.Is(err, apperrors.ErrNoActiveUser) {
		t.Fatalf("expected no active user, got %v", err)
	}
}
