package domain_test

import (
	"testing"

	"wellness/internal/modules/analytics/domain"
)

func TestInsightAffirmsAGoodWeek(t *testing.T) {
	t.Parallel()
	mood := []domain.MoodEntry{
		{Date: day(-2), Score: 8},
		{Date: day(-1), Score: 9},
		{Date: day(0), Score: 9},
	}
	got := domain.BuildInsight(mood, testNow)
	if got.Kind != domain.InsightKindAffirm || got.Average != 8.7 || got.Count != 3 {
		t.Fatalf("unexpected insight %+v", got)
	}
	want := "Your average mood this week was 8.7/10. It looks like you've had a fantastic week!"
	if got.Message != want {
		t.Fatalf("unexpected message %q", got.Message)
	}
}

func TestInsightChecksInBelowThreshold(t *testing.T) {
	t.Parallel()
	mood := []domain.MoodEntry{{Date: day(-1), Score: 7}, {Date: day(0), Score: 8}}
	got := domain.BuildInsight(mood, testNow)
	if got.Kind != domain.InsightKindAffirm {
		t.Fatalf("7.5 should reach the threshold, got %+v", got)
	}
	mood = []domain.MoodEntry{{Date: day(-1), Score: 7}, {Date: day(0), Score: 7}}
	got = domain.BuildInsight(mood, testNow)
	if got.Kind != domain.InsightKindCheckIn || got.Message != "Your average mood this week was 7.0/10. Keep checking in with your feelings." {
		t.Fatalf("unexpected insight %+v", got)
	}
}

func TestInsightComparesExactMeanWithThreshold(t *testing.T) {
	t.Parallel()
	var mood []domain.MoodEntry
	for i := 0; i < 5; i++ {
		mood = append(mood, domain.MoodEntry{Date: day(0), Score: 8})
	}
	for i := 0; i < 6; i++ {
		mood = append(mood, domain.MoodEntry{Date: day(0), Score: 7})
	}
	got := domain.BuildInsight(mood, testNow)
	if got.Kind != domain.InsightKindCheckIn || got.Average != 7.5 || got.Count != 11 {
		t.Fatalf("mean 82/11 is below 7.5, got %+v", got)
	}
	if got.Message != "Your average mood this week was 7.5/10. Keep checking in with your feelings." {
		t.Fatalf("unexpected message %q", got.Message)
	}
}

func TestInsightNeedsTwoRecentEntries(t *testing.T) {
	t.Parallel()
	for _, mood := range [][]domain.MoodEntry{
		nil,
		{{Date: day(0), Score: 9}},
		{{Date: day(0), Score: 9}, {Date: day(-8), Score: 9}},
	} {
		got := domain.BuildInsight(mood, testNow)
		if got.Kind != domain.InsightKindLogMore || got.Message != domain.InsightLogMore {
			t.Fatalf("expected log-more fallback for %d entries, got %+v", len(mood), got)
		}
	}
}

func TestInsightIgnoresSelectedWindow(t *testing.T) {
	t.Parallel()
	snap := domain.Snapshot{Mood: []domain.MoodEntry{{Date: day(-3), Score: 2}, {Date: day(-2), Score: 3}}}
	narrow := domain.Recompute(snap, 1, testNow)
	wide := domain.Recompute(snap, 90, testNow)
	if narrow.Insight != wide.Insight || narrow.Insight.Count != 2 {
		t.Fatalf("insight must not depend on the window: %+v vs %+v", narrow.Insight, wide.Insight)
	}
}
