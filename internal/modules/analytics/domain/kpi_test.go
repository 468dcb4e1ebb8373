package domain_test

import (
	"testing"
	"time"

	"wellness/internal/modules/analytics/domain"
)

func TestKPIScenarioSleepAndExercise(t *testing.T) {
	t.Parallel()
	view := domain.FilteredView{
		Sleep: []domain.SleepEntry{
			{Timestamp: day(-1), DurationMinutes: 420},
			{Timestamp: day(-2), DurationMinutes: 480},
		},
		Exercise: []domain.ExerciseEntry{
			{ActivityType: "Running", DurationMinutes: 30},
			{ActivityType: "Running", DurationMinutes: 20},
			{ActivityType: "Yoga", DurationMinutes: 15},
		},
	}
	kpis := domain.ComputeKPIs(view)
	if kpis.AvgSleepHours != 7.5 {
		t.Fatalf("expected 7.5 sleep hours, got %v", kpis.AvgSleepHours)
	}
	if kpis.TopActivity != "Running" {
		t.Fatalf("expected Running, got %s", kpis.TopActivity)
	}
	if kpis.TotalExerciseHours != 1.1 {
		t.Fatalf("expected 1.1 exercise hours, got %v", kpis.TotalExerciseHours)
	}
	if kpis.AvgMood.Available || kpis.AvgMood.String() != domain.NotAvailable {
		t.Fatalf("mood average must be unavailable without entries: %+v", kpis.AvgMood)
	}
}

func TestKPIEmptyViewYieldsSentinels(t *testing.T) {
	t.Parallel()
	snap, _ := domain.Normalize(domain.RawSnapshot{}, time.UTC)
	kpis := domain.ComputeKPIs(domain.Filter(snap, domain.DefaultWindow, testNow))
	if kpis.AvgMood.String() != "N/A" || kpis.TopActivity != "N/A" {
		t.Fatalf("expected N/A sentinels, got %+v", kpis)
	}
	if kpis.AvgSleepHours != 0 || kpis.TotalExerciseHours != 0 {
		t.Fatalf("expected numeric zero sentinels, got %+v", kpis)
	}
}

func TestAverageMoodRoundsAndStaysInRange(t *testing.T) {
	t.Parallel()
	view := domain.FilteredView{Mood: []domain.MoodEntry{{Score: 8}, {Score: 9}, {Score: 9}}}
	avg := domain.ComputeKPIs(view).AvgMood
	if !avg.Available || avg.Value != 8.7 || avg.String() != "8.7" {
		t.Fatalf("expected 8.7, got %+v", avg)
	}
	if avg.Value < 1 || avg.Value > 10 {
		t.Fatalf("average out of range: %v", avg.Value)
	}
}

func TestTopActivityTieGoesToLastFirstSeenCategory(t *testing.T) {
	t.Parallel()
	entries := []domain.ExerciseEntry{
		{ActivityType: "Yoga"},
		{ActivityType: "Running"},
		{ActivityType: "Yoga"},
		{ActivityType: "Running"},
		{ActivityType: "Cycling"},
	}
	if got := domain.TopActivity(entries); got != "Running" {
		t.Fatalf("expected tie to resolve to Running, got %s", got)
	}
	if got := domain.TopActivity(nil); got != domain.NotAvailable {
		t.Fatalf("expected N/A, got %s", got)
	}
}

func TestTotalExerciseHoursGrowsWithWindow(t *testing.T) {
	t.Parallel()
	snap := sampleSnapshot()
	prev := -1.0
	for _, w := range []domain.Window{1, 7, 30, 90, 365} {
		total := domain.ComputeKPIs(domain.Filter(snap, w, testNow)).TotalExerciseHours
		if total < prev {
			t.Fatalf("window %d decreased total from %v to %v", w, prev, total)
		}
		prev = total
	}
}
