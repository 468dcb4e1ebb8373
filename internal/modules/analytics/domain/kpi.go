package domain

import (
	"math"
	"strconv"
)

// NotAvailable is the sentinel shown when a metric has no data.
const NotAvailable = "N/A"

// MoodAverage is unavailable when no mood entry fell in the window.
// Sleep has no such marker: its empty average is a plain 0.
type MoodAverage struct {
	Value     float64
	Available bool
}

func (m MoodAverage) String() string {
	if !m.Available {
		return NotAvailable
	}
	return strconv.FormatFloat(m.Value, 'f', 1, 64)
}

type KPISet struct {
	AvgMood            MoodAverage
	AvgSleepHours      float64
	TotalExerciseHours float64
	TopActivity        string
}

func ComputeKPIs(view FilteredView) KPISet {
	return KPISet{
		AvgMood:            averageMood(view.Mood),
		AvgSleepHours:      averageSleepHours(view.Sleep),
		TotalExerciseHours: totalExerciseHours(view.Exercise),
		TopActivity:        TopActivity(view.Exercise),
	}
}

func averageMood(entries []MoodEntry) MoodAverage {
	if len(entries) == 0 {
		return MoodAverage{}
	}
	sum := 0
	for _, e := range entries {
		sum += e.Score
	}
	return MoodAverage{Value: Round1(float64(sum) / float64(len(entries))), Available: true}
}

func averageSleepHours(entries []SleepEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range entries {
		sum += e.DurationMinutes
	}
	return Round1(sum / float64(len(entries)) / 60)
}

func totalExerciseHours(entries []ExerciseEntry) float64 {
	sum := 0.0
	for _, e := range entries {
		sum += e.DurationMinutes
	}
	return Round1(sum / 60)
}

// TopActivity returns the most frequent activity type. Categories are
// visited in first-seen order and a category replaces the running leader
// when its count is greater than or equal to the leader's, so on a tie the
// category first seen last wins.
func TopActivity(entries []ExerciseEntry) string {
	if len(entries) == 0 {
		return NotAvailable
	}
	counts := map[string]int{}
	order := make([]string, 0)
	for _, e := range entries {
		if _, seen := counts[e.ActivityType]; !seen {
			order = append(order, e.ActivityType)
		}
		counts[e.ActivityType]++
	}
	top, topCount := NotAvailable, 0
	for _, activity := range order {
		if counts[activity] >= topCount {
			top, topCount = activity, counts[activity]
		}
	}
	return top
}

// Round1 rounds half away from zero to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
