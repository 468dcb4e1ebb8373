package domain

import (
	"fmt"
	"time"
)

const (
	InsightLookbackDays = 7
	InsightMinEntries   = 2
	InsightThreshold    = 7.5

	InsightLogMore         = "Log your mood a couple more times this week for a personalized insight!"
	insightAffirmTemplate  = "Your average mood this week was %.1f/10. It looks like you've had a fantastic week!"
	insightCheckInTemplate = "Your average mood this week was %.1f/10. Keep checking in with your feelings."
)

type InsightKind string

const (
	InsightKindLogMore InsightKind = "log-more"
	InsightKindAffirm  InsightKind = "affirm"
	InsightKindCheckIn InsightKind = "check-in"
)

type Insight struct {
	Kind    InsightKind
	Message string
	Average float64
	Count   int
}

// BuildInsight looks back seven days from now over all mood entries,
// regardless of the selected window.
func BuildInsight(mood []MoodEntry, now time.Time) Insight {
	cutoff := now.AddDate(0, 0, -InsightLookbackDays)
	sum, count := 0, 0
	for _, e := range mood {
		if e.Date.Before(cutoff) {
			continue
		}
		sum += e.Score
		count++
	}
	if count < InsightMinEntries {
		return Insight{Kind: InsightKindLogMore, Message: InsightLogMore, Count: count}
	}
	mean := float64(sum) / float64(count)
	avg := Round1(mean)
	// The threshold applies to the exact mean; the rounded value is for display.
	if mean >= InsightThreshold {
		return Insight{Kind: InsightKindAffirm, Message: fmt.Sprintf(insightAffirmTemplate, avg), Average: avg, Count: count}
	}
	return Insight{Kind: InsightKindCheckIn, Message: fmt.Sprintf(insightCheckInTemplate, avg), Average: avg, Count: count}
}
