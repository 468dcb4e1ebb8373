package domain

import (
	"fmt"
	"time"
)

type Bucket string

const (
	BucketStronglyPositive Bucket = "strongly-positive"
	BucketPositive         Bucket = "positive"
	BucketNeutralPositive  Bucket = "neutral-positive"
	BucketNeutralNegative  Bucket = "neutral-negative"
	BucketNegative         Bucket = "negative"
	BucketUnknown          Bucket = "unknown"
)

type bucketThreshold struct {
	min       int
	inclusive bool
	bucket    Bucket
}

// bucketTable is evaluated top to bottom; the first match wins.
var bucketTable = []bucketThreshold{
	{min: 8, inclusive: true, bucket: BucketStronglyPositive},
	{min: 6, inclusive: true, bucket: BucketPositive},
	{min: 5, inclusive: true, bucket: BucketNeutralPositive},
	{min: 3, inclusive: true, bucket: BucketNeutralNegative},
	{min: 0, inclusive: false, bucket: BucketNegative},
}

// BucketFor maps a mood score to its color tier. ok=false means no score.
func BucketFor(score int, ok bool) Bucket {
	if !ok {
		return BucketUnknown
	}
	for _, t := range bucketTable {
		if score > t.min || (t.inclusive && score == t.min) {
			return t.bucket
		}
	}
	return BucketUnknown
}

// HeatmapCell is either padding (Empty) or one day of the month.
type HeatmapCell struct {
	Empty    bool
	Date     time.Time
	Score    int
	HasScore bool
	Bucket   Bucket
}

func (c HeatmapCell) Tooltip() string {
	if c.Empty {
		return ""
	}
	if !c.HasScore {
		return fmt.Sprintf("%s: %s", c.Date.Format(dateOnlyLayout), NotAvailable)
	}
	return fmt.Sprintf("%s: %d/10", c.Date.Format(dateOnlyLayout), c.Score)
}

type Heatmap struct {
	Year         int
	Month        time.Month
	StartWeekday int
	DaysInMonth  int
	Cells        []HeatmapCell
}

func (h Heatmap) Title() string {
	return fmt.Sprintf("%s Mood Map", h.Month)
}

// BuildHeatmap lays out the month containing now, Sunday in column 0.
// Every mood entry is folded into a day map in order, so a later entry
// for the same date replaces an earlier one.
func BuildHeatmap(mood []MoodEntry, now time.Time) Heatmap {
	loc := now.Location()
	year, month, _ := now.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	days := first.AddDate(0, 1, -1).Day()
	start := int(first.Weekday())

	byDay := make(map[string]int, len(mood))
	for _, e := range mood {
		byDay[e.Date.In(loc).Format(dateOnlyLayout)] = e.Score
	}

	cells := make([]HeatmapCell, 0, start+days)
	for i := 0; i < start; i++ {
		cells = append(cells, HeatmapCell{Empty: true})
	}
	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, loc)
		score, ok := byDay[date.Format(dateOnlyLayout)]
		cells = append(cells, HeatmapCell{
			Date:     date,
			Score:    score,
			HasScore: ok,
			Bucket:   BucketFor(score, ok),
		})
	}
	return Heatmap{Year: year, Month: month, StartWeekday: start, DaysInMonth: days, Cells: cells}
}
