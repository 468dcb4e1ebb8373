package domain

import (
	"fmt"
	"time"

	apperrors "wellness/internal/platform/errors"
)

type Category string

const (
	CategoryMood     Category = "mood"
	CategorySleep    Category = "sleep"
	CategoryExercise Category = "exercise"
)

// Categories lists the three log categories in fetch order.
var Categories = []Category{CategoryMood, CategorySleep, CategoryExercise}

func (c Category) Validate() error {
	switch c {
	case CategoryMood, CategorySleep, CategoryExercise:
		return nil
	default:
		return fmt.Errorf("%w: unsupported category %q", apperrors.ErrInvalidInput, string(c))
	}
}

// RawDocument is a loosely-typed record as returned by the log store.
type RawDocument map[string]any

// RawSnapshot holds one fetch cycle's raw reads, in store order.
type RawSnapshot struct {
	Mood     []RawDocument
	Sleep    []RawDocument
	Exercise []RawDocument
}

const (
	MinMoodScore = 1
	MaxMoodScore = 10
)

// MoodEntry is a calendar-day mood score. Date carries no time component.
type MoodEntry struct {
	Date  time.Time
	Score int
	Label string
}

type SleepEntry struct {
	Timestamp       time.Time
	DurationMinutes float64
	Quality         string
}

type ExerciseEntry struct {
	Timestamp       time.Time
	ActivityType    string
	DurationMinutes float64
	Note            string
}

// Snapshot is the full normalized, unfiltered copy of a user's logs.
type Snapshot struct {
	UserID    string
	Mood      []MoodEntry
	Sleep     []SleepEntry
	Exercise  []ExerciseEntry
	FetchedAt time.Time
}

func (s Snapshot) Empty() bool {
	return len(s.Mood) == 0 && len(s.Sleep) == 0 && len(s.Exercise) == 0
}
