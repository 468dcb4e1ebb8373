package domain

import "time"

// FallbackText replaces a generated comment whenever the service cannot answer.
const FallbackText = "Unable to generate a comment at this time."

type SleepRequest struct {
	Date       time.Time
	SleepHours float64
}

type ExerciseRequest struct {
	Timestamp       time.Time
	ActivityType    string
	DurationMinutes int
	Note            string
}

type Comment struct {
	Text     string
	Fallback bool
}
