package dto

import "time"

type SleepCommentInput struct {
	Date       time.Time
	SleepHours float64
}

type ExerciseCommentInput struct {
	Timestamp       time.Time
	ActivityType    string
	DurationMinutes int
	Note            string
}

type CommentOutput struct {
	Text     string
	Fallback bool
}
