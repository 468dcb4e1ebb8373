package dto

import "time"

type LogMoodInput struct {
	UserID string
	Date   time.Time
	Score  int
	Label  string
}

type LogSleepInput struct {
	UserID          string
	DurationMinutes int
	Quality         string
}

type LogExerciseInput struct {
	UserID          string
	ActivityType    string
	DurationMinutes int
	Note            string
}

type EntryOutput struct {
	ID              string
	Category        string
	Fields          map[string]any
	Comment         string
	CommentFallback bool
}

type ImportInput struct {
	UserID string
	Path   string
}

type ImportOutput struct {
	Mood     int
	Sleep    int
	Exercise int
}

func (o ImportOutput) Total() int {
	return o.Mood + o.Sleep + o.Exercise
}

type RecentInput struct {
	UserID   string
	Category string
	Limit    int
}

type DocumentOutput struct {
	ID        string         `json:"id"`
	Category  string         `json:"category"`
	Fields    map[string]any `json:"fields"`
	CreatedAt time.Time      `json:"created_at"`
}

// FormOptionsOutput lists the choices offered when filling in a log form.
type FormOptionsOutput struct {
	Activities     []string
	SleepQualities []string
}
