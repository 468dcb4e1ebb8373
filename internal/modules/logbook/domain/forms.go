package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "wellness/internal/platform/errors"
)

const (
	MinMoodScore = 1
	MaxMoodScore = 10
)

const (
	SleepQualityExcellent = "Excellent"
	SleepQualityGood      = "Good"
	SleepQualityFair      = "Fair"
	SleepQualityPoor      = "Poor"
	DefaultSleepQuality   = SleepQualityGood
)

var SleepQualities = []string{SleepQualityExcellent, SleepQualityGood, SleepQualityFair, SleepQualityPoor}

// SuggestedActivities are offered by the exercise form; any other name is accepted.
var SuggestedActivities = []string{"Running", "Strength", "Yoga", "Walking", "Other"}

type MoodForm struct {
	Date  time.Time
	Score int
	Label string
}

func (f MoodForm) Validate() error {
	if f.Score < MinMoodScore || f.Score > MaxMoodScore {
		return fmt.Errorf("%w: mood score must be between %d and %d", apperrors.ErrInvalidInput, MinMoodScore, MaxMoodScore)
	}
	if f.Date.IsZero() {
		return fmt.Errorf("%w: mood date is required", apperrors.ErrInvalidInput)
	}
	return nil
}

func (f MoodForm) Fields() map[string]any {
	return map[string]any{
		FieldDate:      f.Date.Format(dateLayout),
		FieldMoodScore: f.Score,
		FieldMoodLabel: strings.TrimSpace(f.Label),
	}
}

type SleepForm struct {
	DurationMinutes int
	Quality         string
}

// Normalized fills the default quality and canonicalizes its case.
func (f SleepForm) Normalized() SleepForm {
	q := strings.TrimSpace(f.Quality)
	if q == "" {
		f.Quality = DefaultSleepQuality
		return f
	}
	for _, known := range SleepQualities {
		if strings.EqualFold(known, q) {
			f.Quality = known
			return f
		}
	}
	f.Quality = q
	return f
}

func (f SleepForm) Validate() error {
	if f.DurationMinutes <= 0 {
		return fmt.Errorf("%w: sleep duration must be greater than zero", apperrors.ErrInvalidInput)
	}
	for _, known := range SleepQualities {
		if f.Quality == known {
			return nil
		}
	}
	return fmt.Errorf("%w: sleep quality must be one of %s", apperrors.ErrInvalidInput, strings.Join(SleepQualities, ", "))
}

func (f SleepForm) Fields(at time.Time) map[string]any {
	return map[string]any{
		FieldTimestamp: at.Format(time.RFC3339Nano),
		FieldDuration:  f.DurationMinutes,
		FieldQuality:   f.Quality,
	}
}

type ExerciseForm struct {
	ActivityType    string
	DurationMinutes int
	Note            string
}

func (f ExerciseForm) Validate() error {
	if strings.TrimSpace(f.ActivityType) == "" {
		return fmt.Errorf("%w: activity type is required", apperrors.ErrInvalidInput)
	}
	if f.DurationMinutes <= 0 {
		return fmt.Errorf("%w: exercise duration must be greater than zero", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(f.Note) == "" {
		return fmt.Errorf("%w: quick note is required", apperrors.ErrInvalidInput)
	}
	return nil
}

func (f ExerciseForm) Fields(at time.Time) map[string]any {
	return map[string]any{
		FieldTimestamp:    at.Format(time.RFC3339Nano),
		FieldActivityType: strings.TrimSpace(f.ActivityType),
		FieldDuration:     f.DurationMinutes,
		FieldQuickNote:    strings.TrimSpace(f.Note),
	}
}
