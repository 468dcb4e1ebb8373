package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	apperrors "wellness/internal/platform/errors"
)

// Field names of raw store documents.
const (
	FieldMoodDate      = "date"
	FieldMoodScore     = "mood_score"
	FieldMoodLabel     = "mood_label"
	FieldTimestamp     = "timestamp"
	FieldDuration      = "duration_minutes"
	FieldSleepQuality  = "quality"
	FieldActivityType  = "activity_type"
	FieldExerciseNote  = "quick_note"
	UnknownActivity    = "unknown"
	dateOnlyLayout     = "2006-01-02"
	firestoreSeconds   = "seconds"
	firestoreNanos     = "nanoseconds"
	unixMillisBoundary = 1e11
)

// DropReport counts records discarded by Normalize, per category.
type DropReport struct {
	Mood     int
	Sleep    int
	Exercise int
}

func (d DropReport) Total() int {
	return d.Mood + d.Sleep + d.Exercise
}

// Normalize parses every raw record into a typed entry, preserving source order.
// Records that fail validation are dropped and only counted.
func Normalize(raw RawSnapshot, loc *time.Location) (Snapshot, DropReport) {
	if loc == nil {
		loc = time.Local
	}
	snap := Snapshot{
		Mood:     make([]MoodEntry, 0, len(raw.Mood)),
		Sleep:    make([]SleepEntry, 0, len(raw.Sleep)),
		Exercise: make([]ExerciseEntry, 0, len(raw.Exercise)),
	}
	drops := DropReport{}
	for _, doc := range raw.Mood {
		entry, err := ParseMood(doc, loc)
		if err != nil {
			drops.Mood++
			continue
		}
		snap.Mood = append(snap.Mood, entry)
	}
	for _, doc := range raw.Sleep {
		entry, err := ParseSleep(doc, loc)
		if err != nil {
			drops.Sleep++
			continue
		}
		snap.Sleep = append(snap.Sleep, entry)
	}
	for _, doc := range raw.Exercise {
		entry, err := ParseExercise(doc, loc)
		if err != nil {
			drops.Exercise++
			continue
		}
		snap.Exercise = append(snap.Exercise, entry)
	}
	return snap, drops
}

// ParseMood keeps a record with a numeric score in [1,10] and a parseable date.
func ParseMood(doc RawDocument, loc *time.Location) (MoodEntry, error) {
	if doc == nil {
		return MoodEntry{}, drop("nil mood document")
	}
	score, ok := asNumber(doc[FieldMoodScore])
	if !ok {
		return MoodEntry{}, drop("mood_score is not numeric")
	}
	if score != math.Trunc(score) || score < MinMoodScore || score > MaxMoodScore {
		return MoodEntry{}, drop("mood_score %v out of range", score)
	}
	date, ok := asDay(doc[FieldMoodDate], loc)
	if !ok {
		return MoodEntry{}, drop("date is not parseable")
	}
	label, _ := doc[FieldMoodLabel].(string)
	return MoodEntry{Date: date, Score: int(score), Label: label}, nil
}

// ParseSleep keeps a record with a resolvable timestamp and a non-negative numeric duration.
func ParseSleep(doc RawDocument, loc *time.Location) (SleepEntry, error) {
	if doc == nil {
		return SleepEntry{}, drop("nil sleep document")
	}
	ts, ok := asInstant(doc[FieldTimestamp], loc)
	if !ok {
		return SleepEntry{}, drop("timestamp is not resolvable")
	}
	minutes, ok := asNumber(doc[FieldDuration])
	if !ok {
		return SleepEntry{}, drop("duration_minutes is not numeric")
	}
	if minutes < 0 {
		return SleepEntry{}, drop("duration_minutes %v is negative", minutes)
	}
	quality, _ := doc[FieldSleepQuality].(string)
	return SleepEntry{Timestamp: ts, DurationMinutes: minutes, Quality: quality}, nil
}

// ParseExercise keeps any non-nil record. Missing fields are coerced: an
// unresolvable timestamp stays zero (outside every window), a missing
// activity becomes "unknown" and a non-numeric or negative duration counts as 0.
func ParseExercise(doc RawDocument, loc *time.Location) (ExerciseEntry, error) {
	if doc == nil {
		return ExerciseEntry{}, drop("nil exercise document")
	}
	ts, _ := asInstant(doc[FieldTimestamp], loc)
	activity := strings.TrimSpace(asText(doc[FieldActivityType]))
	if activity == "" {
		activity = UnknownActivity
	}
	minutes := coerceNumber(doc[FieldDuration])
	if minutes < 0 || math.IsNaN(minutes) || math.IsInf(minutes, 0) {
		minutes = 0
	}
	return ExerciseEntry{
		Timestamp:       ts,
		ActivityType:    activity,
		DurationMinutes: minutes,
		Note:            asText(doc[FieldExerciseNote]),
	}, nil
}

func drop(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidationDrop, fmt.Sprintf(format, args...))
}

// asNumber accepts only values that are already numbers.
func asNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return finite(float64(x))
	case float64:
		return finite(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return finite(f)
	default:
		return 0, false
	}
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// coerceNumber additionally parses numeric strings; anything else is 0.
func coerceNumber(v any) float64 {
	if f, ok := asNumber(v); ok {
		return f
	}
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil {
			return f
		}
	}
	return 0
}

func asText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

// asInstant resolves time.Time, RFC3339 strings, {seconds, nanoseconds} maps and unix seconds or millis.
func asInstant(v any, loc *time.Location) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		if x.IsZero() {
			return time.Time{}, false
		}
		return x.In(loc), true
	case string:
		s := strings.TrimSpace(x)
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return t.In(loc), true
		}
		if t, err := time.ParseInLocation(dateOnlyLayout, s, loc); err == nil {
			return t, true
		}
		return time.Time{}, false
	case map[string]any:
		secs, ok := asNumber(x[firestoreSeconds])
		if !ok {
			return time.Time{}, false
		}
		nanos, _ := asNumber(x[firestoreNanos])
		return time.Unix(int64(secs), int64(nanos)).In(loc), true
	default:
		n, ok := asNumber(v)
		if !ok || n <= 0 {
			return time.Time{}, false
		}
		if n >= unixMillisBoundary {
			return time.UnixMilli(int64(n)).In(loc), true
		}
		return time.Unix(int64(n), 0).In(loc), true
	}
}

// asDay resolves a calendar day at midnight in loc.
func asDay(v any, loc *time.Location) (time.Time, bool) {
	t, ok := asInstant(v, loc)
	if !ok {
		return time.Time{}, false
	}
	return StartOfDay(t), true
}

// StartOfDay truncates t to local midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
