package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	apperrors "wellness/internal/platform/errors"
)

type Category string

const (
	CategoryMood     Category = "mood"
	CategorySleep    Category = "sleep"
	CategoryExercise Category = "exercise"
)

var Categories = []Category{CategoryMood, CategorySleep, CategoryExercise}

func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	switch c {
	case CategoryMood, CategorySleep, CategoryExercise:
		return c, nil
	default:
		return "", fmt.Errorf("%w: unknown category %q (want mood|sleep|exercise)", apperrors.ErrInvalidInput, raw)
	}
}

// OrderField is the document field a category is sorted by, newest first.
func (c Category) OrderField() string {
	if c == CategoryMood {
		return FieldDate
	}
	return FieldTimestamp
}

const (
	FieldDate         = "date"
	FieldMoodScore    = "mood_score"
	FieldMoodLabel    = "mood_label"
	FieldTimestamp    = "timestamp"
	FieldDuration     = "duration_minutes"
	FieldQuality      = "quality"
	FieldActivityType = "activity_type"
	FieldQuickNote    = "quick_note"

	dateLayout = "2006-01-02"
)

// Document is one stored log record. Fields keeps the loosely-typed payload
// exactly as written; SortKey orders it within its category.
type Document struct {
	ID        string
	UserID    string
	Category  Category
	Fields    map[string]any
	SortKey   int64
	CreatedAt time.Time
}

// SortKeyFor resolves the category's order field into unix nanoseconds.
// Unresolvable values sort last.
func SortKeyFor(c Category, fields map[string]any) int64 {
	switch v := fields[c.OrderField()].(type) {
	case time.Time:
		return v.UnixNano()
	case string:
		s := strings.TrimSpace(v)
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return t.UnixNano()
		}
		if t, err := time.Parse(dateLayout, s); err == nil {
			return t.UnixNano()
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return unixKey(float64(n))
		}
	case map[string]any:
		if secs, ok := number(v["seconds"]); ok {
			nanos, _ := number(v["nanoseconds"])
			return time.Unix(int64(secs), int64(nanos)).UnixNano()
		}
	default:
		if n, ok := number(v); ok {
			return unixKey(n)
		}
	}
	return 0
}

func unixKey(n float64) int64 {
	if n >= 1e11 {
		return time.UnixMilli(int64(n)).UnixNano()
	}
	return time.Unix(int64(n), 0).UnixNano()
}

func number(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}
