package domain

import (
	"fmt"
	"time"

	apperrors "wellness/internal/platform/errors"
)

// Window is a trailing period in whole days.
type Window int

const DefaultWindow Window = 30

// SupportedWindows are the sizes offered by the window control surface.
var SupportedWindows = []Window{7, 30, 90}

func (w Window) Validate() error {
	if w <= 0 {
		return fmt.Errorf("%w: window must be a positive number of days, got %d", apperrors.ErrInvalidInput, int(w))
	}
	return nil
}

// Cutoff is local midnight of now, moved back w calendar days.
func (w Window) Cutoff(now time.Time) time.Time {
	return StartOfDay(now).AddDate(0, 0, -int(w))
}

// FilteredView is a snapshot restricted to a window.
type FilteredView struct {
	Window   Window
	Cutoff   time.Time
	Mood     []MoodEntry
	Sleep    []SleepEntry
	Exercise []ExerciseEntry
}

// Filter keeps entries dated at or after the window cutoff, in source order.
func Filter(snap Snapshot, w Window, now time.Time) FilteredView {
	cutoff := w.Cutoff(now)
	view := FilteredView{
		Window:   w,
		Cutoff:   cutoff,
		Mood:     make([]MoodEntry, 0, len(snap.Mood)),
		Sleep:    make([]SleepEntry, 0, len(snap.Sleep)),
		Exercise: make([]ExerciseEntry, 0, len(snap.Exercise)),
	}
	for _, e := range snap.Mood {
		if !e.Date.Before(cutoff) {
			view.Mood = append(view.Mood, e)
		}
	}
	for _, e := range snap.Sleep {
		if !e.Timestamp.Before(cutoff) {
			view.Sleep = append(view.Sleep, e)
		}
	}
	for _, e := range snap.Exercise {
		if !e.Timestamp.Before(cutoff) {
			view.Exercise = append(view.Exercise, e)
		}
	}
	return view
}
