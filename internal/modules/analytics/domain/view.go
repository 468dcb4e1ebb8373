package domain

import "time"

// View is every derived result for one (snapshot, window) pair.
type View struct {
	UserID     string
	Window     Window
	Filtered   FilteredView
	KPIs       KPISet
	Heatmap    Heatmap
	Insight    Insight
	Series     ChartSeries
	ComputedAt time.Time
}

// Recompute derives the whole view from a snapshot. It is pure.
func Recompute(snap Snapshot, w Window, now time.Time) View {
	view := View{
		UserID:  snap.UserID,
		Heatmap: BuildHeatmap(snap.Mood, now),
		Insight: BuildInsight(snap.Mood, now),
	}
	return RecomputeWindowed(view, snap, w, now)
}

// RecomputeWindowed refreshes only the window-dependent parts of prev:
// the filtered view, KPIs and series. Heatmap and insight are kept.
func RecomputeWindowed(prev View, snap Snapshot, w Window, now time.Time) View {
	filtered := Filter(snap, w, now)
	prev.UserID = snap.UserID
	prev.Window = w
	prev.Filtered = filtered
	prev.KPIs = ComputeKPIs(filtered)
	prev.Series = BuildSeries(filtered)
	prev.ComputedAt = now
	return prev
}
