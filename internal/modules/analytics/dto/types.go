package dto

import "time"

type SelectUserInput struct {
	UserID string
}

type SetWindowInput struct {
	Days int
}

type ViewOutput struct {
	UserID           string        `json:"user_id"`
	State            string        `json:"state"`
	WindowDays       int           `json:"window_days"`
	SupportedWindows []int         `json:"supported_windows"`
	KPIs             KPIOutput     `json:"kpis"`
	Heatmap          HeatmapOutput `json:"heatmap"`
	Insight          InsightOutput `json:"insight"`
	Series           SeriesOutput  `json:"series"`
	ComputedAt       time.Time     `json:"computed_at"`
	Error            string        `json:"error,omitempty"`
}

type KPIOutput struct {
	AvgMood            string  `json:"avg_mood"`
	AvgMoodAvailable   bool    `json:"avg_mood_available"`
	AvgSleepHours      float64 `json:"avg_sleep_hours"`
	TotalExerciseHours float64 `json:"total_exercise_hours"`
	TopActivity        string  `json:"top_activity"`
}

type HeatmapOutput struct {
	Title        string              `json:"title"`
	Year         int                 `json:"year"`
	Month        int                 `json:"month"`
	StartWeekday int                 `json:"start_weekday"`
	DaysInMonth  int                 `json:"days_in_month"`
	Cells        []HeatmapCellOutput `json:"cells"`
}

type HeatmapCellOutput struct {
	Empty    bool   `json:"empty"`
	Day      int    `json:"day,omitempty"`
	Date     string `json:"date,omitempty"`
	Score    int    `json:"score,omitempty"`
	HasScore bool   `json:"has_score"`
	Bucket   string `json:"bucket,omitempty"`
	Tooltip  string `json:"tooltip,omitempty"`
}

type InsightOutput struct {
	Kind    string  `json:"kind"`
	Message string  `json:"message"`
	Average float64 `json:"average,omitempty"`
	Count   int     `json:"count"`
}

type SeriesOutput struct {
	MoodTrend       SeriesData `json:"mood_trend"`
	SleepTrend      SeriesData `json:"sleep_trend"`
	ActivitySummary SeriesData `json:"activity_summary"`
}

type SeriesData struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}
