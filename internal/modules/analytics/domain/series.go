package domain

// DateLabelLayout formats the x-axis labels of the trend series.
const DateLabelLayout = "2006-01-02"

// Series is a pair of parallel label/value slices.
type Series struct {
	Labels []string
	Values []float64
}

func (s Series) Len() int {
	return len(s.Labels)
}

type ChartSeries struct {
	MoodTrend       Series
	SleepTrend      Series
	ActivitySummary Series
}

// BuildSeries keeps the order of the filtered entries. Sleep values are hours
// rounded to one decimal; activity values stay in minutes.
func BuildSeries(view FilteredView) ChartSeries {
	return ChartSeries{
		MoodTrend:       moodTrend(view.Mood),
		SleepTrend:      sleepTrend(view.Sleep),
		ActivitySummary: activitySummary(view.Exercise),
	}
}

func moodTrend(entries []MoodEntry) Series {
	s := Series{Labels: make([]string, 0, len(entries)), Values: make([]float64, 0, len(entries))}
	for _, e := range entries {
		s.Labels = append(s.Labels, e.Date.Format(DateLabelLayout))
		s.Values = append(s.Values, float64(e.Score))
	}
	return s
}

func sleepTrend(entries []SleepEntry) Series {
	s := Series{Labels: make([]string, 0, len(entries)), Values: make([]float64, 0, len(entries))}
	for _, e := range entries {
		s.Labels = append(s.Labels, e.Timestamp.Format(DateLabelLayout))
		s.Values = append(s.Values, Round1(e.DurationMinutes/60))
	}
	return s
}

// activitySummary groups by activity type in first-seen order.
func activitySummary(entries []ExerciseEntry) Series {
	index := map[string]int{}
	s := Series{Labels: []string{}, Values: []float64{}}
	for _, e := range entries {
		i, ok := index[e.ActivityType]
		if !ok {
			i = len(s.Labels)
			index[e.ActivityType] = i
			s.Labels = append(s.Labels, e.ActivityType)
			s.Values = append(s.Values, 0)
		}
		s.Values[i] += e.DurationMinutes
	}
	return s
}
