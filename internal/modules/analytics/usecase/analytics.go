package usecase

import (
	"context"
	"strings"

	"wellness/internal/modules/analytics/domain"
	"wellness/internal/modules/analytics/dto"
	analyticsin "wellness/internal/modules/analytics/port/in"
	"wellness/internal/modules/analytics/service"
)

type Interactor struct {
	orchestrator *service.Orchestrator
}

func NewInteractor(orchestrator *service.Orchestrator) analyticsin.Usecase {
	return &Interactor{orchestrator: orchestrator}
}

func (i *Interactor) SelectUser(ctx context.Context, input dto.SelectUserInput) (dto.ViewOutput, error) {
	view, err := i.orchestrator.SetIdentity(ctx, strings.TrimSpace(input.UserID))
	return i.output(view, err), err
}

func (i *Interactor) Refresh(ctx context.Context) (dto.ViewOutput, error) {
	view, err := i.orchestrator.Refresh(ctx)
	return i.output(view, err), err
}

func (i *Interactor) SetWindow(_ context.Context, input dto.SetWindowInput) (dto.ViewOutput, error) {
	view, err := i.orchestrator.SetWindow(domain.Window(input.Days))
	return i.output(view, err), err
}

func (i *Interactor) Current(_ context.Context) (dto.ViewOutput, error) {
	return i.output(i.orchestrator.View(), i.orchestrator.LastError()), nil
}

func (i *Interactor) output(view domain.View, err error) dto.ViewOutput {
	out := ToViewOutput(view)
	out.State = string(i.orchestrator.State())
	if err != nil {
		out.Error = err.Error()
	}
	return out
}

// ToViewOutput flattens a derived view for the CLI, TUI and HTTP surfaces.
func ToViewOutput(view domain.View) dto.ViewOutput {
	windows := make([]int, 0, len(domain.SupportedWindows))
	for _, w := range domain.SupportedWindows {
		windows = append(windows, int(w))
	}
	return dto.ViewOutput{
		UserID:           view.UserID,
		WindowDays:       int(view.Window),
		SupportedWindows: windows,
		KPIs: dto.KPIOutput{
			AvgMood:            view.KPIs.AvgMood.String(),
			AvgMoodAvailable:   view.KPIs.AvgMood.Available,
			AvgSleepHours:      view.KPIs.AvgSleepHours,
			TotalExerciseHours: view.KPIs.TotalExerciseHours,
			TopActivity:        view.KPIs.TopActivity,
		},
		Heatmap: heatmapOutput(view.Heatmap),
		Insight: dto.InsightOutput{
			Kind:    string(view.Insight.Kind),
			Message: view.Insight.Message,
			Average: view.Insight.Average,
			Count:   view.Insight.Count,
		},
		Series: dto.SeriesOutput{
			MoodTrend:       seriesData(view.Series.MoodTrend),
			SleepTrend:      seriesData(view.Series.SleepTrend),
			ActivitySummary: seriesData(view.Series.ActivitySummary),
		},
		ComputedAt: view.ComputedAt,
	}
}

func heatmapOutput(h domain.Heatmap) dto.HeatmapOutput {
	cells := make([]dto.HeatmapCellOutput, 0, len(h.Cells))
	for _, c := range h.Cells {
		if c.Empty {
			cells = append(cells, dto.HeatmapCellOutput{Empty: true})
			continue
		}
		cells = append(cells, dto.HeatmapCellOutput{
			Day:      c.Date.Day(),
			Date:     c.Date.Format(domain.DateLabelLayout),
			Score:    c.Score,
			HasScore: c.HasScore,
			Bucket:   string(c.Bucket),
			Tooltip:  c.Tooltip(),
		})
	}
	return dto.HeatmapOutput{
		Title:        h.Title(),
		Year:         h.Year,
		Month:        int(h.Month),
		StartWeekday: h.StartWeekday,
		DaysInMonth:  h.DaysInMonth,
		Cells:        cells,
	}
}

func seriesData(s domain.Series) dto.SeriesData {
	return dto.SeriesData{
		Labels: append([]string{}, s.Labels...),
		Values: append([]float64{}, s.Values...),
	}
}
