package in

import (
	"context"
	"time"

	logbookdto "wellness/internal/modules/logbook/dto"
	logbookin "wellness/internal/modules/logbook/port/in"
)

type CLIHandler struct {
	usecase logbookin.Usecase
}

func NewCLIHandler(usecase logbookin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) LogMood(ctx context.Context, userID string, date time.Time, score int, label string) (logbookdto.EntryOutput, error) {
	return h.usecase.LogMood(ctx, logbookdto.LogMoodInput{UserID: userID, Date: date, Score: score, Label: label})
}

func (h CLIHandler) LogSleep(ctx context.Context, userID string, minutes int, quality string) (logbookdto.EntryOutput, error) {
	return h.usecase.LogSleep(ctx, logbookdto.LogSleepInput{UserID: userID, DurationMinutes: minutes, Quality: quality})
}

func (h CLIHandler) LogExercise(ctx context.Context, userID, activity string, minutes int, note string) (logbookdto.EntryOutput, error) {
	return h.usecase.LogExercise(ctx, logbookdto.LogExerciseInput{UserID: userID, ActivityType: activity, DurationMinutes: minutes, Note: note})
}

func (h CLIHandler) Import(ctx context.Context, userID, path string) (logbookdto.ImportOutput, error) {
	return h.usecase.Import(ctx, logbookdto.ImportInput{UserID: userID, Path: path})
}

func (h CLIHandler) Recent(ctx context.Context, userID, category string, limit int) ([]logbookdto.DocumentOutput, error) {
	return h.usecase.Recent(ctx, logbookdto.RecentInput{UserID: userID, Category: category, Limit: limit})
}

func (h CLIHandler) FormOptions() logbookdto.FormOptionsOutput {
	return h.usecase.FormOptions()
}
