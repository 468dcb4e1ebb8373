package in

import (
	"context"

	"wellness/internal/modules/logbook/dto"
)

type Usecase interface {
	LogMood(ctx context.Context, input dto.LogMoodInput) (dto.EntryOutput, error)
	LogSleep(ctx context.Context, input dto.LogSleepInput) (dto.EntryOutput, error)
	LogExercise(ctx context.Context, input dto.LogExerciseInput) (dto.EntryOutput, error)
	Import(ctx context.Context, input dto.ImportInput) (dto.ImportOutput, error)
	Recent(ctx context.Context, input dto.RecentInput) ([]dto.DocumentOutput, error)
	FormOptions() dto.FormOptionsOutput
}
