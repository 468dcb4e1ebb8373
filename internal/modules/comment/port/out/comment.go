package out

import (
	"context"

	"wellness/internal/modules/comment/domain"
)

type Generator interface {
	SleepComment(ctx context.Context, req domain.SleepRequest) (string, error)
	ExerciseComment(ctx context.Context, req domain.ExerciseRequest) (string, error)
}
