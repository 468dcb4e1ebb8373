package in

import (
	"context"

	"wellness/internal/modules/comment/dto"
)

// Usecase never fails on service errors; it answers with the fallback text instead.
type Usecase interface {
	SleepComment(ctx context.Context, input dto.SleepCommentInput) (dto.CommentOutput, error)
	ExerciseComment(ctx context.Context, input dto.ExerciseCommentInput) (dto.CommentOutput, error)
}
