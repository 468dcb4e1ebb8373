package usecase

import (
	"context"
	"fmt"

	"wellness/internal/modules/comment/domain"
	"wellness/internal/modules/comment/dto"
	commentin "wellness/internal/modules/comment/port/in"
	"wellness/internal/modules/comment/service"
	apperrors "wellness/internal/platform/errors"
)

type Interactor struct {
	svc *service.CommentService
}

func NewInteractor(svc *service.CommentService) commentin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) SleepComment(ctx context.Context, input dto.SleepCommentInput) (dto.CommentOutput, error) {
	if input.SleepHours < 0 {
		return dto.CommentOutput{}, fmt.Errorf("%w: sleep hours must be non-negative", apperrors.ErrInvalidInput)
	}
	comment := i.svc.Sleep(ctx, domain.SleepRequest{Date: input.Date, SleepHours: input.SleepHours})
	return dto.CommentOutput{Text: comment.Text, Fallback: comment.Fallback}, nil
}

func (i *Interactor) ExerciseComment(ctx context.Context, input dto.ExerciseCommentInput) (dto.CommentOutput, error) {
	if input.DurationMinutes < 0 {
		return dto.CommentOutput{}, fmt.Errorf("%w: duration must be non-negative", apperrors.ErrInvalidInput)
	}
	comment := i.svc.Exercise(ctx, domain.ExerciseRequest{
		Timestamp:       input.Timestamp,
		ActivityType:    input.ActivityType,
		DurationMinutes: input.DurationMinutes,
		Note:            input.Note,
	})
	return dto.CommentOutput{Text: comment.Text, Fallback: comment.Fallback}, nil
}
