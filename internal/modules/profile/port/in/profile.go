package in

import (
	"context"

	"wellness/internal/modules/profile/dto"
)

type Usecase interface {
	Use(ctx context.Context, input dto.UseInput) (dto.ActiveUserOutput, error)
	Current(ctx context.Context) (dto.ActiveUserOutput, error)
	Clear(ctx context.Context) error
}
