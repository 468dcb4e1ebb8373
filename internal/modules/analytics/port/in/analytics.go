package in

import (
	"context"

	"wellness/internal/modules/analytics/dto"
)

type Usecase interface {
	SelectUser(ctx context.Context, input dto.SelectUserInput) (dto.ViewOutput, error)
	Refresh(ctx context.Context) (dto.ViewOutput, error)
	SetWindow(ctx context.Context, input dto.SetWindowInput) (dto.ViewOutput, error)
	Current(ctx context.Context) (dto.ViewOutput, error)
}
