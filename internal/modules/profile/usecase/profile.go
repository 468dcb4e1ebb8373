package usecase

import (
	"context"

	"wellness/internal/modules/profile/dto"
	profilein "wellness/internal/modules/profile/port/in"
	"wellness/internal/modules/profile/service"
)

type Interactor struct {
	svc *service.ProfileService
}

func NewInteractor(svc *service.ProfileService) profilein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Use(ctx context.Context, input dto.UseInput) (dto.ActiveUserOutput, error) {
	user, err := i.svc.Use(ctx, input.UserID)
	if err != nil {
		return dto.ActiveUserOutput{}, err
	}
	return dto.ActiveUserOutput{UserID: user.UserID, SelectedAt: user.SelectedAt}, nil
}

func (i *Interactor) Current(ctx context.Context) (dto.ActiveUserOutput, error) {
	user, err := i.svc.Current(ctx)
	if err != nil {
		return dto.ActiveUserOutput{}, err
	}
	return dto.ActiveUserOutput{UserID: user.UserID, SelectedAt: user.SelectedAt}, nil
}

func (i *Interactor) Clear(ctx context.Context) error {
	return i.svc.Clear(ctx)
}
