package service

import (
	"context"

	"wellness/internal/modules/profile/domain"
	profileout "wellness/internal/modules/profile/port/out"
	"wellness/internal/platform/clock"
)

type ProfileService struct {
	clock clock.Clock
	store profileout.ActiveUserStore
}

func NewProfileService(clock clock.Clock, store profileout.ActiveUserStore) *ProfileService {
	return &ProfileService{clock: clock, store: store}
}

func (s *ProfileService) Use(ctx context.Context, rawID string) (domain.ActiveUser, error) {
	userID, err := domain.NormalizeUserID(rawID)
	if err != nil {
		return domain.ActiveUser{}, err
	}
	user := domain.ActiveUser{UserID: userID, SelectedAt: s.clock.Now()}
	if err := s.store.SaveActive(ctx, user); err != nil {
		return domain.ActiveUser{}, err
	}
	return user, nil
}

func (s *ProfileService) Current(ctx context.Context) (domain.ActiveUser, error) {
	return s.store.LoadActive(ctx)
}

func (s *ProfileService) Clear(ctx context.Context) error {
	return s.store.ClearActive(ctx)
}
