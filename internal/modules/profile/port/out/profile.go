package out

import (
	"context"

	"wellness/internal/modules/profile/domain"
)

type ActiveUserStore interface {
	SaveActive(ctx context.Context, user domain.ActiveUser) error
	LoadActive(ctx context.Context) (domain.ActiveUser, error)
	ClearActive(ctx context.Context) error
}
