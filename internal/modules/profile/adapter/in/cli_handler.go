package in

import (
	"context"
	"errors"
	"strings"

	profiledto "wellness/internal/modules/profile/dto"
	profilein "wellness/internal/modules/profile/port/in"
	apperrors "wellness/internal/platform/errors"
)

type CLIHandler struct {
	usecase profilein.Usecase
}

func NewCLIHandler(usecase profilein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Use(ctx context.Context, userID string) (profiledto.ActiveUserOutput, error) {
	return h.usecase.Use(ctx, profiledto.UseInput{UserID: userID})
}

func (h CLIHandler) Current(ctx context.Context) (profiledto.ActiveUserOutput, error) {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) Clear(ctx context.Context) error {
	return h.usecase.Clear(ctx)
}

// Resolve prefers an explicit override, then the stored active user.
func (h CLIHandler) Resolve(ctx context.Context, override string) (string, error) {
	if id := strings.TrimSpace(override); id != "" {
		return id, nil
	}
	current, err := h.usecase.Current(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoActiveUser) {
			return "", errors.New("no active user: run `wellness user use <id>` or pass --user")
		}
		return "", err
	}
	return current.UserID, nil
}
