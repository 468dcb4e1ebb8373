package in

import (
	"context"

	analyticsdto "wellness/internal/modules/analytics/dto"
	analyticsin "wellness/internal/modules/analytics/port/in"
)

type CLIHandler struct {
	usecase analyticsin.Usecase
}

func NewCLIHandler(usecase analyticsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// Dashboard loads userID and applies window when it is set.
func (h CLIHandler) Dashboard(ctx context.Context, userID string, window int) (analyticsdto.ViewOutput, error) {
	out, err := h.usecase.SelectUser(ctx, analyticsdto.SelectUserInput{UserID: userID})
	if err != nil {
		return out, err
	}
	if window > 0 {
		return h.usecase.SetWindow(ctx, analyticsdto.SetWindowInput{Days: window})
	}
	return out, nil
}

func (h CLIHandler) SelectUser(ctx context.Context, userID string) (analyticsdto.ViewOutput, error) {
	return h.usecase.SelectUser(ctx, analyticsdto.SelectUserInput{UserID: userID})
}

func (h CLIHandler) Refresh(ctx context.Context) (analyticsdto.ViewOutput, error) {
	return h.usecase.Refresh(ctx)
}

func (h CLIHandler) SetWindow(ctx context.Context, days int) (analyticsdto.ViewOutput, error) {
	return h.usecase.SetWindow(ctx, analyticsdto.SetWindowInput{Days: days})
}

func (h CLIHandler) Current(ctx context.Context) (analyticsdto.ViewOutput, error) {
	return h.usecase.Current(ctx)
}
