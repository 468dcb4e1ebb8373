package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	apperrors "wellness/internal/platform/errors"
)

// ActiveUser is the pointer to the user whose logs are read and written.
// It is an identity selection, not an authentication.
type ActiveUser struct {
	UserID     string    `json:"user_id"`
	SelectedAt time.Time `json:"selected_at"`
}

func NormalizeUserID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	for _, r := range id {
		if unicode.IsSpace(r) || unicode.IsControl(r) || r == '/' {
			return "", fmt.Errorf("%w: user id %q contains whitespace or '/'", apperrors.ErrInvalidInput, id)
		}
	}
	return id, nil
}
