package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"wellness/internal/modules/profile/domain"
	profileout "wellness/internal/modules/profile/port/out"
	apperrors "wellness/internal/platform/errors"
)

const activeUserFile = "active-user.json"

type FileActiveUserStore struct {
	path string
}

func NewFileActiveUserStore(homePath string) profileout.ActiveUserStore {
	return &FileActiveUserStore{path: filepath.Join(homePath, activeUserFile)}
}

func (s *FileActiveUserStore) SaveActive(_ context.Context, user domain.ActiveUser) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create home dir: %w", err)
	}
	payload, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal active user: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write active user: %w", err)
	}
	return nil
}

func (s *FileActiveUserStore) LoadActive(_ context.Context) (domain.ActiveUser, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.ActiveUser{}, apperrors.ErrNoActiveUser
		}
		return domain.ActiveUser{}, fmt.Errorf("read active user: %w", err)
	}
	user := domain.ActiveUser{}
	if err := json.Unmarshal(payload, &user); err != nil {
		return domain.ActiveUser{}, fmt.Errorf("decode active user: %w", err)
	}
	if user.UserID == "" {
		return domain.ActiveUser{}, apperrors.ErrNoActiveUser
	}
	return user, nil
}

func (s *FileActiveUserStore) ClearActive(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear active user: %w", err)
	}
	return nil
}
