// Package store provides the TokenStore backends: a JSON state file for
// single-user installs and Redis for shared kiosk deployments. Only the
// bearer token is persisted; profile data is always re-fetched.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// sessionState is the on-disk shape of the persisted session.
type sessionState struct {
	Token string `json:"token"`
}

// FileTokenStore keeps the token in a single state file, mode 0600.
type FileTokenStore struct {
	path string
}

func NewFileTokenStore(path string) (*FileTokenStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("session file path is required")
	}
	return &FileTokenStore{path: path}, nil
}

// DefaultSessionPath returns the conventional state file location under
// the user config dir.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "backoffice", "session.json"), nil
}

func (s *FileTokenStore) Load(_ context.Context) (string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read session file: %w", err)
	}
	if len(b) == 0 {
		return "", nil
	}

	var state sessionState
	if err := json.Unmarshal(b, &state); err != nil {
		return "", fmt.Errorf("decode session file: %w", err)
	}
	return state.Token, nil
}

func (s *FileTokenStore) Save(_ context.Context, token string) error {
	b, err := json.MarshalIndent(sessionState{Token: token}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("mkdir session dir: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

func (s *FileTokenStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
