// Package client implements the client-side session state: a persisted
// identity record and an optimistic local mirror of the post feed.
package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"microblog/internal/model"
)

// sessionFileName is the fixed name of the persisted identity record,
// the counterpart of the browser's single localStorage entry.
const sessionFileName = "session.json"

// SessionStore persists at most one identity record to durable local
// storage.
type SessionStore struct {
	path string
}

// NewSessionStore creates a SessionStore rooted at dir.
func NewSessionStore(dir string) *SessionStore {
	return &SessionStore{path: filepath.Join(dir, sessionFileName)}
}

// Load reads the persisted identity record. An absent or unparseable
// entry means no session: the stored value is discarded and nil is
// returned, never an error the caller has to recover from.
func (s *SessionStore) Load() *model.Identity {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return nil
	}

	var identity model.Identity
	if err := json.Unmarshal(data, &identity); err != nil || identity.ID == 0 {
		// corrupt entry, drop it and start unauthenticated
		_ = os.Remove(s.path)
		return nil
	}

	return &identity
}

// Save persists the identity record, replacing any previous one.
func (s *SessionStore) Save(identity model.Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to marshal identity: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// Clear removes the persisted identity record.
func (s *SessionStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
