// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package credstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeranaias/quizdeck-tui/internal/util"
)

// TokenFileName is the fixed name of the credential file inside the
// quizdeck storage directory.
const TokenFileName = "auth_token"

// =============================================================================
// STORE INTERFACE
// =============================================================================

// Store persists exactly one bearer token across process restarts.
type Store interface {
	// Save writes the token, overwriting any prior value.
	Save(token string) error
	// Load returns the stored token, or ok=false if none exists.
	Load() (token string, ok bool)
	// Clear removes the stored token. Clearing an empty store is a no-op.
	Clear() error
}

// =============================================================================
// FILE-BACKED STORE
// =============================================================================

// FileStore stores the token in a file with owner-only permissions (0600).
// Writes are atomic so a crash never leaves a partial token on disk.
type FileStore struct {
	path string
}

// NewFileStore creates a store rooted at the given directory.
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, TokenFileName)}
}

// Path returns the credential file location.
func (s *FileStore) Path() string {
	return s.path
}

// Save writes the token to disk, replacing any prior value.
func (s *FileStore) Save(token string) error {
	if err := util.AtomicWriteFile(s.path, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}
	return nil
}

// Load reads the token from disk. A missing file is the explicit absent
// marker, not an error.
func (s *FileStore) Load() (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", false
	}
	return token, true
}

// Clear removes the token file. Idempotent.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}

// DefaultDir returns the default quizdeck storage directory (~/.quizdeck).
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".quizdeck")
	}
	return filepath.Join(home, ".quizdeck")
}
