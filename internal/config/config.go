// Package config manages the CLI session file. Login writes the current
// user's identity to ~/.bto/config.json and subsequent commands read it
// back instead of asking for credentials on every invocation.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Session represents the logged-in user persisted between CLI invocations.
type Session struct {
	Version string `json:"version"`
	NRIC    string `json:"nric"`
	Name    string `json:"name"`
	Role    string `json:"role"`
}

// DefaultDir returns the directory holding the session file, ~/.bto.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".bto"), nil
}

// LoadSession reads config.json from the specified directory.
// Returns nil (not an error) when no session file exists - the caller
// decides whether an anonymous invocation is acceptable.
func LoadSession(dir string) (*Session, error) {
	path := filepath.Join(dir, "config.json")
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}

	return &session, nil
}

// SaveSession writes config.json to the specified directory, creating the
// directory if needed.
func SaveSession(dir string, session *Session) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}

	return nil
}

// ClearSession removes the session file. Clearing an absent session is not
// an error.
func ClearSession(dir string) error {
	path := filepath.Join(dir, "config.json")
	err := os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
