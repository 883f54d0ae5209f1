// Package project persists projects, application config, inventory and
// custom GCode profiles as JSON files under ~/.guillocut.
package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// DefaultConfigDir returns the directory holding all guillocut data files.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".guillocut")
}

// writeJSON marshals v with indentation and writes it to path, creating
// any missing parent directories.
func writeJSON(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// readJSON decodes path into v. It reports false without error when the
// file does not exist, leaving v untouched.
func readJSON(path string, v interface{}) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, json.Unmarshal(data, v)
}
