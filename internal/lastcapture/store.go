// Package lastcapture persists the most recent capture session so the
// results view can be reopened without re-triggering the hardware.
package lastcapture

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jakditstudio/coloGAMA/internal/api"
)

// ErrNoCapture is returned by Load when no capture has been stored yet.
var ErrNoCapture = errors.New("no stored capture session")

// Store persists a CaptureSession to disk.
type Store interface {
	Save(s *api.CaptureSession) error
	Load() (*api.CaptureSession, error) // returns ErrNoCapture if none exists
	Delete() error
}

// diskStore is the concrete Store that writes to the XDG data directory.
type diskStore struct {
	path string // full path to lastcapture.json
}

// NewStore returns a Store backed by the XDG data directory.
// Path: $XDG_DATA_HOME/cologama/lastcapture.json or ~/.local/share/cologama/lastcapture.json
func NewStore() (Store, error) {
	dir, err := dataDir()
	if err != nil {
		return nil, fmt.Errorf("resolving data directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &diskStore{path: filepath.Join(dir, "lastcapture.json")}, nil
}

// dataDir returns the cologama-specific XDG data directory.
func dataDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "cologama"), nil
}

// Save marshals s to JSON and writes it atomically via a temp file + os.Rename.
func (d *diskStore) Save(s *api.CaptureSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to persist capture session: %w", err)
	}

	// Write to a temp file in the same directory so os.Rename is atomic.
	tmp, err := os.CreateTemp(filepath.Dir(d.path), "lastcapture-*.json.tmp")
	if err != nil {
		return fmt.Errorf("failed to persist capture session: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up the temp file on any error path.
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to persist capture session: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to persist capture session: %w", err)
	}

	if err = os.Rename(tmpName, d.path); err != nil {
		return fmt.Errorf("failed to persist capture session: %w", err)
	}
	return nil
}

// Load reads and unmarshals the stored capture session.
// Returns ErrNoCapture if the file does not exist.
func (d *diskStore) Load() (*api.CaptureSession, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoCapture
		}
		return nil, fmt.Errorf("failed to read capture session: %w", err)
	}

	var s api.CaptureSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse capture session: %w", err)
	}
	return &s, nil
}

// Delete removes the stored capture session from disk.
func (d *diskStore) Delete() error {
	if err := os.Remove(d.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete capture session: %w", err)
	}
	return nil
}
