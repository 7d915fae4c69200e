package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// DeviceIdentity is the stable identifier of this installation, reported
// with usage statistics. It is created on first use and persisted to path.
type DeviceIdentity struct {
	path string

	once sync.Once
	id   string
	err  error
}

// NewDeviceIdentity returns a DeviceIdentity persisted at path.
func NewDeviceIdentity(path string) *DeviceIdentity {
	return &DeviceIdentity{path: path}
}

// ID returns the persisted identifier, generating and storing one when the
// file does not exist yet. The value is read from disk at most once.
func (d *DeviceIdentity) ID() (string, error) {
	d.once.Do(func() {
		d.id, d.err = d.loadOrCreate()
	})
	return d.id, d.err
}

func (d *DeviceIdentity) loadOrCreate() (string, error) {
	data, err := os.ReadFile(d.path)
	switch {
	case err == nil:
		if id := strings.TrimSpace(string(data)); id != "" {
			return id, nil
		}
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("error reading device identity: %w", err)
	}

	id := uuid.NewString()
	if dir := filepath.Dir(d.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("error creating device identity dir: %w", err)
		}
	}
	if err := os.WriteFile(d.path, []byte(id+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("error writing device identity: %w", err)
	}

	return id, nil
}
