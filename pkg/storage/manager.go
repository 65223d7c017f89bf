package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Manager owns the plugin data folder
type Manager struct {
	dataDir string
}

// NewManager creates the data folder if it does not exist yet
func NewManager(dataDir string) (*Manager, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &Manager{dataDir: dataDir}, nil
}

// Dir returns the data folder path
func (m *Manager) Dir() string {
	return m.dataDir
}

// Path returns the path of a file inside the data folder
func (m *Manager) Path(name string) string {
	return filepath.Join(m.dataDir, name)
}

// Exists checks if a file exists inside the data folder
func (m *Manager) Exists(name string) bool {
	_, err := os.Stat(m.Path(name))
	return err == nil
}

// Backup copies a data file next to itself with a timestamped ".bak" suffix
// and returns the backup path. Missing files are not an error: an empty path
// is returned.
func (m *Manager) Backup(name string, now time.Time) (string, error) {
	if !m.Exists(name) {
		return "", nil
	}

	src, err := os.Open(m.Path(name))
	if err != nil {
		return "", fmt.Errorf("failed to open %s for backup: %w", name, err)
	}
	defer src.Close()

	backupPath := m.Path(fmt.Sprintf("%s.%s.bak", name, now.UTC().Format("20060102T150405Z")))
	tempPath := backupPath + ".tmp"

	dst, err := os.Create(tempPath)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to copy %s to backup: %w", name, err)
	}

	if err := dst.Close(); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to close backup file: %w", err)
	}

	if err := os.Rename(tempPath, backupPath); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to finalize backup file: %w", err)
	}

	return backupPath, nil
}
