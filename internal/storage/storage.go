// Package storage persists the workspace as a single JSON file on disk.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/blockpad/blockpad/pkg/document"
)

// Disk reads and writes the workspace file. The parent directory is created
// on first save.
type Disk struct {
	// Path is the workspace file location.
	Path string

	logger *zap.Logger
}

func NewDisk(path string, logger *zap.Logger) *Disk {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Disk{Path: path, logger: logger}
}

// Load reads the workspace from disk. A missing or unreadable file returns
// (nil, nil): the caller starts with a fresh workspace instead of failing,
// since losing a corrupt file beats refusing to start. Corruption is logged.
func (d *Disk) Load() (*document.Workspace, error) {
	data, err := os.ReadFile(d.Path)
	switch {
	case os.IsNotExist(err):
		return nil, nil
	case err != nil:
		d.logger.Warn("failed to read workspace file", zap.String("path", d.Path), zap.Error(err))
		return nil, nil
	}

	var workspace document.Workspace
	if err := json.Unmarshal(data, &workspace); err != nil {
		d.logger.Warn("workspace file is corrupt, starting fresh", zap.String("path", d.Path), zap.Error(err))
		return nil, nil
	}
	if len(workspace.Pages) == 0 {
		return nil, nil
	}
	return &workspace, nil
}

// Save writes the workspace atomically: marshal, write to a temp file in the
// same directory, rename over the target.
func (d *Disk) Save(workspace *document.Workspace) error {
	if err := os.MkdirAll(filepath.Dir(d.Path), 0o700); err != nil {
		return errors.Wrap(err, "create workspace directory")
	}

	data, err := json.MarshalIndent(workspace, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal workspace")
	}

	tmp := d.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(err, "write workspace file")
	}
	if err := os.Rename(tmp, d.Path); err != nil {
		return errors.Wrap(err, "replace workspace file")
	}
	d.logger.Debug("workspace saved", zap.String("path", d.Path), zap.Int("pages", len(workspace.Pages)))
	return nil
}
