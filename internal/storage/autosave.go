package storage

import (
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/blockpad/blockpad/internal/debounce"
	"github.com/blockpad/blockpad/pkg/document"
)

// Autosaver writes the workspace to disk shortly after the last mutation in
// a burst, so rapid edits collapse into one write.
type Autosaver struct {
	disk   *Disk
	logger *zap.Logger

	mu        sync.Mutex
	debouncer *debounce.Debouncer
	snapshot  *document.Workspace
	saveErr   error
}

func NewAutosaver(disk *Disk, interval time.Duration, logger *zap.Logger) *Autosaver {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &Autosaver{disk: disk, logger: logger}
	a.debouncer = debounce.New(interval, a.save)
	return a
}

// Schedule records the latest workspace state and arms the debounced write.
// The snapshot is taken by the caller; Schedule only holds the pointer, so
// callers pass a clone when the live tree keeps mutating.
func (a *Autosaver) Schedule(workspace *document.Workspace) {
	a.mu.Lock()
	a.snapshot = workspace
	a.mu.Unlock()
	a.debouncer.Trigger()
}

func (a *Autosaver) save() {
	a.mu.Lock()
	workspace := a.snapshot
	a.mu.Unlock()
	if workspace == nil {
		return
	}
	if err := a.disk.Save(workspace); err != nil {
		a.logger.Error("autosave failed", zap.Error(err))
		a.mu.Lock()
		a.saveErr = multierr.Append(a.saveErr, err)
		a.mu.Unlock()
	}
}

// Flush forces a pending write to happen now.
func (a *Autosaver) Flush() {
	a.debouncer.Flush()
}

// Close flushes any pending write and returns errors accumulated by failed
// background saves.
func (a *Autosaver) Close() error {
	a.debouncer.Flush()
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.saveErr
}
