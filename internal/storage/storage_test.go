package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockpad/blockpad/pkg/block"
	"github.com/blockpad/blockpad/pkg/document"
)

func TestDisk_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "workspace.json")
	disk := NewDisk(path, nil)

	workspace := document.NewWorkspace()
	page := workspace.CurrentPage()
	page.Title = "Notes"
	page.Blocks = []*block.Block{block.NewWithText(block.TypeHeading1, "Hello")}

	require.NoError(t, disk.Save(workspace))

	loaded, err := disk.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Len(t, loaded.Pages, 1)
	assert.Equal(t, "Notes", loaded.Pages[0].Title)
	assert.Equal(t, "Hello", loaded.Pages[0].Blocks[0].PlainText())
	assert.Equal(t, workspace.CurrentPageID, loaded.CurrentPageID)
}

func TestDisk_LoadMissingFile(t *testing.T) {
	disk := NewDisk(filepath.Join(t.TempDir(), "nope.json"), nil)

	workspace, err := disk.Load()
	assert.NoError(t, err)
	assert.Nil(t, workspace)
}

func TestDisk_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workspace.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	workspace, err := NewDisk(path, nil).Load()
	assert.NoError(t, err)
	assert.Nil(t, workspace)
}

func TestDisk_SaveFilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workspace.json")
	disk := NewDisk(path, nil)
	require.NoError(t, disk.Save(document.NewWorkspace()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestAutosaver_CoalescesWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workspace.json")
	disk := NewDisk(path, nil)
	saver := NewAutosaver(disk, 20*time.Millisecond, nil)

	workspace := document.NewWorkspace()
	for i := 0; i < 5; i++ {
		saver.Schedule(workspace)
	}

	require.Eventually(t, func() bool {
		_, err := os.Stat(path)
		return err == nil
	}, time.Second, 5*time.Millisecond)
	require.NoError(t, saver.Close())

	loaded, err := disk.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, workspace.CurrentPageID, loaded.CurrentPageID)
}

func TestAutosaver_CloseFlushesPendingWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workspace.json")
	disk := NewDisk(path, nil)
	saver := NewAutosaver(disk, time.Hour, nil)

	saver.Schedule(document.NewWorkspace())
	require.NoError(t, saver.Close())

	loaded, err := disk.Load()
	require.NoError(t, err)
	assert.NotNil(t, loaded)
}
