package clipboard

import (
	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
)

// Provider abstracts the OS clipboard so the editing engine and tests never
// depend on a real display server.
type Provider interface {
	Read() (string, error)
	Write(string) error
}

// System is the OS-backed provider.
type System struct{}

func (System) Read() (string, error) {
	s, err := clipboard.ReadAll()
	return s, errors.Wrap(err, "read system clipboard")
}

func (System) Write(s string) error {
	return errors.Wrap(clipboard.WriteAll(s), "write system clipboard")
}

// Memory is an in-process provider used in tests and headless hosts.
type Memory struct {
	Content string
}

func (m *Memory) Read() (string, error) {
	return m.Content, nil
}

func (m *Memory) Write(s string) error {
	m.Content = s
	return nil
}
