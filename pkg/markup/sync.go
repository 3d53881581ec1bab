package markup

import (
	"github.com/blockpad/blockpad/pkg/richtext"
)

// Surface is the minimal handle the codec needs on a concrete editable
// surface: read the current markup tree and replace it wholesale.
type Surface interface {
	Root() *Node
	SetRoot(*Node)
}

// Sync reconciles the surface with runs. When the surface already encodes
// the same normalized run list it is left untouched, so live cursor and
// selection state survive no-op updates; otherwise the surface is rebuilt
// wholesale from ToMarkup. Reports whether a rebuild happened.
func Sync(surface Surface, runs []richtext.Run) bool {
	current := FromMarkup(surface.Root())
	if richtext.Equal(current, runs) {
		return false
	}
	surface.SetRoot(ToMarkup(runs))
	return true
}

// BufferSurface is an in-memory Surface. Hosts without a real widget (and
// tests) use it directly.
type BufferSurface struct {
	root *Node

	// Rebuilds counts SetRoot calls; the idempotence contract is asserted
	// against it.
	Rebuilds int
}

func NewBufferSurface() *BufferSurface {
	return &BufferSurface{root: NewRoot()}
}

func (s *BufferSurface) Root() *Node {
	return s.root
}

func (s *BufferSurface) SetRoot(root *Node) {
	s.root = root
	s.Rebuilds++
}
