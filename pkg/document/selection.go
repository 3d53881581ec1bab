package document

import (
	"github.com/blockpad/blockpad/pkg/block"
)

// Selection is a set of block ids interpreted against the document-order
// flattening of a page's forest. The anchor marks the range-selection pivot.
type Selection struct {
	ids    map[string]struct{}
	anchor string
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

func (s *Selection) Len() int { return len(s.ids) }
func (s *Selection) Empty() bool { return len(s.ids) == 0 }

func (s *Selection) Anchor() string { return s.anchor }

func (s *Selection) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// IDs returns a copy of the selected id set.
func (s *Selection) IDs() map[string]struct{} {
	out := make(map[string]struct{}, len(s.ids))
	for id := range s.ids {
		out[id] = struct{}{}
	}
	return out
}

// Select makes id the sole selected block and the anchor.
func (s *Selection) Select(id string) {
	s.ids = map[string]struct{}{id: {}}
	s.anchor = id
}

// Add extends the set. The first added id becomes the anchor.
func (s *Selection) Add(id string) {
	if len(s.ids) == 0 {
		s.anchor = id
	}
	s.ids[id] = struct{}{}
}

// ToggleMember adds or removes id from the set.
func (s *Selection) ToggleMember(id string) {
	if s.Contains(id) {
		delete(s.ids, id)
		if s.anchor == id {
			s.anchor = ""
			for remaining := range s.ids {
				s.anchor = remaining
				break
			}
		}
		return
	}
	s.Add(id)
}

func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
	s.anchor = ""
}

// SelectRange selects the contiguous inclusive sub-range between the anchor
// and target in document order. Direction-agnostic: it works whether the
// anchor comes before or after the target. Ids missing from the tree leave
// the selection untouched.
func (s *Selection) SelectRange(tree []*block.Block, anchorID, targetID string) {
	flat := block.Flatten(tree)
	ai, ti := -1, -1
	for i, b := range flat {
		if b.ID == anchorID {
			ai = i
		}
		if b.ID == targetID {
			ti = i
		}
	}
	if ai < 0 || ti < 0 {
		return
	}
	lo, hi := ai, ti
	if lo > hi {
		lo, hi = hi, lo
	}
	s.ids = make(map[string]struct{}, hi-lo+1)
	for _, b := range flat[lo : hi+1] {
		s.ids[b.ID] = struct{}{}
	}
	s.anchor = anchorID
}

// CollectOrdered returns the blocks in ids in document order, skipping any
// block whose ancestor is also selected: selecting a toggle and its children
// yields only the toggle, whose children travel with it structurally.
func CollectOrdered(tree []*block.Block, ids map[string]struct{}) []*block.Block {
	var out []*block.Block
	collectOrdered(tree, ids, &out)
	return out
}

func collectOrdered(tree []*block.Block, ids map[string]struct{}, out *[]*block.Block) {
	for _, b := range tree {
		if _, ok := ids[b.ID]; ok {
			*out = append(*out, b)
			continue // descendants travel with the ancestor
		}
		collectOrdered(b.Children, ids, out)
	}
}
