// Package richtext models styled text as a flat list of annotation runs.
//
// A run is a maximal span of text sharing one exact annotation set. Every
// producer in this module upholds a single invariant: a run list never
// contains two adjacent runs with identical normalized annotations. Callers
// merge before emitting, typically via MergeAdjacent.
package richtext

// Annotations is the style set attached to a run.
type Annotations struct {
	Bold          bool  `json:"bold"`
	Italic        bool  `json:"italic"`
	Underline     bool  `json:"underline"`
	Strikethrough bool  `json:"strikethrough"`
	Code          bool  `json:"code"`
	Color         Color `json:"color"`
}

func (a Annotations) normalized() Annotations {
	a.Color = a.Color.Normalized()
	return a
}

// Equal reports whether two annotation sets are identical after
// normalization.
func (a Annotations) Equal(other Annotations) bool {
	return a.normalized() == other.normalized()
}

// Run is one styled span of text. Content may contain embedded "\n"
// characters representing soft line breaks; a line break is content, not an
// annotation boundary.
type Run struct {
	Content     string      `json:"content"`
	Annotations Annotations `json:"annotations"`
	Link        string      `json:"link,omitempty"`
	PlainText   string      `json:"plainText"`
}

// Normalize returns a copy of runs with every annotation field filled with
// its default and PlainText mirroring Content. The input is not modified.
func Normalize(runs []Run) []Run {
	if runs == nil {
		return nil
	}
	out := make([]Run, len(runs))
	for i, r := range runs {
		r.Annotations = r.Annotations.normalized()
		r.PlainText = r.Content
		out[i] = r
	}
	return out
}

// Equal reports structural equality of two run lists after normalization.
// The editable surface uses it to decide whether a re-render is a no-op.
func Equal(a, b []Run) bool {
	an, bn := Normalize(a), Normalize(b)
	if len(an) != len(bn) {
		return false
	}
	for i := range an {
		if an[i] != bn[i] {
			return false
		}
	}
	return true
}

// FromPlainText converts s into a run list with default annotations.
// The empty string yields an empty list.
func FromPlainText(s string) []Run {
	if s == "" {
		return nil
	}
	return []Run{{Content: s, Annotations: Annotations{Color: ColorDefault}, PlainText: s}}
}

// PlainText concatenates the content of all runs.
func PlainText(runs []Run) string {
	var out string
	for _, r := range runs {
		out += r.Content
	}
	return out
}

// MergeAdjacent coalesces neighboring runs whose normalized annotations and
// link are identical, restoring the adjacency invariant after edits.
// Empty runs are dropped.
func MergeAdjacent(runs []Run) []Run {
	var out []Run
	for _, r := range Normalize(runs) {
		if r.Content == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Annotations == r.Annotations && out[n-1].Link == r.Link {
			out[n-1].Content += r.Content
			out[n-1].PlainText = out[n-1].Content
			continue
		}
		out = append(out, r)
	}
	return out
}

// Clone returns a deep copy of runs.
func Clone(runs []Run) []Run {
	if runs == nil {
		return nil
	}
	out := make([]Run, len(runs))
	copy(out, runs)
	return out
}

// Length returns the total content length of runs in runes.
func Length(runs []Run) int {
	n := 0
	for _, r := range runs {
		n += len([]rune(r.Content))
	}
	return n
}
