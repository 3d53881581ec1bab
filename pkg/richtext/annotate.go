package richtext

// Attr names a single boolean annotation for range operations.
type Attr int

const (
	AttrBold Attr = iota
	AttrItalic
	AttrUnderline
	AttrStrikethrough
	AttrCode
)

func (a Attr) get(an Annotations) bool {
	switch a {
	case AttrBold:
		return an.Bold
	case AttrItalic:
		return an.Italic
	case AttrUnderline:
		return an.Underline
	case AttrStrikethrough:
		return an.Strikethrough
	case AttrCode:
		return an.Code
	}
	return false
}

func (a Attr) set(an *Annotations, v bool) {
	switch a {
	case AttrBold:
		an.Bold = v
	case AttrItalic:
		an.Italic = v
	case AttrUnderline:
		an.Underline = v
	case AttrStrikethrough:
		an.Strikethrough = v
	case AttrCode:
		an.Code = v
	}
}

// splitAt splits runs so that the absolute rune offset falls on a run
// boundary. Offsets outside the text are clamped.
func splitAt(runs []Run, offset int) []Run {
	if offset <= 0 {
		return runs
	}
	var out []Run
	pos := 0
	for _, r := range runs {
		content := []rune(r.Content)
		if offset > pos && offset < pos+len(content) {
			left, right := r, r
			left.Content = string(content[:offset-pos])
			left.PlainText = left.Content
			right.Content = string(content[offset-pos:])
			right.PlainText = right.Content
			out = append(out, left, right)
		} else {
			out = append(out, r)
		}
		pos += len(content)
	}
	return out
}

// Toggle flips attr over the rune range [start, end). If every run in the
// range already carries the attribute it is removed, otherwise it is applied
// to the whole range; toggling the same range twice is an identity.
func Toggle(runs []Run, start, end int, attr Attr) []Run {
	if start >= end {
		return runs
	}
	runs = splitAt(splitAt(Normalize(runs), start), end)

	allHave := true
	pos := 0
	for _, r := range runs {
		n := len([]rune(r.Content))
		if pos < end && pos+n > start && !attr.get(r.Annotations) {
			allHave = false
		}
		pos += n
	}

	pos = 0
	for i := range runs {
		n := len([]rune(runs[i].Content))
		if pos < end && pos+n > start {
			attr.set(&runs[i].Annotations, !allHave)
		}
		pos += n
	}
	return MergeAdjacent(runs)
}

// SetColor applies color to the rune range [start, end).
func SetColor(runs []Run, start, end int, color Color) []Run {
	if start >= end {
		return runs
	}
	runs = splitAt(splitAt(Normalize(runs), start), end)
	pos := 0
	for i := range runs {
		n := len([]rune(runs[i].Content))
		if pos < end && pos+n > start {
			runs[i].Annotations.Color = color.Normalized()
		}
		pos += n
	}
	return MergeAdjacent(runs)
}
