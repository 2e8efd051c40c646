package document

// Trivia holds the formatting metadata attached to every [Value]: line-break
// counts relative to siblings, and the comments attributed to it by
// [CommentType].
//
// The line counts are line breaks, not blank lines: 0 means the same line,
// 1 the next line, and 2 leaves one blank line in between.
//
// Negative line counts mean "unspecified; the writer should use its
// default" (see [UnspecifiedLines]).
type Trivia struct {
	// LinesAbove is the line-break count between this value (or member)
	// and the prior sibling, or the opener for a first child.
	LinesAbove int
	// LinesBetween is the line-break count between a member's key and its
	// value. Only meaningful for object members.
	LinesBetween int
	// LinesTrailing is the line-break count between a container's last
	// child and its closer.
	LinesTrailing int

	comments map[CommentType]*CommentBuffer
}

// NewTrivia returns a Trivia with all line counts unspecified.
func NewTrivia() Trivia {
	return Trivia{
		LinesAbove:    UnspecifiedLines,
		LinesBetween:  UnspecifiedLines,
		LinesTrailing: UnspecifiedLines,
	}
}

// Comment returns the buffer attached under t, if any.
func (t *Trivia) Comment(ct CommentType) (*CommentBuffer, bool) {
	if t.comments == nil {
		return nil, false
	}

	b, ok := t.comments[ct]

	return b, ok
}

// SetComment attaches buf under ct. A nil or empty buffer clears the slot.
func (t *Trivia) SetComment(ct CommentType, buf *CommentBuffer) {
	if buf.IsEmpty() {
		if t.comments != nil {
			delete(t.comments, ct)
		}

		return
	}

	if t.comments == nil {
		t.comments = make(map[CommentType]*CommentBuffer, 1)
	}

	t.comments[ct] = buf
}

// clone returns a deep copy of t.
func (t Trivia) clone() Trivia {
	out := t
	if t.comments != nil {
		out.comments = make(map[CommentType]*CommentBuffer, len(t.comments))
		for k, v := range t.comments {
			out.comments[k] = v.Clone()
		}
	}

	return out
}

// TakeFrom copies fields from scratch into t, but only for fields t left
// unspecified: line counts equal to [UnspecifiedLines], and comment slots
// not already set. This implements the "formatting scratch" merge rule used
// throughout the token parser (see [CommentType] attribution contract).
func (t *Trivia) TakeFrom(scratch Trivia) {
	if t.LinesAbove == UnspecifiedLines {
		t.LinesAbove = scratch.LinesAbove
	}

	if t.LinesBetween == UnspecifiedLines {
		t.LinesBetween = scratch.LinesBetween
	}

	if t.LinesTrailing == UnspecifiedLines {
		t.LinesTrailing = scratch.LinesTrailing
	}

	for ct, buf := range scratch.comments {
		if _, exists := t.Comment(ct); !exists {
			t.SetComment(ct, buf)
		}
	}
}
