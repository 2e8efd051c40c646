package token

// Stream wraps a container token (OPEN, BRACES, BRACKETS, or
// PARENTHESES) as an iterable sequence of its children, with access back
// to the enclosing stream and to the original source text.
type Stream struct {
	container *Token
	parent    *Stream
	source    []rune
}

// NewStream returns the root Stream over container, reading raw text
// slices (for [Iterator.GetText]) out of source.
func NewStream(container *Token, source string) *Stream {
	return &Stream{container: container, source: []rune(source)}
}

// Parent returns the stream of the container enclosing this one, or nil
// at the root.
func (s *Stream) Parent() *Stream { return s.parent }

// Container returns the container token this stream iterates.
func (s *Stream) Container() *Token { return s.container }

// Iterator returns a fresh cursor over this stream's children.
func (s *Stream) Iterator() *Iterator {
	return &Iterator{stream: s}
}

// GetText slices the original source text between two rune offsets, as
// recorded in a [Token]'s [Span].
func (s *Stream) GetText(start, end int) string {
	if start < 0 {
		start = 0
	}

	if end > len(s.source) {
		end = len(s.source)
	}

	if start >= end {
		return ""
	}

	return string(s.source[start:end])
}

func (s *Stream) enter(container *Token) *Stream {
	return &Stream{container: container, parent: s, source: s.source}
}

// Iterator is a cursor over one [Stream]'s children.
type Iterator struct {
	stream *Stream
	idx    int
}

// Next returns the current token and advances, or returns nil at the end
// of the stream.
func (it *Iterator) Next() *Token {
	tok := it.PeekDefault(0, nil)
	if tok != nil {
		it.idx++
	}

	return tok
}

// Peek returns the token k positions ahead of the cursor (k=0 is the
// next token [Iterator.Next] would return) without advancing, or nil
// past the end. Negative k peeks backward over already-visited tokens.
func (it *Iterator) Peek(k int) *Token {
	return it.PeekDefault(k, nil)
}

// PeekDefault is [Iterator.Peek] with an explicit out-of-range fallback.
func (it *Iterator) PeekDefault(k int, def *Token) *Token {
	i := it.idx + k
	children := it.stream.container.Children

	if i < 0 || i >= len(children) {
		return def
	}

	return children[i]
}

// Skip advances the cursor by k positions (k may be negative).
func (it *Iterator) Skip(k int) {
	it.idx += k

	if it.idx < 0 {
		it.idx = 0
	}
}

// SkipTo moves the cursor to an absolute index, as previously returned
// by [Iterator.Index]. Skipping past the end is a no-op cursor state
// that subsequent Next/Peek calls observe as EOF.
func (it *Iterator) SkipTo(index int) {
	it.idx = index
}

// Index returns the cursor's current position.
func (it *Iterator) Index() int { return it.idx }

// AtEnd reports whether the cursor has consumed every child.
func (it *Iterator) AtEnd() bool {
	return it.idx >= len(it.stream.container.Children)
}

// GetParent returns the stream this iterator walks.
func (it *Iterator) GetParent() *Stream { return it.stream }

// Enter returns a child Stream over container, a BRACES/BRACKETS
// container token yielded by this iterator, threading it back to this
// iterator's stream as parent.
func (it *Iterator) Enter(container *Token) *Stream {
	return it.stream.enter(container)
}
