package document

import "strings"

// Comment is a single comment's style and body text, with line endings
// normalized to "\n" and delimiters already stripped.
type Comment struct {
	Style CommentStyle
	Text  string
}

// commentElem is one element of a [CommentBuffer]: either a comment or a
// run of blank lines (Lines >= 1).
type commentElem struct {
	comment Comment
	lines   int // 0 means "this element is a Comment, not a blank-line run"
}

func lineElem(n int) commentElem   { return commentElem{lines: n} }
func commentElemOf(c Comment) commentElem { return commentElem{comment: c, lines: 0} }

func (e commentElem) isLines() bool { return e.lines > 0 }

// CommentBuffer is an ordered, append-only sequence of comments interleaved
// with blank-line-run counts. It is the parser's attribution scratch space
// and, once attached to a [Value] under a [CommentType], the tree's
// preserved trivia.
type CommentBuffer struct {
	elems []commentElem
}

// NewCommentBuffer returns an empty buffer.
func NewCommentBuffer() *CommentBuffer {
	return &CommentBuffer{}
}

// IsEmpty reports whether the buffer holds no elements.
func (b *CommentBuffer) IsEmpty() bool {
	return b == nil || len(b.elems) == 0
}

// Len returns the number of elements (comments and blank-line runs).
func (b *CommentBuffer) Len() int {
	if b == nil {
		return 0
	}

	return len(b.elems)
}

// Append adds a comment to the end of the buffer.
func (b *CommentBuffer) Append(c Comment) {
	b.elems = append(b.elems, commentElemOf(c))
}

// AppendLines adds n blank lines to the end of the buffer, merging with a
// trailing blank-line run if one is already present.
func (b *CommentBuffer) AppendLines(n int) {
	if n <= 0 {
		return
	}

	if last := len(b.elems) - 1; last >= 0 && b.elems[last].isLines() {
		b.elems[last].lines += n

		return
	}

	b.elems = append(b.elems, lineElem(n))
}

// PrependLines adds n blank lines to the start of the buffer, merging with a
// leading blank-line run if one is already present.
func (b *CommentBuffer) PrependLines(n int) {
	if n <= 0 {
		return
	}

	if len(b.elems) > 0 && b.elems[0].isLines() {
		b.elems[0].lines += n

		return
	}

	b.elems = append([]commentElem{lineElem(n)}, b.elems...)
}

// EndsWithNewline reports whether the last element is a blank-line run,
// i.e. whether the buffer's rendered text ends with a newline of its own
// rather than a comment body.
func (b *CommentBuffer) EndsWithNewline() bool {
	if b.IsEmpty() {
		return false
	}

	return b.elems[len(b.elems)-1].isLines()
}

// TrimLastNewline decrements a trailing blank-line run by one, removing the
// element entirely if it reaches zero. It is a no-op if the buffer does not
// end with a blank-line run.
func (b *CommentBuffer) TrimLastNewline() {
	if !b.EndsWithNewline() {
		return
	}

	last := len(b.elems) - 1

	b.elems[last].lines--
	if b.elems[last].lines <= 0 {
		b.elems = b.elems[:last]
	}
}

// TakeLastLinesSkipped pops a trailing blank-line run and returns its count,
// or 0 if the buffer does not end with one.
func (b *CommentBuffer) TakeLastLinesSkipped() int {
	if !b.EndsWithNewline() {
		return 0
	}

	last := len(b.elems) - 1
	n := b.elems[last].lines
	b.elems = b.elems[:last]

	return n
}

// TakeOpenHeader finds the last blank-line gap of width >= 2 and splits the
// buffer there: everything up to and including that gap is removed from b
// and returned as a new buffer. Returns nil if no such gap exists.
//
// This is the mechanism that partitions blank-line-separated leading
// comments into a root HEADER versus the first child's HEADER.
func (b *CommentBuffer) TakeOpenHeader() *CommentBuffer {
	splitAt := -1

	for i := len(b.elems) - 1; i >= 0; i-- {
		if b.elems[i].isLines() && b.elems[i].lines >= 2 {
			splitAt = i

			break
		}
	}

	if splitAt < 0 {
		return nil
	}

	head := &CommentBuffer{elems: append([]commentElem{}, b.elems[:splitAt+1]...)}
	b.elems = b.elems[splitAt+1:]

	return head
}

// LastStyle returns the style of the buffer's last comment element,
// skipping a trailing blank-line run if present. Callers use this to tell
// whether more text can follow the rendered buffer on the same physical
// line: a line- or hash-style comment consumes to end of line, a
// block-style one does not.
func (b *CommentBuffer) LastStyle() (CommentStyle, bool) {
	for i := len(b.elems) - 1; i >= 0; i-- {
		if !b.elems[i].isLines() {
			return b.elems[i].comment.Style, true
		}
	}

	return 0, false
}

// StartsWithNewline reports whether the first element is a blank-line run,
// i.e. whether the buffer's rendered text begins on a fresh line of its own.
func (b *CommentBuffer) StartsWithNewline() bool {
	if b.IsEmpty() {
		return false
	}

	return b.elems[0].isLines()
}

// Text returns the buffer's logical text: comment bodies joined, with one
// newline per counted line break. Delimiters and indentation are not
// included; use [CommentBuffer.WriteTo] for rendered output.
func (b *CommentBuffer) Text() string {
	var out strings.Builder

	for _, e := range b.elems {
		if e.isLines() {
			for range e.lines {
				out.WriteString("\n")
			}

			continue
		}

		out.WriteString(e.comment.Text)
	}

	return out.String()
}

// Clone returns a deep copy of the buffer.
func (b *CommentBuffer) Clone() *CommentBuffer {
	if b == nil {
		return nil
	}

	return &CommentBuffer{elems: append([]commentElem{}, b.elems...)}
}

// WriteOptions configures [CommentBuffer.WriteTo].
type WriteOptions struct {
	// StyleOverride, if non-nil, replaces every comment's rendered prefix
	// with the one appropriate for this style instead of its own.
	StyleOverride *CommentStyle
	Indent        string
	Level         int
	EOL           string
	// DedentLast leaves out the indentation that normally follows a line
	// run when that run is the buffer's final element (used when the
	// caller writes its own line break and indentation next).
	DedentLast bool
}

// WriteTo renders every element of the buffer: comments per their style,
// and each blank-line run n as max(0, n-1) blank lines followed by a
// newline+indent. Comments do not render a line break of their own; the
// interleaved blank-line runs carry every break, so two comment elements
// with no run between them shared a source line and are joined by a space.
func (b *CommentBuffer) WriteTo(out *strings.Builder, opts WriteOptions) {
	if b.IsEmpty() {
		return
	}

	indent := strings.Repeat(opts.Indent, opts.Level)

	for i, e := range b.elems {
		last := i == len(b.elems)-1

		if e.isLines() {
			blanks := e.lines - 1
			for range max(blanks, 0) {
				out.WriteString(opts.EOL)
			}

			out.WriteString(opts.EOL)

			if !last || !opts.DedentLast {
				out.WriteString(indent)
			}

			continue
		}

		style := e.comment.Style
		if opts.StyleOverride != nil {
			style = *opts.StyleOverride
		}

		writeCommentBody(out, style, e.comment.Text)

		if !last && !b.elems[i+1].isLines() {
			out.WriteString(" ")
		}
	}
}

func writeCommentBody(out *strings.Builder, style CommentStyle, text string) {
	switch style {
	case CommentLine:
		writePrefixedLines(out, text, "//")
	case CommentLineDoc:
		writePrefixedLines(out, text, "///")
	case CommentHash:
		writePrefixedLines(out, text, "#")
	case CommentBlock:
		writeBlockComment(out, text, "/*", "*/")
	case CommentMultilineDoc:
		writeBlockComment(out, text, "/**", "*/")
	}
}

func writePrefixedLines(out *strings.Builder, text, prefix string) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 {
			out.WriteString("\n")
			out.WriteString(prefix)
		} else {
			out.WriteString(prefix)
		}

		if line != "" {
			out.WriteString(" ")
			out.WriteString(line)
		}
	}
}

func writeBlockComment(out *strings.Builder, text, open, close string) {
	if !strings.Contains(text, "\n") {
		out.WriteString(open)

		if text != "" {
			out.WriteString(" ")
			out.WriteString(text)
			out.WriteString(" ")
		} else {
			out.WriteString(" ")
		}

		out.WriteString(close)

		return
	}

	out.WriteString(open)
	out.WriteString("\n")

	for _, line := range strings.Split(text, "\n") {
		out.WriteString(" * ")
		out.WriteString(line)
		out.WriteString("\n")
	}

	out.WriteString(close)
}
