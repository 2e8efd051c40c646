package reader

import (
	"errors"
	"io"
	"unicode/utf16"
	"unicode/utf8"
)

// EOF is the sentinel rune returned by [Reader.Current] and [Reader.Peek]
// once the input is exhausted.
const EOF rune = -1

// Reader is a position-tracking cursor over a UTF-8 source, read in units
// of Unicode code points but counted in columns as UTF-16 code units (see
// package doc).
//
// The whole input is decoded up front: this core never
// streams an unbounded document, so there is no benefit to the teacher's
// fixed-capacity refill buffer beyond the one read of the underlying
// [io.Reader] that [NewFromReader] performs.
type Reader struct {
	runes []rune

	pos    int
	line   int
	column int

	captureStart int // -1 when not currently capturing
	captureSegs  []string
}

// NewFromString returns a Reader positioned at the start of s.
func NewFromString(s string) *Reader {
	return &Reader{runes: []rune(s), captureStart: -1}
}

// NewFromReader reads all of rd and returns a Reader over its contents. It
// returns an error if rd fails or the content is not valid UTF-8.
func NewFromReader(rd io.Reader) (*Reader, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(data) {
		return nil, errors.New("reader: input is not valid UTF-8")
	}

	return &Reader{runes: []rune(string(data)), captureStart: -1}, nil
}

// Current returns the rune at the cursor without consuming it, or [EOF].
func (r *Reader) Current() rune {
	return r.Peek(0)
}

// Peek returns the rune n positions ahead of the cursor (n=0 is Current)
// without consuming anything, or [EOF] past the end of input.
func (r *Reader) Peek(n int) rune {
	i := r.pos + n
	if i < 0 || i >= len(r.runes) {
		return EOF
	}

	return r.runes[i]
}

// AtEOF reports whether the cursor has reached the end of input.
func (r *Reader) AtEOF() bool {
	return r.pos >= len(r.runes)
}

// Index returns the cursor's rune offset into the source.
func (r *Reader) Index() int { return r.pos }

// Line returns the current 0-based line number.
func (r *Reader) Line() int { return r.line }

// Column returns the current 0-based column, counted in UTF-16 code units.
func (r *Reader) Column() int { return r.column }

// Slice returns the raw source text between two rune offsets, as previously
// returned by [Reader.Index].
func (r *Reader) Slice(start, end int) string {
	if start < 0 {
		start = 0
	}

	if end > len(r.runes) {
		end = len(r.runes)
	}

	if start >= end {
		return ""
	}

	return string(r.runes[start:end])
}

// Read consumes and returns the current rune, advancing line/column. It
// returns [io.EOF] once the input is exhausted.
func (r *Reader) Read() (rune, error) {
	if r.AtEOF() {
		return EOF, io.EOF
	}

	c := r.runes[r.pos]
	r.pos++

	if c == '\n' {
		r.line++
		r.column = 0
	} else {
		r.column += utf16Width(c)
	}

	return c, nil
}

// ReadIf consumes and reports true if the current rune equals c, otherwise
// leaves the cursor untouched and reports false.
func (r *Reader) ReadIf(c rune) bool {
	if r.Current() != c {
		return false
	}

	_, _ = r.Read()

	return true
}

// Expect consumes the current rune if it equals c, otherwise returns a
// SyntaxError describing what was expected.
func (r *Reader) Expect(c rune) error {
	if r.ReadIf(c) {
		return nil
	}

	return r.Expected("'" + string(c) + "'")
}

// SkipLineWhitespace consumes spaces and tabs (not newlines).
func (r *Reader) SkipLineWhitespace() {
	for r.Current() == ' ' || r.Current() == '\t' {
		_, _ = r.Read()
	}
}

// SkipToNewline consumes runes up to, but not including, the next '\n' or
// EOF.
func (r *Reader) SkipToNewline() {
	for r.Current() != '\n' && r.Current() != EOF {
		_, _ = r.Read()
	}
}

// StartCapture begins (or resumes) collecting raw source text from the
// current position.
func (r *Reader) StartCapture() {
	r.captureStart = r.pos
}

// PauseCapture commits the text captured since the last StartCapture as a
// segment and stops capturing, without discarding prior segments. Use this
// immediately before substituting a decoded literal (e.g. an escape
// sequence) for raw source text, then call StartCapture again to resume.
func (r *Reader) PauseCapture() {
	if r.captureStart < 0 {
		return
	}

	r.captureSegs = append(r.captureSegs, r.Slice(r.captureStart, r.pos))
	r.captureStart = -1
}

// appendLiteral appends text as a capture segment verbatim, bypassing the
// source buffer. Used to splice in decoded escape sequences.
func (r *Reader) appendLiteral(text string) {
	r.captureSegs = append(r.captureSegs, text)
}

// EndCapture commits any open capture segment, joins every segment
// collected since the capture began, and resets the buffer.
func (r *Reader) EndCapture() string {
	r.PauseCapture()

	segs := r.captureSegs
	r.captureSegs = nil

	switch len(segs) {
	case 0:
		return ""
	case 1:
		return segs[0]
	default:
		total := 0
		for _, s := range segs {
			total += len(s)
		}

		out := make([]byte, 0, total)
		for _, s := range segs {
			out = append(out, s...)
		}

		return string(out)
	}
}

func utf16Width(c rune) int {
	if c1, c2 := utf16.EncodeRune(c); c1 != utf8.RuneError || c2 != utf8.RuneError {
		return 2
	}

	return 1
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }
