package implicit

import "strings"

// Context distinguishes the two places implicit text can appear, which
// differ in which characters must be escaped to stay unquoted.
type Context int

const (
	// Key is an object member's implicit key; ':' must be escaped.
	Key Context = iota
	// Value is an implicit value; '\n' and ',' must be escaped.
	Value
)

// Escape round-trips a balanced string for writing unquoted in ctx,
// escaping the delimiter characters that context reserves. If text is
// not [IsBalanced], it is returned unchanged: callers fall back to
// quoting imbalanced text rather than relying on escaping to save it.
func Escape(text string, ctx Context) string {
	if !IsBalanced(text) {
		return text
	}

	var b strings.Builder

	b.Grow(len(text))

	for _, c := range text {
		if needsEscape(c, ctx) {
			b.WriteByte('\\')
		}

		b.WriteRune(c)
	}

	return b.String()
}

func needsEscape(c rune, ctx Context) bool {
	switch ctx {
	case Key:
		return c == ':'
	case Value:
		return c == '\n' || c == ','
	default:
		return false
	}
}

// Unescape drops the backslash from \c for c in {\n, }, ], ), :, ,},
// the continuation-escape set the reader recognizes inside an implicit
// run.
func Unescape(text string) string {
	runes := []rune(text)

	var b strings.Builder

	b.Grow(len(runes))

	for i := 0; i < len(runes); i++ {
		if runes[i] == '\\' && i+1 < len(runes) && isContinuationEscape(runes[i+1]) {
			i++
		}

		b.WriteRune(runes[i])
	}

	return b.String()
}

func isContinuationEscape(c rune) bool {
	switch c {
	case '\n', '}', ']', ')', ':', ',':
		return true
	default:
		return false
	}
}
