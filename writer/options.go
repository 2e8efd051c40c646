package writer

import "runtime"

// Options configures XJS emission (see [WriteXJS]). The zero value is not
// ready to use; call [NewOptions] for the documented defaults.
type Options struct {
	// Indent is repeated once per nesting depth.
	Indent string
	// EOL is the line terminator written between lines.
	EOL string
	// Separator is written after a delimiting comma and after a member's
	// ':' when formatting; set to "" for unformatted output.
	Separator string

	// AllowCondense honors a lines_above == 0 run by keeping siblings on
	// the same line as an opening brace/bracket instead of forcing a
	// break.
	AllowCondense bool
	// BracesSameLine keeps a non-empty container's opening brace/bracket
	// on the same line as its member key; false drops it to a fresh line
	// at the key's indent first.
	BracesSameLine bool

	// MinSpacing/MaxSpacing clamp an unspecified-or-explicit line-break
	// count between siblings; DefaultSpacing is used when the source
	// value's LinesAbove was never specified by a parser.
	MinSpacing     int
	MaxSpacing     int
	DefaultSpacing int

	// SmartSpacing keeps at least one blank line on each side of a member
	// that carries a HEADER comment or whose value is a non-empty
	// container, so that such members visually separate from plain scalar
	// members.
	SmartSpacing bool

	// OmitRootBraces writes a non-empty object root without its enclosing
	// '{' '}', as an open root.
	OmitRootBraces bool
	// OmitQuotes prefers an unquoted (IMPLICIT) rendering for strings that
	// are eligible per the implicit-text balance rules.
	OmitQuotes bool

	// OutputComments controls whether any comment trivia is written at
	// all; false drops every comment, matching the "unformatted" variant.
	OutputComments bool
}

// NewOptions returns the documented XJS writer defaults.
func NewOptions() Options {
	return Options{
		Indent:         "  ",
		EOL:            defaultEOL(),
		Separator:      " ",
		AllowCondense:  true,
		BracesSameLine: true,
		MinSpacing:     0,
		MaxSpacing:     2,
		DefaultSpacing: 0,
		SmartSpacing:   false,
		OmitRootBraces: true,
		OmitQuotes:     true,
		OutputComments: true,
	}
}

// CompactOptions returns Options tuned for dense, unformatted output: no
// indentation or separators, comments dropped, quoting left alone.
func CompactOptions() Options {
	o := NewOptions()
	o.Indent = ""
	o.Separator = ""
	o.AllowCondense = true
	o.OutputComments = false

	return o
}

func defaultEOL() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}

	return "\n"
}

// clampSpacing resolves a stored line-break count (possibly
// [document.UnspecifiedLines]) to a concrete count to write, honoring
// DefaultSpacing/MinSpacing/MaxSpacing.
func (o Options) clampSpacing(n int) int {
	if n < 0 {
		n = o.DefaultSpacing
	}

	if n < o.MinSpacing {
		n = o.MinSpacing
	}

	if o.MaxSpacing >= 0 && n > o.MaxSpacing {
		n = o.MaxSpacing
	}

	return n
}
