package token

import "go.birchlake.dev/xjs/document"

// Kind identifies what a [Token] represents.
type Kind int

const (
	// Word is a bareword run: [A-Za-z_][A-Za-z0-9_]*.
	Word Kind = iota
	// Number is a valid numeric literal. A degraded one is emitted as a
	// [Word] with [Token.NumberValid] false.
	Number
	// Symbol is a single non-word, non-whitespace rune.
	Symbol
	// String is a quoted string literal ('…', "…", or '''…''').
	String
	// Comment is a //, ///, #, /* */, or /** */ comment.
	Comment
	// Break is a single line break (\n or \r\n).
	Break
	// Braces is a {…} container.
	Braces
	// Brackets is a […] container.
	Brackets
	// Parentheses is a (…) container, opaque to the document parser.
	Parentheses
	// Open is the implicit outermost container spanning the whole input.
	Open
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "WORD"
	case Number:
		return "NUMBER"
	case Symbol:
		return "SYMBOL"
	case String:
		return "STRING"
	case Comment:
		return "COMMENT"
	case Break:
		return "BREAK"
	case Braces:
		return "BRACES"
	case Brackets:
		return "BRACKETS"
	case Parentheses:
		return "PARENTHESES"
	case Open:
		return "OPEN"
	default:
		return "UNKNOWN"
	}
}

// IsContainer reports whether k groups child tokens.
func (k Kind) IsContainer() bool {
	switch k {
	case Braces, Brackets, Parentheses, Open:
		return true
	default:
		return false
	}
}

// Span is a token's source extent, in the same line/UTF-16-column units
// as [go.birchlake.dev/xjs/reader.Reader].
type Span struct {
	Start, End     int
	Line, LastLine int
	Column         int
}

// Token is one lexical unit, flat or (after containerization) a
// container grouping its children.
type Token struct {
	Kind Kind
	Span Span
	Text string

	NumberValue float64
	NumberValid bool

	StringKind document.StringKind
	StringBody string

	CommentStyle document.CommentStyle
	CommentBody  string

	// Children holds a container token's contents, in source order,
	// excluding the opening/closing SYMBOL delimiters.
	Children []*Token
}

// Lookup returns the first SYMBOL child whose text equals sym. If exact
// is true, a match is rejected when it is immediately adjacent (no
// whitespace, comment, or break between) to another SYMBOL token — used
// to distinguish a standalone ':' from one half of a compound symbol
// such as '::'.
func (t *Token) Lookup(sym string, exact bool) *Token {
	for i, child := range t.Children {
		if child.Kind != Symbol || child.Text != sym {
			continue
		}

		if !exact {
			return child
		}

		if i > 0 && t.Children[i-1].Kind == Symbol && adjacent(t.Children[i-1], child) {
			continue
		}

		if i+1 < len(t.Children) && t.Children[i+1].Kind == Symbol && adjacent(child, t.Children[i+1]) {
			continue
		}

		return child
	}

	return nil
}

func adjacent(a, b *Token) bool {
	return a.Span.End == b.Span.Start
}
