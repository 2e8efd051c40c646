package token

import "go.birchlake.dev/xjs/reader"

type openFrame struct {
	kind     Kind
	open     *Token
	children []*Token
}

// Containerize drains every token from tz and groups bracketed runs into
// nested BRACES/BRACKETS/PARENTHESES tokens, returning the single OPEN
// container that spans the whole input. This builds the full tree
// eagerly rather than lazily, which is a simplification the core's
// Non-goals (no streaming of unbounded documents) make safe; see
// DESIGN.md.
func Containerize(tz *Tokenizer) (*Token, error) {
	root := &openFrame{kind: Open}
	stack := []*openFrame{root}

	for {
		tok, err := tz.Next()
		if err != nil {
			return nil, err
		}

		if tok == nil {
			break
		}

		if tok.Kind == Symbol {
			if k, ok := openerKind(tok.Text); ok {
				stack = append(stack, &openFrame{kind: k, open: tok})
				continue
			}

			if k, ok := closerKind(tok.Text); ok {
				top := stack[len(stack)-1]
				if len(stack) == 1 || top.kind != k {
					return nil, &reader.SyntaxError{
						Line: tok.Span.Line, Column: tok.Span.Column,
						Message: "Unexpected '" + tok.Text + "'",
					}
				}

				container := &Token{
					Kind: top.kind,
					Span: Span{
						Start: top.open.Span.Start, End: tok.Span.End,
						Line: top.open.Span.Line, LastLine: tok.Span.LastLine,
						Column: top.open.Span.Column,
					},
					Children: top.children,
				}

				stack = stack[:len(stack)-1]
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, container)

				continue
			}
		}

		top := stack[len(stack)-1]
		top.children = append(top.children, tok)
	}

	if len(stack) != 1 {
		unclosed := stack[len(stack)-1]

		return nil, &reader.SyntaxError{
			Line: unclosed.open.Span.Line, Column: unclosed.open.Span.Column,
			Message: "Expected '" + closerSymbol(unclosed.kind) + "'",
		}
	}

	return &Token{Kind: Open, Children: root.children}, nil
}

func openerKind(sym string) (Kind, bool) {
	switch sym {
	case "{":
		return Braces, true
	case "[":
		return Brackets, true
	case "(":
		return Parentheses, true
	default:
		return 0, false
	}
}

func closerKind(sym string) (Kind, bool) {
	switch sym {
	case "}":
		return Braces, true
	case "]":
		return Brackets, true
	case ")":
		return Parentheses, true
	default:
		return 0, false
	}
}

func closerSymbol(k Kind) string {
	switch k {
	case Braces:
		return "}"
	case Brackets:
		return "]"
	case Parentheses:
		return ")"
	default:
		return ""
	}
}
