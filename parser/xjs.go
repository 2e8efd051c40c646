package parser

import (
	"strings"

	"go.birchlake.dev/xjs/document"
	"go.birchlake.dev/xjs/implicit"
	"go.birchlake.dev/xjs/reader"
	"go.birchlake.dev/xjs/token"
)

// Parse parses src under the full XJS grammar: comments, implicit
// strings, an open (brace-less) root, trailing commas, and newline
// delimiters are all legal.
func Parse(src string) (*document.Value, error) {
	tz := token.NewTokenizer(reader.NewFromString(src))

	root, err := token.Containerize(tz)
	if err != nil {
		return nil, err
	}

	p := newXJSParser(root, src)

	if colon := root.Lookup(":", true); colon != nil {
		return p.parseOpenRoot(root)
	}

	return p.parseClosedRoot(root)
}

func (p *xjsParser) parseOpenRoot(root *token.Token) (*document.Value, error) {
	rootVal := document.NewObject()

	p.readWhitespace(true)

	if head := p.comments.TakeOpenHeader(); head != nil {
		above := p.linesSkipped
		popped := head.TakeLastLinesSkipped()

		rootVal.Trivia.SetComment(document.CommentHeader, head)
		rootVal.Trivia.LinesAbove = above
		p.linesSkipped = popped - 1
	}

	for {
		p.readWhitespace(false)

		if p.it.Peek(0) == nil {
			break
		}

		delim, err := p.readNextMember(rootVal)
		if err != nil {
			return nil, err
		}

		if !delim {
			break
		}
	}

	p.comments.PrependLines(p.linesSkipped)
	p.linesSkipped = 0
	p.setComment(document.CommentFooter)
	p.setTrailing()

	if tok := p.it.Peek(0); tok != nil {
		return nil, syntaxErrorAt(tok, "Unexpected '"+tok.Text+"'")
	}

	p.takeFormatting(rootVal)

	return rootVal, nil
}

func (p *xjsParser) parseClosedRoot(root *token.Token) (*document.Value, error) {
	// The outermost container's brace/bracket pair, if present, was
	// already grouped into a single BRACES/BRACKETS child token by
	// containerization, so readValue below consumes it directly; there
	// is no separate "opener" token left to skip at this level.
	p.readWhitespace(true)
	p.setComment(document.CommentHeader)
	p.setAbove()

	val, err := p.readValue(0)
	if err != nil {
		return nil, err
	}

	p.readWhitespace(false)
	p.comments.PrependLines(p.linesSkipped)
	p.linesSkipped = 0
	p.setComment(document.CommentFooter)

	if tok := p.it.Peek(0); tok != nil {
		return nil, syntaxErrorAt(tok, "Unexpected '"+tok.Text+"'")
	}

	p.takeFormatting(val)

	return val, nil
}

// readValue reads one value at the current cursor position. offset is
// the column the value (or its enclosing key) started at, used to
// normalize multi-line implicit text.
func (p *xjsParser) readValue(offset int) (*document.Value, error) {
	tok := p.it.Peek(0)

	switch {
	case tok == nil:
		return nil, syntaxErrorAt(tok, "Unexpected end of input")
	case tok.Kind == token.Symbol && tok.Text == ",":
		return document.NewString("", document.StringImplicit), nil
	case tok.Kind == token.Braces:
		p.it.Next()

		return p.readObject(tok)
	case tok.Kind == token.Brackets:
		p.it.Next()

		return p.readArray(tok)
	default:
		return p.readImplicit(offset)
	}
}

func (p *xjsParser) readObject(container *token.Token) (*document.Value, error) {
	obj := document.NewObject()

	p.push(container)
	p.readWhitespace(true)

	for {
		if p.it.Peek(0) == nil {
			break
		}

		delim, err := p.readNextMember(obj)
		if err != nil {
			p.pop()

			return nil, err
		}

		if !delim {
			break
		}

		p.readWhitespace(false)
	}

	p.commitCommentTo(&obj.Trivia, document.CommentInterior)
	p.commitTrailingTo(&obj.Trivia)
	p.pop()

	p.readLineWhitespace()
	p.commitCommentTo(&obj.Trivia, document.CommentEOL)

	return obj, nil
}

func (p *xjsParser) readArray(container *token.Token) (*document.Value, error) {
	arr := document.NewArray()

	p.push(container)
	p.readWhitespace(true)

	for {
		if p.it.Peek(0) == nil {
			break
		}

		delim, err := p.readNextElement(arr)
		if err != nil {
			p.pop()

			return nil, err
		}

		if !delim {
			break
		}

		p.readWhitespace(false)
	}

	p.commitCommentTo(&arr.Trivia, document.CommentInterior)
	p.commitTrailingTo(&arr.Trivia)
	p.pop()

	p.readLineWhitespace()
	p.commitCommentTo(&arr.Trivia, document.CommentEOL)

	return arr, nil
}

func (p *xjsParser) readNextMember(obj *document.Value) (bool, error) {
	p.setComment(document.CommentHeader)
	p.setAbove()

	offsetTok := p.it.Peek(0)
	if offsetTok == nil {
		return false, nil
	}

	offset := offsetTok.Span.Column

	key, err := p.readKey()
	if err != nil {
		return false, err
	}

	p.readWhitespace(false)

	if err := p.expectSymbol(":"); err != nil {
		return false, err
	}

	p.readWhitespace(false)
	p.setComment(document.CommentValue)
	p.setBetween()

	val, err := p.readValue(offset)
	if err != nil {
		return false, err
	}

	obj.AddMember(key, val)

	delim, err := p.readDelimiter()
	if err != nil {
		return false, err
	}

	p.takeFormatting(val)

	return delim, nil
}

func (p *xjsParser) readNextElement(arr *document.Value) (bool, error) {
	p.setComment(document.CommentHeader)
	p.setAbove()

	tok := p.it.Peek(0)
	offset := 0

	if tok != nil {
		offset = tok.Span.Column
	}

	val, err := p.readValue(offset)
	if err != nil {
		return false, err
	}

	arr.Add(val)

	delim, err := p.readDelimiter()
	if err != nil {
		return false, err
	}

	p.takeFormatting(val)

	return delim, nil
}

// readDelimiter consumes an optional ',', then an optional BREAK, then —
// only if that BREAK was actually present — an optional trailing ','
// (supporting a leading comma on the following line). Any of those
// present counts as a delimiter having been seen. Two bare commas with
// nothing between them are deliberately NOT collapsed into one
// delimiter: each is its own empty-element marker, as in [,,,].
func (p *xjsParser) readDelimiter() (bool, error) {
	seen := false

	if tok := p.it.Peek(0); tok != nil && tok.Kind == token.Symbol && tok.Text == "," {
		p.it.Next()

		seen = true
	}

	p.readLineWhitespace()
	p.setComment(document.CommentEOL)

	brokeLine := false

	if tok := p.it.Peek(0); tok != nil && tok.Kind == token.Break {
		p.it.Next()

		seen = true
		brokeLine = true
		p.linesSkipped++
	}

	if brokeLine {
		if tok := p.it.Peek(0); tok != nil && tok.Kind == token.Symbol && tok.Text == "," {
			p.it.Next()

			seen = true
		}
	}

	return seen, nil
}

func (p *xjsParser) expectSymbol(sym string) error {
	tok := p.it.Peek(0)
	if tok == nil || tok.Kind != token.Symbol || tok.Text != sym {
		return syntaxErrorAt(tok, "Expected '"+sym+"'")
	}

	p.it.Next()

	return nil
}

func (p *xjsParser) readKey() (string, error) {
	tok := p.it.Peek(0)

	if tok != nil && tok.Kind == token.String {
		p.it.Next()

		return tok.StringBody, nil
	}

	start, col, end, found := p.scanImplicitSpan(true)
	if !found {
		return "", syntaxErrorAt(p.it.Peek(0), "Expected ':'")
	}

	raw := p.stream.GetText(start, end)
	text := implicit.NormalizeContinuation(raw, col)

	return strings.TrimSpace(text), nil
}

// readImplicit scans an unquoted run of tokens at the current level up
// to (not including) a top-level ',', BREAK, or COMMENT, and classifies
// the resulting text as a literal, number, or implicit string.
func (p *xjsParser) readImplicit(offset int) (*document.Value, error) {
	tok := p.it.Peek(0)

	if tok != nil && tok.Kind == token.String {
		p.it.Next()

		return document.NewString(tok.StringBody, tok.StringKind), nil
	}

	if tok != nil && tok.Kind == token.Number {
		num := tok.NumberValue
		p.it.Next()

		if next := p.it.Peek(0); next == nil || next.Kind == token.Break || next.Kind == token.Comment ||
			(next.Kind == token.Symbol && next.Text == ",") {
			return document.NewNumber(num), nil
		}
		// A number token followed by more content on the same implicit
		// run (e.g. "1abc") is not numeric; re-scan as text including it.
		p.it.Skip(-1)
	}

	start, _, end, found := p.scanImplicitSpan(false)
	if !found && start == end {
		return nil, syntaxErrorAt(p.it.Peek(0), "Unexpected end of input")
	}

	raw := strings.TrimRight(p.stream.GetText(start, end), " \t")
	text := implicit.NormalizeContinuation(raw, offset)

	switch text {
	case "true":
		return document.NewBool(true), nil
	case "false":
		return document.NewBool(false), nil
	case "null":
		return document.NewNull(), nil
	}

	return document.NewString(text, document.StringImplicit), nil
}

// scanImplicitSpan advances the iterator across tokens at the current
// level, stopping (without consuming) at the terminator: ':' for a key,
// ',' / BREAK / COMMENT for a value. It returns the raw span and the
// starting token's column.
func (p *xjsParser) scanImplicitSpan(forKey bool) (start, col, end int, found bool) {
	startTok := p.it.Peek(0)
	if startTok == nil {
		return 0, 0, 0, false
	}

	start = startTok.Span.Start
	col = startTok.Span.Column
	end = start

	var prev *token.Token

	for {
		tok := p.it.Peek(0)
		if tok == nil {
			return start, col, end, false
		}

		if forKey {
			if tok.Kind == token.Symbol && tok.Text == ":" {
				return start, col, end, true
			}
		} else {
			switch {
			case tok.Kind == token.Symbol && tok.Text == ",":
				return start, col, end, true
			case tok.Kind == token.Comment:
				return start, col, end, true
			case tok.Kind == token.Break:
				if prev != nil && prev.Kind == token.Symbol && prev.Text == `\` {
					end = tok.Span.End
					prev = tok

					p.it.Next()

					continue
				}

				return start, col, end, true
			}
		}

		end = tok.Span.End
		prev = tok

		p.it.Next()
	}
}
