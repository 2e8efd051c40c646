package parser

import (
	"go.birchlake.dev/xjs/document"
	"go.birchlake.dev/xjs/reader"
	"go.birchlake.dev/xjs/token"
)

// ParseStrict parses src under the standard JSON grammar: no comments,
// no unquoted strings or keys, no trailing commas, and no open (brace-
// less) root. The resulting tree carries no trivia.
func ParseStrict(src string) (*document.Value, error) {
	tz := token.NewTokenizer(reader.NewFromString(src))

	root, err := token.Containerize(tz)
	if err != nil {
		return nil, err
	}

	sp := &strictParser{it: token.NewStream(root, src).Iterator()}

	val, err := sp.value()
	if err != nil {
		return nil, err
	}

	sp.skipWhitespace()

	if tok := sp.it.Peek(0); tok != nil {
		return nil, syntaxErrorAt(tok, "Unexpected '"+tok.Text+"'")
	}

	return val, nil
}

type strictParser struct {
	it *token.Iterator
}

func (sp *strictParser) skipWhitespace() {
	for {
		tok := sp.it.Peek(0)
		if tok == nil || tok.Kind != token.Break {
			return
		}

		sp.it.Next()
	}
}

func (sp *strictParser) next() *token.Token {
	sp.skipWhitespace()

	return sp.it.Next()
}

func (sp *strictParser) peek() *token.Token {
	sp.skipWhitespace()

	return sp.it.Peek(0)
}

func (sp *strictParser) value() (*document.Value, error) {
	tok := sp.peek()
	if tok == nil {
		return nil, syntaxErrorAt(tok, "Unexpected end of input")
	}

	switch {
	case tok.Kind == token.Comment:
		return nil, syntaxErrorAt(tok, "Unexpected comment")
	case tok.Kind == token.Braces:
		sp.it.Next()

		return sp.object(tok)
	case tok.Kind == token.Brackets:
		sp.it.Next()

		return sp.array(tok)
	case tok.Kind == token.String:
		if tok.StringKind != document.StringDouble {
			return nil, syntaxErrorAt(tok, "Unexpected string")
		}

		sp.it.Next()

		return document.NewString(tok.StringBody, document.StringDouble), nil
	case tok.Kind == token.Number:
		sp.it.Next()

		return document.NewNumber(tok.NumberValue), nil
	case tok.Kind == token.Word:
		sp.it.Next()

		switch tok.Text {
		case "true":
			return document.NewBool(true), nil
		case "false":
			return document.NewBool(false), nil
		case "null":
			return document.NewNull(), nil
		default:
			return nil, syntaxErrorAt(tok, "Unexpected '"+tok.Text+"'")
		}
	default:
		return nil, syntaxErrorAt(tok, "Unexpected '"+tok.Text+"'")
	}
}

func (sp *strictParser) object(container *token.Token) (*document.Value, error) {
	obj := document.NewObject()

	inner := &strictParser{it: sp.it.Enter(container).Iterator()}

	if tok := inner.peek(); tok == nil {
		return obj, nil
	}

	for {
		keyTok := inner.next()
		if keyTok == nil || keyTok.Kind != token.String || keyTok.StringKind != document.StringDouble {
			return nil, syntaxErrorAt(keyTok, "Expected string key")
		}

		if err := inner.expect(":"); err != nil {
			return nil, err
		}

		val, err := inner.value()
		if err != nil {
			return nil, err
		}

		obj.AddMember(keyTok.StringBody, val)

		tok := inner.next()

		switch {
		case tok == nil:
			return obj, nil
		case tok.Kind == token.Symbol && tok.Text == ",":
			continue
		default:
			return nil, syntaxErrorAt(tok, "Expected ','")
		}
	}
}

func (sp *strictParser) array(container *token.Token) (*document.Value, error) {
	arr := document.NewArray()

	inner := &strictParser{it: sp.it.Enter(container).Iterator()}

	if tok := inner.peek(); tok == nil {
		return arr, nil
	}

	for {
		val, err := inner.value()
		if err != nil {
			return nil, err
		}

		arr.Add(val)

		tok := inner.next()

		switch {
		case tok == nil:
			return arr, nil
		case tok.Kind == token.Symbol && tok.Text == ",":
			continue
		default:
			return nil, syntaxErrorAt(tok, "Expected ','")
		}
	}
}

func (sp *strictParser) expect(sym string) error {
	tok := sp.next()
	if tok == nil || tok.Kind != token.Symbol || tok.Text != sym {
		return syntaxErrorAt(tok, "Expected '"+sym+"'")
	}

	return nil
}
