package token

import (
	"go.birchlake.dev/xjs/document"
	"go.birchlake.dev/xjs/reader"
)

// Tokenizer produces a lazy sequence of flat tokens from a [reader.Reader].
type Tokenizer struct {
	r *reader.Reader
}

// NewTokenizer returns a Tokenizer reading from r.
func NewTokenizer(r *reader.Reader) *Tokenizer {
	return &Tokenizer{r: r}
}

// Next returns the next token, skipping insignificant whitespace (spaces,
// tabs, and carriage returns). It returns nil, nil once the input is
// exhausted.
func (t *Tokenizer) Next() (*Token, error) {
	r := t.r

	for {
		if r.AtEOF() {
			return nil, nil
		}

		switch c := r.Current(); {
		case c == ' ' || c == '\t' || c == '\r':
			_, _ = r.Read()
		case c == '\n':
			return t.readBreak()
		case c == '/' && r.Peek(1) == '/':
			return t.readLineComment()
		case c == '/' && r.Peek(1) == '*':
			return t.readBlockComment()
		case c == '#':
			return t.readHashComment()
		case c == '"' || c == '\'':
			return t.readString(c)
		case c == '-' && isASCIIDigit(r.Peek(1)), isASCIIDigit(c):
			return t.readNumber()
		case isWordStart(c):
			return t.readWord()
		default:
			return t.readSymbol()
		}
	}
}

func (t *Tokenizer) start() (idx, line, col int) {
	return t.r.Index(), t.r.Line(), t.r.Column()
}

func (t *Tokenizer) finish(kind Kind, idx, line, col int) *Token {
	r := t.r

	return &Token{
		Kind: kind,
		Span: Span{Start: idx, End: r.Index(), Line: line, LastLine: r.Line(), Column: col},
		Text: r.Slice(idx, r.Index()),
	}
}

func (t *Tokenizer) readBreak() (*Token, error) {
	idx, line, col := t.start()

	if _, err := t.r.Read(); err != nil {
		return nil, err
	}

	return t.finish(Break, idx, line, col), nil
}

func (t *Tokenizer) readSymbol() (*Token, error) {
	idx, line, col := t.start()

	if _, err := t.r.Read(); err != nil {
		return nil, err
	}

	return t.finish(Symbol, idx, line, col), nil
}

func (t *Tokenizer) readWord() (*Token, error) {
	idx, line, col := t.start()

	for isWordChar(t.r.Current()) {
		if _, err := t.r.Read(); err != nil {
			return nil, err
		}
	}

	return t.finish(Word, idx, line, col), nil
}

func (t *Tokenizer) readNumber() (*Token, error) {
	idx, line, col := t.start()

	raw, value, valid := t.r.ReadNumber()

	tok := t.finish(Number, idx, line, col)
	tok.Text = raw
	tok.NumberValue = value
	tok.NumberValid = valid

	if !valid {
		tok.Kind = Word
	}

	return tok, nil
}

func (t *Tokenizer) readString(quote rune) (*Token, error) {
	idx, line, col := t.start()

	triple := quote == '\'' && t.r.Peek(1) == '\'' && t.r.Peek(2) == '\''
	if triple {
		_, _ = t.r.Read()
		_, _ = t.r.Read()
		_, _ = t.r.Read()

		body, err := t.r.ReadMultilineString(col)
		if err != nil {
			return nil, err
		}

		tok := t.finish(String, idx, line, col)
		tok.StringKind = document.StringMulti
		tok.StringBody = body

		return tok, nil
	}

	if _, err := t.r.Read(); err != nil {
		return nil, err
	}

	body, err := t.r.ReadQuoted(quote)
	if err != nil {
		return nil, err
	}

	tok := t.finish(String, idx, line, col)

	if quote == '"' {
		tok.StringKind = document.StringDouble
	} else {
		tok.StringKind = document.StringSingle
	}

	tok.StringBody = body

	return tok, nil
}

func (t *Tokenizer) readLineComment() (*Token, error) {
	idx, line, col := t.start()

	_, _ = t.r.Read()
	_, _ = t.r.Read()

	doc, body := t.r.ReadLineComment()

	tok := t.finish(Comment, idx, line, col)
	tok.CommentBody = body

	if doc {
		tok.CommentStyle = document.CommentLineDoc
	} else {
		tok.CommentStyle = document.CommentLine
	}

	return tok, nil
}

func (t *Tokenizer) readHashComment() (*Token, error) {
	idx, line, col := t.start()

	_, _ = t.r.Read()

	body := t.r.ReadHashComment()

	tok := t.finish(Comment, idx, line, col)
	tok.CommentStyle = document.CommentHash
	tok.CommentBody = body

	return tok, nil
}

func (t *Tokenizer) readBlockComment() (*Token, error) {
	idx, line, col := t.start()

	_, _ = t.r.Read()
	_, _ = t.r.Read()

	doc := t.r.Current() == '*' && t.r.Peek(1) != '/'
	if doc {
		_, _ = t.r.Read()
	}

	body, err := t.r.ReadBlockComment()
	if err != nil {
		return nil, err
	}

	tok := t.finish(Comment, idx, line, col)
	tok.CommentBody = body

	if doc {
		tok.CommentStyle = document.CommentMultilineDoc
	} else {
		tok.CommentStyle = document.CommentBlock
	}

	return tok, nil
}

func isASCIIDigit(c rune) bool { return c >= '0' && c <= '9' }

func isWordStart(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordChar(c rune) bool {
	return isWordStart(c) || isASCIIDigit(c)
}
