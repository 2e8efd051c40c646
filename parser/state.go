package parser

import (
	"go.birchlake.dev/xjs/document"
	"go.birchlake.dev/xjs/reader"
	"go.birchlake.dev/xjs/token"
)

// xjsParser holds the mutable state threaded through the XJS grammar: the
// current container's iterator, the trivia accumulated since the last
// attachment point (the "formatting scratch"), a stack of enclosing
// iterators, and the shared comment buffer.
type xjsParser struct {
	stream *token.Stream
	it     *token.Iterator

	scratch document.Trivia

	linesSkipped int
	comments     *document.CommentBuffer

	stack []frame
}

type frame struct {
	stream  *token.Stream
	it      *token.Iterator
	scratch document.Trivia
}

func newXJSParser(root *token.Token, src string) *xjsParser {
	stream := token.NewStream(root, src)

	return &xjsParser{
		stream:   stream,
		it:       stream.Iterator(),
		scratch:  document.NewTrivia(),
		comments: document.NewCommentBuffer(),
	}
}

// push enters a container, saving the enclosing member's accumulated
// formatting so trivia collected inside the container cannot leak onto it.
func (p *xjsParser) push(container *token.Token) {
	p.stack = append(p.stack, frame{stream: p.stream, it: p.it, scratch: p.scratch})

	p.stream = p.it.Enter(container)
	p.it = p.stream.Iterator()
	p.scratch = document.NewTrivia()
}

func (p *xjsParser) pop() {
	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	p.stream = top.stream
	p.it = top.it
	p.scratch = top.scratch
}

// readWhitespace peeks across BREAK and COMMENT tokens, appending
// comments to the buffer and incrementing linesSkipped on BREAK. It never
// advances past a non-trivia token. If reset, linesSkipped is zeroed
// first.
func (p *xjsParser) readWhitespace(reset bool) {
	if reset {
		p.linesSkipped = 0
	}

	for {
		tok := p.it.Peek(0)
		if tok == nil {
			return
		}

		switch tok.Kind {
		case token.Break:
			p.flagLineAsSkipped()
			p.it.Next()
		case token.Comment:
			p.comments.Append(document.Comment{Style: tok.CommentStyle, Text: tok.CommentBody})
			p.it.Next()
		default:
			return
		}
	}
}

// readLineWhitespace is readWhitespace but refuses to cross a BREAK.
func (p *xjsParser) readLineWhitespace() {
	for {
		tok := p.it.Peek(0)
		if tok == nil || tok.Kind != token.Comment {
			return
		}

		p.comments.Append(document.Comment{Style: tok.CommentStyle, Text: tok.CommentBody})
		p.it.Next()
	}
}

// flagLineAsSkipped records one line break: if the comment buffer already
// holds content, it's recorded as a blank-line run there (so it stays
// correctly interleaved with the comments); otherwise it's counted in
// linesSkipped, where setAbove/setBetween/setTrailing will pick it up.
func (p *xjsParser) flagLineAsSkipped() {
	if !p.comments.IsEmpty() {
		p.comments.AppendLines(1)

		return
	}

	p.linesSkipped++
}

// setComment takes the accumulated comment buffer (applying per-type
// trimming) and, if non-empty, attaches it to the scratch under ct. Use
// this for trivia belonging to whichever value is produced next; for
// trivia belonging to the container presently under construction (its
// own INTERIOR, trailing EOL, or lines_trailing), use [xjsParser.commitCommentTo]
// / [xjsParser.commitTrailingTo] directly against that value instead.
func (p *xjsParser) setComment(ct document.CommentType) {
	p.commitCommentTo(&p.scratch, ct)
}

func (p *xjsParser) setAbove() {
	p.scratch.LinesAbove = p.linesSkipped
	p.linesSkipped = 0
}

func (p *xjsParser) setBetween() {
	p.scratch.LinesBetween = p.linesSkipped
	p.linesSkipped = 0
}

func (p *xjsParser) setTrailing() {
	p.scratch.LinesTrailing = p.linesSkipped
	p.linesSkipped = 0
}

// commitCommentTo takes the accumulated comment buffer (applying
// per-type trimming) and, if non-empty, attaches it directly to t under
// ct.
func (p *xjsParser) commitCommentTo(t *document.Trivia, ct document.CommentType) {
	if p.comments.IsEmpty() {
		return
	}

	buf := p.comments
	p.comments = document.NewCommentBuffer()

	switch ct {
	case document.CommentHeader, document.CommentInterior, document.CommentFooter:
		// These always end the line they close out, so the line break is
		// implicit on output and must not be stored twice.
		buf.TrimLastNewline()
	case document.CommentEOL:
		p.linesSkipped += buf.TakeLastLinesSkipped()
	}

	if !buf.IsEmpty() {
		t.SetComment(ct, buf)
	}
}

// commitTrailingTo moves linesSkipped directly into t.LinesTrailing.
func (p *xjsParser) commitTrailingTo(t *document.Trivia) {
	t.LinesTrailing = p.linesSkipped
	p.linesSkipped = 0
}

// takeFormatting copies the scratch's trivia into v (only fields v left
// unspecified), clears the scratch, and returns v.
func (p *xjsParser) takeFormatting(v *document.Value) *document.Value {
	v.Trivia.TakeFrom(p.scratch)
	p.scratch = document.NewTrivia()

	return v
}

func syntaxErrorAt(tok *token.Token, message string) *reader.SyntaxError {
	if tok == nil {
		return &reader.SyntaxError{Message: message}
	}

	return &reader.SyntaxError{Line: tok.Span.Line, Column: tok.Span.Column, Message: message}
}
