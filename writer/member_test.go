package writer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.birchlake.dev/xjs/document"
	"go.birchlake.dev/xjs/writer"
)

// TestWriteMember_ValueComment_NegativeLinesBetween pins the
// resolution: a VALUE comment with LinesBetween left unspecified
// ([document.UnspecifiedLines]) is written inline, not forced onto its own
// line, as long as its style doesn't itself consume to end of line.
func TestWriteMember_ValueComment_NegativeLinesBetween(t *testing.T) {
	obj := document.NewObject()
	val := document.NewNumber(5)

	buf := document.NewCommentBuffer()
	buf.Append(document.Comment{Style: document.CommentBlock, Text: "inline"})
	val.Trivia.SetComment(document.CommentValue, buf)

	obj.AddMember("k", val)

	out := writer.WriteXJS(obj, writer.NewOptions())
	assert.Equal(t, "k: /* inline */ 5", out)
}

func TestWriteMember_ValueComment_PositiveLinesBetweenForcesBreak(t *testing.T) {
	obj := document.NewObject()
	val := document.NewNumber(9)

	buf := document.NewCommentBuffer()
	buf.Append(document.Comment{Style: document.CommentBlock, Text: "note"})
	val.Trivia.SetComment(document.CommentValue, buf)
	val.Trivia.LinesBetween = 1

	obj.AddMember("k", val)

	out := writer.WriteXJS(obj, writer.NewOptions())
	assert.Equal(t, "k:\n  /* note */\n  9", out)
}

// TestWriteMember_ValueComment_LineStyleForcesBreak covers the case the
// inline default alone can't handle: a line/hash-style comment
// consumes to end of line, so it cannot share a line with the value that
// follows it even when lines_between was left unspecified.
func TestWriteMember_ValueComment_LineStyleForcesBreak(t *testing.T) {
	obj := document.NewObject()
	val := document.NewNumber(5)

	buf := document.NewCommentBuffer()
	buf.Append(document.Comment{Style: document.CommentLine, Text: "note"})
	val.Trivia.SetComment(document.CommentValue, buf)

	obj.AddMember("k", val)

	out := writer.WriteXJS(obj, writer.NewOptions())
	assert.Equal(t, "k:\n  // note\n  5", out)
}

func TestWriteMember_HeaderComment(t *testing.T) {
	obj := document.NewObject()
	val := document.NewNumber(1)

	buf := document.NewCommentBuffer()
	buf.Append(document.Comment{Style: document.CommentLine, Text: "about a"})
	val.Trivia.SetComment(document.CommentHeader, buf)

	obj.AddMember("a", val)

	out := writer.WriteXJS(obj, writer.NewOptions())
	assert.Equal(t, "// about a\na: 1", out)
}

func TestWriteMember_EOLComment(t *testing.T) {
	obj := document.NewObject()
	val := document.NewNumber(1)

	buf := document.NewCommentBuffer()
	buf.Append(document.Comment{Style: document.CommentLine, Text: "trailing"})
	val.Trivia.SetComment(document.CommentEOL, buf)

	obj.AddMember("a", val)

	out := writer.WriteXJS(obj, writer.NewOptions())
	assert.Equal(t, "a: 1 // trailing", out)
}
