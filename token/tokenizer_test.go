package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.birchlake.dev/xjs/document"
	"go.birchlake.dev/xjs/reader"
	"go.birchlake.dev/xjs/token"
)

func tokenize(t *testing.T, src string) []*token.Token {
	t.Helper()

	tz := token.NewTokenizer(reader.NewFromString(src))

	var toks []*token.Token

	for {
		tok, err := tz.Next()
		require.NoError(t, err)

		if tok == nil {
			break
		}

		toks = append(toks, tok)
	}

	return toks
}

func TestTokenizer_WordsAndSymbols(t *testing.T) {
	toks := tokenize(t, "foo: bar")

	require.Len(t, toks, 3)
	assert.Equal(t, token.Word, toks[0].Kind)
	assert.Equal(t, "foo", toks[0].Text)
	assert.Equal(t, token.Symbol, toks[1].Kind)
	assert.Equal(t, ":", toks[1].Text)
	assert.Equal(t, token.Word, toks[2].Kind)
	assert.Equal(t, "bar", toks[2].Text)
}

func TestTokenizer_SkipsInsignificantWhitespace(t *testing.T) {
	toks := tokenize(t, "a   \t  b")

	require.Len(t, toks, 2)
	assert.Equal(t, "a", toks[0].Text)
	assert.Equal(t, "b", toks[1].Text)
}

func TestTokenizer_Break(t *testing.T) {
	toks := tokenize(t, "a\nb")

	require.Len(t, toks, 3)
	assert.Equal(t, token.Break, toks[1].Kind)
}

func TestTokenizer_Number(t *testing.T) {
	toks := tokenize(t, "42")

	require.Len(t, toks, 1)
	assert.Equal(t, token.Number, toks[0].Kind)
	assert.True(t, toks[0].NumberValid)
	assert.InEpsilon(t, 42.0, toks[0].NumberValue, 0)
}

func TestTokenizer_DegradedNumberBecomesWord(t *testing.T) {
	toks := tokenize(t, "007")

	require.Len(t, toks, 1)
	assert.Equal(t, token.Word, toks[0].Kind)
	assert.Equal(t, "007", toks[0].Text)
}

func TestTokenizer_StringDouble(t *testing.T) {
	toks := tokenize(t, `"hi"`)

	require.Len(t, toks, 1)
	assert.Equal(t, token.String, toks[0].Kind)
	assert.Equal(t, document.StringDouble, toks[0].StringKind)
	assert.Equal(t, "hi", toks[0].StringBody)
}

func TestTokenizer_StringMulti(t *testing.T) {
	toks := tokenize(t, "'''one line'''")

	require.Len(t, toks, 1)
	assert.Equal(t, document.StringMulti, toks[0].StringKind)
	assert.Equal(t, "one line", toks[0].StringBody)
}

func TestTokenizer_LineComment(t *testing.T) {
	toks := tokenize(t, "// hi\n")

	require.Len(t, toks, 2)
	assert.Equal(t, token.Comment, toks[0].Kind)
	assert.Equal(t, document.CommentLine, toks[0].CommentStyle)
	assert.Equal(t, "hi", toks[0].CommentBody)
}

func TestTokenizer_LineDocComment(t *testing.T) {
	toks := tokenize(t, "/// doc\n")

	require.Len(t, toks, 2)
	assert.Equal(t, document.CommentLineDoc, toks[0].CommentStyle)
	assert.Equal(t, "doc", toks[0].CommentBody)
}

func TestTokenizer_HashComment(t *testing.T) {
	toks := tokenize(t, "# hi\n")

	require.Len(t, toks, 2)
	assert.Equal(t, document.CommentHash, toks[0].CommentStyle)
	assert.Equal(t, "hi", toks[0].CommentBody)
}

func TestTokenizer_BlockComment(t *testing.T) {
	toks := tokenize(t, "/* hi */")

	require.Len(t, toks, 1)
	assert.Equal(t, document.CommentBlock, toks[0].CommentStyle)
	assert.Equal(t, "hi", toks[0].CommentBody)
}

func TestTokenizer_MultilineDocComment(t *testing.T) {
	toks := tokenize(t, "/** hi */")

	require.Len(t, toks, 1)
	assert.Equal(t, document.CommentMultilineDoc, toks[0].CommentStyle)
	assert.Equal(t, "hi", toks[0].CommentBody)
}

func TestTokenizer_NegativeNumber(t *testing.T) {
	toks := tokenize(t, "-12")

	require.Len(t, toks, 1)
	assert.Equal(t, token.Number, toks[0].Kind)
	assert.InEpsilon(t, -12.0, toks[0].NumberValue, 0)
}

func TestTokenizer_BareMinusIsSymbol(t *testing.T) {
	toks := tokenize(t, "-a")

	require.Len(t, toks, 2)
	assert.Equal(t, token.Symbol, toks[0].Kind)
	assert.Equal(t, token.Word, toks[1].Kind)
}
