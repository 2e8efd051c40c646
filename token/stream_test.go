package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.birchlake.dev/xjs/token"
)

func TestStream_IteratorNextAndPeek(t *testing.T) {
	root := containerize(t, "a: 1")
	it := token.NewStream(root, "a: 1").Iterator()

	assert.Equal(t, "a", it.Peek(0).Text)
	assert.Equal(t, ":", it.Peek(1).Text)

	first := it.Next()
	assert.Equal(t, "a", first.Text)
	assert.Equal(t, 1, it.Index())
}

func TestStream_PeekDefaultPastEnd(t *testing.T) {
	root := containerize(t, "a")
	it := token.NewStream(root, "a").Iterator()

	sentinel := &token.Token{Text: "sentinel"}
	assert.Equal(t, sentinel, it.PeekDefault(5, sentinel))
}

func TestStream_SkipAndSkipTo(t *testing.T) {
	root := containerize(t, "a b c")
	it := token.NewStream(root, "a b c").Iterator()

	it.Skip(2)
	assert.Equal(t, "c", it.Next().Text)

	it.SkipTo(0)
	assert.Equal(t, "a", it.Next().Text)
}

func TestStream_NextReturnsNilAtEnd(t *testing.T) {
	root := containerize(t, "a")
	it := token.NewStream(root, "a").Iterator()

	require.NotNil(t, it.Next())
	assert.Nil(t, it.Next())
	assert.True(t, it.AtEnd())
}

func TestStream_EnterTracksParent(t *testing.T) {
	src := "{a: 1}"
	root := containerize(t, src)
	rootStream := token.NewStream(root, src)
	it := rootStream.Iterator()

	obj := it.Next()
	require.Equal(t, token.Braces, obj.Kind)

	child := it.Enter(obj)
	assert.Equal(t, rootStream, child.Parent())
}

func TestStream_GetText(t *testing.T) {
	src := "hello world"
	root := containerize(t, src)
	s := token.NewStream(root, src)

	assert.Equal(t, "hello", s.GetText(0, 5))
	assert.Equal(t, "world", s.GetText(6, 11))
}
