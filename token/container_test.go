package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.birchlake.dev/xjs/reader"
	"go.birchlake.dev/xjs/token"
)

func containerize(t *testing.T, src string) *token.Token {
	t.Helper()

	tz := token.NewTokenizer(reader.NewFromString(src))
	root, err := token.Containerize(tz)
	require.NoError(t, err)

	return root
}

func TestContainerize_FlatOpenRoot(t *testing.T) {
	root := containerize(t, "a: 1")

	require.Equal(t, token.Open, root.Kind)
	assert.Len(t, root.Children, 3)
}

func TestContainerize_NestedBraces(t *testing.T) {
	root := containerize(t, "{a: 1}")

	require.Len(t, root.Children, 1)
	obj := root.Children[0]
	assert.Equal(t, token.Braces, obj.Kind)
	assert.Len(t, obj.Children, 3)
}

func TestContainerize_Brackets(t *testing.T) {
	root := containerize(t, "[1, 2]")

	require.Len(t, root.Children, 1)
	arr := root.Children[0]
	assert.Equal(t, token.Brackets, arr.Kind)
}

func TestContainerize_ParenthesesAreOpaqueContainers(t *testing.T) {
	root := containerize(t, "(a, b)")

	require.Len(t, root.Children, 1)
	assert.Equal(t, token.Parentheses, root.Children[0].Kind)
}

func TestContainerize_NestedContainers(t *testing.T) {
	root := containerize(t, "{a: [1, {b: 2}]}")

	obj := root.Children[0]
	require.Equal(t, token.Braces, obj.Kind)

	arr := obj.Children[2]
	require.Equal(t, token.Brackets, arr.Kind)

	innerObj := arr.Children[2]
	assert.Equal(t, token.Braces, innerObj.Kind)
}

func TestContainerize_UnmatchedOpenerIsError(t *testing.T) {
	_, err := token.Containerize(token.NewTokenizer(reader.NewFromString("{a: 1")))
	require.Error(t, err)
}

func TestContainerize_UnmatchedCloserIsError(t *testing.T) {
	_, err := token.Containerize(token.NewTokenizer(reader.NewFromString("a: 1}")))
	require.Error(t, err)
}

func TestContainerize_MismatchedCloserIsError(t *testing.T) {
	_, err := token.Containerize(token.NewTokenizer(reader.NewFromString("{a: 1]")))
	require.Error(t, err)
}

func TestToken_LookupExactRejectsAdjacentCompoundSymbol(t *testing.T) {
	root := containerize(t, "a :: b")

	assert.Nil(t, root.Lookup(":", true))
	assert.NotNil(t, root.Lookup(":", false))
}

func TestToken_LookupExactFindsStandaloneColon(t *testing.T) {
	root := containerize(t, "a : b")

	assert.NotNil(t, root.Lookup(":", true))
}
