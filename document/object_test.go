package document_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.birchlake.dev/xjs/document"
)

func TestObject_InsertionOrderAndLookup(t *testing.T) {
	obj := document.NewObject()
	obj.AddMember("a", document.NewNumber(1))
	obj.AddMember("b", document.NewNumber(2))
	obj.AddMember("c", document.NewNumber(3))

	assert.Equal(t, []string{"a", "b", "c"}, obj.Keys())

	idx, ok := obj.IndexOf("b")
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	v, ok := obj.GetMember("b")
	require.True(t, ok)
	assert.InEpsilon(t, 2.0, v.Number(), 0)
}

func TestObject_DuplicateKeys_LastWins(t *testing.T) {
	obj := document.NewObject()
	obj.AddMember("a", document.NewNumber(1))
	obj.AddMember("a", document.NewNumber(2))

	idx, ok := obj.IndexOf("a")
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	v, ok := obj.GetMember("a")
	require.True(t, ok)
	assert.InEpsilon(t, 2.0, v.Number(), 0)
}

func TestObject_Set_ReplacesAndAppends(t *testing.T) {
	obj := document.NewObject()
	obj.AddMember("a", document.NewNumber(1))

	obj.Set("a", document.NewNumber(5))
	obj.Set("b", document.NewNumber(6))

	assert.Equal(t, []string{"a", "b"}, obj.Keys())

	v, _ := obj.GetMember("a")
	assert.InEpsilon(t, 5.0, v.Number(), 0)
}

func TestObject_Set_PreservesDefaultTriviaOfReplacedValue(t *testing.T) {
	obj := document.NewObject()
	old := document.NewNumber(1)
	old.Trivia.LinesAbove = 3
	obj.AddMember("a", old)

	next := document.NewNumber(2) // LinesAbove left unspecified
	obj.Set("a", next)

	v, _ := obj.GetMember("a")
	assert.Equal(t, 3, v.Trivia.LinesAbove)
}

func TestObject_RemoveMember_RemovesMatchedIndex(t *testing.T) {
	obj := document.NewObject()
	obj.AddMember("a", document.NewNumber(1))
	obj.AddMember("a", document.NewNumber(2))
	obj.AddMember("b", document.NewNumber(3))

	removed := obj.RemoveMember("a")
	require.True(t, removed)
	assert.Equal(t, []string{"a", "b"}, obj.Keys())

	v, ok := obj.GetMember("a")
	require.True(t, ok)
	assert.InEpsilon(t, 1.0, v.Number(), 0)
}

// TestObject_LinearFallbackAboveSlotCapacity covers an object with many
// members still resolves Get correctly even though the hash-slot table
// cannot represent every index (indices above 254 clear their slot).
func TestObject_LinearFallbackAboveSlotCapacity(t *testing.T) {
	obj := document.NewObject()

	const n = 300
	for i := range n {
		obj.AddMember(fmt.Sprintf("key%03d", i), document.NewNumber(float64(i)))
	}

	for i := range n {
		key := fmt.Sprintf("key%03d", i)

		idx, ok := obj.IndexOf(key)
		require.True(t, ok, key)
		assert.Equal(t, i, idx, key)

		v, ok := obj.GetMember(key)
		require.True(t, ok, key)
		assert.InDelta(t, float64(i), v.Number(), 0, key)
	}
}

func TestObject_InsertMember_RebuildsSlotsAtNonTail(t *testing.T) {
	obj := document.NewObject()
	obj.AddMember("a", document.NewNumber(1))
	obj.AddMember("c", document.NewNumber(3))

	obj.InsertMember(1, "b", document.NewNumber(2))

	assert.Equal(t, []string{"a", "b", "c"}, obj.Keys())

	for i, key := range []string{"a", "b", "c"} {
		idx, ok := obj.IndexOf(key)
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}
}

func TestObject_SetDefaults_RecursesIntoNestedObjects(t *testing.T) {
	dst := document.NewObject()
	inner := document.NewObject()
	inner.AddMember("x", document.NewNumber(1))
	dst.AddMember("nested", inner)

	src := document.NewObject()
	srcInner := document.NewObject()
	srcInner.AddMember("x", document.NewNumber(99))
	srcInner.AddMember("y", document.NewNumber(2))
	src.AddMember("nested", srcInner)
	src.AddMember("top", document.NewNumber(7))

	dst.SetDefaults(src)

	nested, ok := dst.GetMember("nested")
	require.True(t, ok)

	x, _ := nested.GetMember("x")
	assert.InEpsilon(t, 1.0, x.Number(), 0) // existing value kept

	y, ok := nested.GetMember("y")
	require.True(t, ok)
	assert.InEpsilon(t, 2.0, y.Number(), 0) // filled from default

	top, ok := dst.GetMember("top")
	require.True(t, ok)
	assert.InEpsilon(t, 7.0, top.Number(), 0)
}
