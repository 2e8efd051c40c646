package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.birchlake.dev/xjs/document"
)

func TestWalk_VisitsInDocumentOrder(t *testing.T) {
	root := document.NewObject()
	root.AddMember("a", document.NewNumber(1))

	arr := document.NewArray()
	arr.Add(document.NewNumber(2))
	arr.Add(document.NewNumber(3))
	root.AddMember("b", arr)

	type visit struct {
		key   string
		index int
		depth int
	}

	var visits []visit

	document.Walk(root, func(key string, index, depth int, v *document.Value) {
		visits = append(visits, visit{key: key, index: index, depth: depth})
	})

	want := []visit{
		{key: "", index: -1, depth: 0},
		{key: "a", index: -1, depth: 1},
		{key: "b", index: -1, depth: 1},
		{key: "", index: 0, depth: 2},
		{key: "", index: 1, depth: 2},
	}

	assert.Equal(t, want, visits)
}

func TestWalk_ScalarRoot(t *testing.T) {
	count := 0

	document.Walk(document.NewNumber(1), func(_ string, _, _ int, _ *document.Value) {
		count++
	})

	assert.Equal(t, 1, count)
}
