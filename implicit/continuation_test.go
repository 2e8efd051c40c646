package implicit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.birchlake.dev/xjs/implicit"
)

func TestNormalizeContinuation_DedentsSubsequentLines(t *testing.T) {
	raw := "first\n    second\n    third"
	got := implicit.NormalizeContinuation(raw, 4)

	assert.Equal(t, "first\nsecond\nthird", got)
}

func TestNormalizeContinuation_OnlyDedentsUpToColumn(t *testing.T) {
	raw := "first\n      second"
	got := implicit.NormalizeContinuation(raw, 4)

	assert.Equal(t, "first\n  second", got)
}

func TestNormalizeContinuation_AppliesEscapes(t *testing.T) {
	raw := "one\\,two"
	got := implicit.NormalizeContinuation(raw, 0)

	assert.Equal(t, "one,two", got)
}

func TestNormalizeContinuation_SingleLineUnchanged(t *testing.T) {
	got := implicit.NormalizeContinuation("just one line", 4)
	assert.Equal(t, "just one line", got)
}
