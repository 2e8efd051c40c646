package implicit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.birchlake.dev/xjs/implicit"
)

func TestEscape_Key_EscapesColon(t *testing.T) {
	assert.Equal(t, `a\:b`, implicit.Escape("a:b", implicit.Key))
}

func TestEscape_Value_EscapesNewlineAndComma(t *testing.T) {
	assert.Equal(t, "a\\\nb\\,c", implicit.Escape("a\nb,c", implicit.Value))
}

func TestEscape_LeavesUnrelatedCharsAlone(t *testing.T) {
	assert.Equal(t, "a:b", implicit.Escape("a:b", implicit.Value))
}

func TestEscape_ImbalancedTextPassesThroughVerbatim(t *testing.T) {
	assert.Equal(t, "a(b", implicit.Escape("a(b", implicit.Value))
}

func TestUnescape_DropsBackslashBeforeReservedChars(t *testing.T) {
	assert.Equal(t, "a:b,c}d]e)f\ng", implicit.Unescape(`a\:b\,c\}d\]e\)f\`+"\n"+"g"))
}

func TestUnescape_LeavesOtherBackslashesAlone(t *testing.T) {
	assert.Equal(t, `a\qb`, implicit.Unescape(`a\qb`))
}
