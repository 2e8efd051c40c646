package writer

import (
	"strconv"
	"strings"

	"go.birchlake.dev/xjs/document"
)

// WriteStrict renders v as canonical JSON: all trivia (comments, blank-line
// runs) is ignored, objects/arrays always use braces/brackets, keys and
// strings are always double-quoted, and numbers use [FormatNumber].
func WriteStrict(v *document.Value) string {
	var b strings.Builder

	writeStrictValue(&b, v)

	return b.String()
}

func writeStrictValue(b *strings.Builder, v *document.Value) {
	switch v.Kind() {
	case document.KindNull:
		b.WriteString("null")
	case document.KindBool:
		if v.Bool() {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case document.KindNumber:
		b.WriteString(FormatNumber(v.Number()))
	case document.KindString:
		b.WriteString(strconv.Quote(v.Str()))
	case document.KindArray:
		writeStrictArray(b, v)
	case document.KindObject:
		writeStrictObject(b, v)
	}
}

func writeStrictArray(b *strings.Builder, v *document.Value) {
	b.WriteString("[")

	for i, ref := range v.Elements() {
		if i > 0 {
			b.WriteString(",")
		}

		writeStrictValue(b, ref.Peek())
	}

	b.WriteString("]")
}

func writeStrictObject(b *strings.Builder, v *document.Value) {
	b.WriteString("{")

	for i, m := range v.Members() {
		if i > 0 {
			b.WriteString(",")
		}

		b.WriteString(strconv.Quote(m.Key))
		b.WriteString(":")
		writeStrictValue(b, m.Ref.Peek())
	}

	b.WriteString("}")
}
