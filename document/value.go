package document

import (
	"fmt"
	"strings"
)

// Reference is a handle to a [Value] plus an "accessed" flag used by the
// read-tracking feature: callers can tell whether a member or element was
// ever read back out after being parsed.
type Reference struct {
	value    *Value
	accessed bool
}

// NewReference wraps v in a fresh, unaccessed Reference.
func NewReference(v *Value) *Reference {
	return &Reference{value: v}
}

// Get returns the referenced value and marks it accessed.
func (r *Reference) Get() *Value {
	r.accessed = true

	return r.value
}

// Peek returns the referenced value without marking it accessed.
func (r *Reference) Peek() *Value {
	return r.value
}

// Accessed reports whether [Reference.Get] has ever been called.
func (r *Reference) Accessed() bool {
	return r.accessed
}

// SetValue replaces the referenced value in place, preserving the
// Reference's identity and accessed flag.
func (r *Reference) SetValue(v *Value) {
	r.value = v
}

// Member is a (key, reference) pair belonging to an object, in insertion
// order. Duplicate keys are permitted; see [Value.GetMember] for lookup
// semantics.
type Member struct {
	Key string
	Ref *Reference
}

// Value is the tagged document node described by the XJS data model: null,
// bool, number, string, array, or object, plus the [Trivia] needed to
// reproduce its original formatting.
type Value struct {
	kind Kind

	boolVal bool
	numVal  float64
	strVal  string
	strKind StringKind

	elements []*Reference
	members  []*Member
	slots    *slotTable

	Trivia Trivia
}

// NewNull returns a null value.
func NewNull() *Value { return &Value{kind: KindNull, Trivia: NewTrivia()} }

// NewBool returns a bool value.
func NewBool(b bool) *Value { return &Value{kind: KindBool, boolVal: b, Trivia: NewTrivia()} }

// NewNumber returns a numeric value.
func NewNumber(f float64) *Value { return &Value{kind: KindNumber, numVal: f, Trivia: NewTrivia()} }

// NewString returns a string value of the given kind.
func NewString(s string, kind StringKind) *Value {
	return &Value{kind: KindString, strVal: s, strKind: kind, Trivia: NewTrivia()}
}

// NewArray returns an empty array.
func NewArray() *Value {
	return &Value{kind: KindArray, Trivia: NewTrivia()}
}

// NewObject returns an empty object.
func NewObject() *Value {
	return &Value{kind: KindObject, Trivia: NewTrivia()}
}

// Kind reports the value's tag.
func (v *Value) Kind() Kind { return v.kind }

func (v *Value) IsNull() bool   { return v.kind == KindNull }
func (v *Value) IsBool() bool   { return v.kind == KindBool }
func (v *Value) IsNumber() bool { return v.kind == KindNumber }
func (v *Value) IsString() bool { return v.kind == KindString }
func (v *Value) IsArray() bool  { return v.kind == KindArray }
func (v *Value) IsObject() bool { return v.kind == KindObject }

// Bool returns the boolean payload. It panics if Kind() != KindBool.
func (v *Value) Bool() bool {
	v.mustBe(KindBool)

	return v.boolVal
}

// Number returns the numeric payload. It panics if Kind() != KindNumber.
func (v *Value) Number() float64 {
	v.mustBe(KindNumber)

	return v.numVal
}

// Str returns the string payload. It panics if Kind() != KindString.
func (v *Value) Str() string {
	v.mustBe(KindString)

	return v.strVal
}

// StringKind returns the string's quoting kind. It panics if
// Kind() != KindString.
func (v *Value) StringKind() StringKind {
	v.mustBe(KindString)

	return v.strKind
}

// SetStringKind updates the string's quoting kind, e.g. after the writer
// promotes it (see [document.Value.PromoteStringKind]).
func (v *Value) SetStringKind(kind StringKind) {
	v.mustBe(KindString)

	v.strKind = kind
}

// PromoteStringKind upgrades the string's quoting kind to [StringMulti] if
// its payload contains a newline and the current kind cannot represent one
// verbatim ([StringSingle], [StringDouble], or [StringImplicit] all quote
// or scan a single line at a time). It is a no-op otherwise. It panics if
// Kind() != KindString.
func (v *Value) PromoteStringKind() {
	v.mustBe(KindString)

	if v.strKind == StringMulti || !strings.Contains(v.strVal, "\n") {
		return
	}

	v.strKind = StringMulti
}

func (v *Value) mustBe(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("document: value is %s, not %s", v.kind, k))
	}
}

func (v *Value) mustBeOneOf(a, b Kind) {
	if v.kind != a && v.kind != b {
		panic(fmt.Sprintf("document: value is %s, not %s or %s", v.kind, a, b))
	}
}

// Matches reports structural equality with other, ignoring all trivia
// (comments and blank-line counts). This is the round-trip comparison used
// by property-based tests: parsing the text written from a value must
// yield a value that Matches the original.
func (v *Value) Matches(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}

	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolVal == other.boolVal
	case KindNumber:
		return v.numVal == other.numVal
	case KindString:
		return v.strVal == other.strVal
	case KindArray:
		if len(v.elements) != len(other.elements) {
			return false
		}

		for i, e := range v.elements {
			if !e.Peek().Matches(other.elements[i].Peek()) {
				return false
			}
		}

		return true
	case KindObject:
		if len(v.members) != len(other.members) {
			return false
		}

		for i, m := range v.members {
			om := other.members[i]
			if m.Key != om.Key || !m.Ref.Peek().Matches(om.Ref.Peek()) {
				return false
			}
		}

		return true
	default:
		return false
	}
}
