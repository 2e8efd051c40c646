package document

// Len returns the number of elements. It panics if Kind() != KindArray.
func (v *Value) Len() int {
	v.mustBe(KindArray)

	return len(v.elements)
}

// Elements returns the array's references directly, in order. It panics if
// Kind() != KindArray. The returned slice must not be mutated by callers;
// use [Value.Add], [Value.InsertAt], and [Value.RemoveAt] instead.
func (v *Value) Elements() []*Reference {
	v.mustBe(KindArray)

	return v.elements
}

// Get returns the element at i and marks it accessed. It panics if
// Kind() != KindArray or i is out of range.
func (v *Value) Get(i int) *Value {
	return v.GetRef(i).Get()
}

// GetRef returns the Reference at i without marking it accessed. It panics
// if Kind() != KindArray or i is out of range.
func (v *Value) GetRef(i int) *Reference {
	v.mustBe(KindArray)

	return v.elements[i]
}

// Add appends val to the array. It panics if Kind() != KindArray.
func (v *Value) Add(val *Value) *Reference {
	v.mustBe(KindArray)

	ref := NewReference(val)
	v.elements = append(v.elements, ref)

	return ref
}

// InsertAt inserts val at position i, shifting later elements right. It
// panics if Kind() != KindArray or i is out of range ([0, Len()]).
func (v *Value) InsertAt(i int, val *Value) *Reference {
	v.mustBe(KindArray)

	ref := NewReference(val)
	v.elements = append(v.elements, nil)
	copy(v.elements[i+1:], v.elements[i:])
	v.elements[i] = ref

	return ref
}

// RemoveAt removes and returns the value at position i. It panics if
// Kind() != KindArray or i is out of range.
func (v *Value) RemoveAt(i int) *Value {
	v.mustBe(KindArray)

	removed := v.elements[i].Peek()
	v.elements = append(v.elements[:i], v.elements[i+1:]...)

	return removed
}

// SetAt replaces the value at position i, preserving the slot's Reference
// identity. It panics if Kind() != KindArray or i is out of range.
func (v *Value) SetAt(i int, val *Value) {
	v.mustBe(KindArray)

	v.elements[i].SetValue(val)
}
