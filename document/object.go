package document

// Members returns the object's (key, reference) pairs directly, in
// insertion order. It panics if Kind() != KindObject. The returned slice
// must not be mutated; use [Value.Set], [Value.AddMember],
// [Value.InsertMember], and [Value.RemoveMember] instead.
func (v *Value) Members() []*Member {
	v.mustBe(KindObject)

	return v.members
}

// Keys returns the object's keys in insertion order. It panics if
// Kind() != KindObject.
func (v *Value) Keys() []string {
	v.mustBe(KindObject)

	keys := make([]string, len(v.members))
	for i, m := range v.members {
		keys[i] = m.Key
	}

	return keys
}

// IndexOf returns the index of the last member with the given key. It
// panics if Kind() != KindObject.
func (v *Value) IndexOf(key string) (int, bool) {
	v.mustBe(KindObject)

	if v.slots != nil {
		if idx, ok := v.slots.lookup(key); ok && idx < len(v.members) && v.members[idx].Key == key {
			return idx, true
		}
	}

	for i := len(v.members) - 1; i >= 0; i-- {
		if v.members[i].Key == key {
			return i, true
		}
	}

	return -1, false
}

// GetMember returns the value of the last member with the given key,
// marking it accessed. It panics if Kind() != KindObject.
func (v *Value) GetMember(key string) (*Value, bool) {
	ref, ok := v.GetMemberRef(key)
	if !ok {
		return nil, false
	}

	return ref.Get(), true
}

// GetMemberRef returns the Reference of the last member with the given key
// without marking it accessed. It panics if Kind() != KindObject.
func (v *Value) GetMemberRef(key string) (*Reference, bool) {
	v.mustBe(KindObject)

	idx, ok := v.IndexOf(key)
	if !ok {
		return nil, false
	}

	return v.members[idx].Ref, true
}

// AddMember always appends a new (key, val) member, even if key already
// exists. It panics if Kind() != KindObject.
func (v *Value) AddMember(key string, val *Value) *Reference {
	v.mustBe(KindObject)

	ref := NewReference(val)
	v.members = append(v.members, &Member{Key: key, Ref: ref})

	if v.slots == nil {
		v.slots = &slotTable{}
	}

	v.slots.set(key, len(v.members)-1)

	return ref
}

// Set replaces the last member with the given key, preserving the
// replaced value's unspecified trivia fields onto val (val's explicitly
// set fields win), or appends a new member if key is absent. It panics if
// Kind() != KindObject.
func (v *Value) Set(key string, val *Value) *Reference {
	v.mustBe(KindObject)

	idx, ok := v.IndexOf(key)
	if !ok {
		return v.AddMember(key, val)
	}

	old := v.members[idx].Ref.Peek()
	val.Trivia.TakeFrom(old.Trivia)
	v.members[idx].Ref.SetValue(val)

	return v.members[idx].Ref
}

// InsertMember inserts a new (key, val) member at position i, shifting
// later members right and rebuilding the slot table. It panics if
// Kind() != KindObject or i is out of range ([0, Len()]).
func (v *Value) InsertMember(i int, key string, val *Value) *Reference {
	v.mustBe(KindObject)

	ref := NewReference(val)
	m := &Member{Key: key, Ref: ref}

	v.members = append(v.members, nil)
	copy(v.members[i+1:], v.members[i:])
	v.members[i] = m

	if i == len(v.members)-1 {
		if v.slots == nil {
			v.slots = &slotTable{}
		}

		v.slots.set(key, i)
	} else {
		v.rebuildSlots()
	}

	return ref
}

// RemoveMember removes the member at the index [Value.IndexOf] would
// return for key (the last occurrence), reporting whether a member was
// removed. It panics if Kind() != KindObject.
func (v *Value) RemoveMember(key string) bool {
	v.mustBe(KindObject)

	idx, ok := v.IndexOf(key)
	if !ok {
		return false
	}

	v.members = append(v.members[:idx], v.members[idx+1:]...)

	if v.slots != nil {
		v.slots.clear(key)
		v.slots.shiftDown(idx)
	}

	return true
}

func (v *Value) rebuildSlots() {
	v.slots = &slotTable{}
	for i, m := range v.members {
		v.slots.set(m.Key, i)
	}
}

// SetDefaults recursively fills in members present in other but missing
// from v. Where both v and other hold an object under the same key, the
// fill recurses into the nested objects instead of overwriting. It panics
// if v or other is not an object.
func (v *Value) SetDefaults(other *Value) {
	v.mustBe(KindObject)
	other.mustBe(KindObject)

	for _, om := range other.members {
		ov := om.Ref.Peek()

		existing, ok := v.GetMemberRef(om.Key)
		if !ok {
			v.AddMember(om.Key, ov)

			continue
		}

		ev := existing.Peek()
		if ev.IsObject() && ov.IsObject() {
			ev.SetDefaults(ov)
		}
	}
}
