package document

// WalkFunc is called once per node visited by [Walk]. key is the object
// member key, or "" for array elements and the root. index is the array
// position, or -1 for object members and the root. depth is the nesting
// depth, starting at 0 for the root.
type WalkFunc func(key string, index, depth int, v *Value)

// Walk visits v and, recursively, every element or member it contains,
// depth-first in document order (the order [Value.Elements] and
// [Value.Members] report).
func Walk(v *Value, fn WalkFunc) {
	walk(v, "", -1, 0, fn)
}

func walk(v *Value, key string, index, depth int, fn WalkFunc) {
	fn(key, index, depth, v)

	switch v.kind {
	case KindArray:
		for i, ref := range v.elements {
			walk(ref.Peek(), "", i, depth+1, fn)
		}
	case KindObject:
		for _, m := range v.members {
			walk(m.Ref.Peek(), m.Key, -1, depth+1, fn)
		}
	}
}
