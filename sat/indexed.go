package sat

// indexable is the set of tag types that IndexedVector accepts as a logical
// index. Each is a distinct domain: variables, literals, and clause IDs all
// have their own dense integer space, and mixing them up by using a raw int
// would be an easy way to corrupt the solver's invariants. IndexedVector
// exists so call sites never touch a bare slice index themselves.
type indexable interface {
	~int
}

// IndexedVector is a contiguous vector whose logical index type K (a domain
// tag such as Variable, Literal or ClauseID) is distinct from the raw slice
// offset, so callers can't accidentally index a variable-keyed vector with a
// literal or vice versa. It is the Go-generic counterpart of the teacher's
// ring-buffer Queue[T] and is grounded in original_source's TaggedVec.
type IndexedVector[K indexable, V any] struct {
	data []V
}

// NewIndexedVector returns an empty IndexedVector.
func NewIndexedVector[K indexable, V any]() IndexedVector[K, V] {
	return IndexedVector[K, V]{}
}

// Len returns the number of addressable elements.
func (v *IndexedVector[K, V]) Len() int {
	return len(v.data)
}

// At returns the value stored at index k.
func (v *IndexedVector[K, V]) At(k K) V {
	return v.data[k]
}

// Set overwrites the value stored at index k.
func (v *IndexedVector[K, V]) Set(k K, val V) {
	v.data[k] = val
}

// Push appends val as the next index, returning the index it was stored at.
func (v *IndexedVector[K, V]) Push(val V) K {
	k := K(len(v.data))
	v.data = append(v.data, val)
	return k
}

// EnsureIndex grows the vector with copies of def, if necessary, so that
// index k becomes addressable.
func (v *IndexedVector[K, V]) EnsureIndex(k K, def V) {
	for K(len(v.data)) <= k {
		v.data = append(v.data, def)
	}
}
