// Package chunked provides a growable sequence that allocates its backing
// storage in fixed-size chunks instead of one contiguous block. Growth never
// moves elements already written, so a pointer taken into the sequence stays
// valid until the sequence itself is released, and there is no
// reallocate-and-copy spike when capacity runs out.
//
// Vec is single-owner and does no internal locking. Callers may hold any
// number of concurrent readers, or exactly one writer, never both; in
// particular no other access may happen while a Pointers traversal is
// active.
package chunked

// Vec is a chunk-allocated growable sequence. The zero value is not usable;
// construct with New.
type Vec[T any] struct {
	data      [][]T
	length    int
	cap       int
	chunkSize int
}

// New returns an empty Vec that grows in chunks of chunkSize elements.
// chunkSize must be positive; New panics otherwise.
func New[T any](chunkSize int) *Vec[T] {
	if chunkSize < 1 {
		panic("chunked: chunk size must be positive")
	}
	return &Vec[T]{chunkSize: chunkSize}
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int { return v.length }

// IsEmpty reports whether v holds no elements.
func (v *Vec[T]) IsEmpty() bool { return v.length == 0 }

// ChunkSize returns the per-chunk slot count fixed at construction.
func (v *Vec[T]) ChunkSize() int { return v.chunkSize }

// Cap returns the total slots allocated across all chunks. It never
// decreases, including across Clear.
func (v *Vec[T]) Cap() int { return v.cap }

// Get returns the element at index i, or false when i is out of range.
func (v *Vec[T]) Get(i int) (T, bool) {
	if i < 0 || i >= v.length {
		var zero T
		return zero, false
	}
	return v.data[i/v.chunkSize][i%v.chunkSize], true
}

// GetPtr returns a pointer to the element at index i, or false when i is
// out of range.
func (v *Vec[T]) GetPtr(i int) (*T, bool) {
	if i < 0 || i >= v.length {
		return nil, false
	}
	return &v.data[i/v.chunkSize][i%v.chunkSize], true
}

// At returns the element at index i. Unlike Get it performs no range check
// of its own: an out-of-range index panics. It exists for call sites that
// already validated i.
func (v *Vec[T]) At(i int) T {
	return v.data[i/v.chunkSize][i%v.chunkSize]
}

// Ptr returns a pointer to the element at index i, panicking when i is out
// of range. The pointer stays valid across future growth.
func (v *Vec[T]) Ptr(i int) *T {
	return &v.data[i/v.chunkSize][i%v.chunkSize]
}

// Set stores val at index i. It panics when i is out of range.
func (v *Vec[T]) Set(i int, val T) {
	v.data[i/v.chunkSize][i%v.chunkSize] = val
}

// Push appends val at the end. A new chunk, pre-sized to hold exactly
// ChunkSize elements, is allocated once every ChunkSize pushes.
func (v *Vec[T]) Push(val T) {
	if v.length == v.cap {
		v.data = append(v.data, make([]T, 0, v.chunkSize))
		v.cap += v.chunkSize
	}
	n := v.length / v.chunkSize
	v.data[n] = append(v.data[n], val)
	v.length++
}

// Pop removes and returns the last element, or false when v is empty.
// The chunk the element came from is kept; capacity is untouched.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if v.length == 0 {
		return zero, false
	}
	v.length--
	c := &v.data[v.length/v.chunkSize]
	last := len(*c) - 1
	val := (*c)[last]
	(*c)[last] = zero
	*c = (*c)[:last]
	return val, true
}

// Clear drops every element but keeps every chunk, so a cleared Vec refills
// without allocating until it outgrows its old capacity. Vacated slots are
// zeroed to release anything the elements referenced.
func (v *Vec[T]) Clear() {
	for i := range v.data {
		clear(v.data[i])
		v.data[i] = v.data[i][:0]
	}
	v.length = 0
}

// Swap exchanges the elements at indices a and b in place. Like At, it
// trusts the caller: out-of-range indices panic.
func (v *Vec[T]) Swap(a, b int) {
	pa, pb := v.Ptr(a), v.Ptr(b)
	*pa, *pb = *pb, *pa
}
