package chunked

import "iter"

// Pointers returns an in-order traversal yielding a pointer to each element
// exactly once, index 0 through Len()-1, without exposing chunk boundaries.
// It is the mutable counterpart of Values: writing through a yielded
// pointer edits the sequence in place. No other access to v may happen
// until the traversal finishes.
func (v *Vec[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, chunk := range v.data {
			for j := range chunk {
				if !yield(&chunk[j]) {
					return
				}
			}
		}
	}
}

// Values returns an in-order read-only traversal of every element. Each
// call walks the container afresh.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := range v.Pointers() {
			if !yield(*p) {
				return
			}
		}
	}
}

// All is Values with the logical index attached.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for p := range v.Pointers() {
			if !yield(i, *p) {
				return
			}
			i++
		}
	}
}
