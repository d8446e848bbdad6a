// Package vector implements an ordered, variable-length sequence of owned
// values. It supports pushing and popping values at the end of the sequence,
// inserting and removing values at arbitrary indices, and getting and setting
// the value at a particular index.
package vector

// Vector stores elements of type T in insertion order. The backing store is
// managed explicitly: it starts with room for a single element and doubles
// whenever it fills up, which keeps pushes amortized constant time. Capacity
// never shrinks for the lifetime of the vector.
//
// The vector owns its backing store but not the values placed in it; Remove
// and Pop hand the removed value back to the caller. A Vector is not safe for
// concurrent use.
type Vector[T any] struct {
	elems []T // backing store; len(elems) is the capacity
	size  int // number of live elements, elems[:size]
}

// New creates a new, empty vector with capacity for one element.
func New[T any]() *Vector[T] {
	return &Vector[T]{
		elems: make([]T, 1),
	}
}

// Destroy releases the vector's backing store. It does not touch the values
// that were stored; if the vector held the only reference to them, the caller
// must take them out first. The vector must not be used after Destroy.
func (v *Vector[T]) Destroy() {
	v.elems = nil
	v.size = 0
}

// Size returns the number of elements currently stored.
func (v *Vector[T]) Size() int {
	return v.size
}

// Cap returns the number of slots allocated in the backing store.
func (v *Vector[T]) Cap() int {
	return len(v.elems)
}

// InBounds reports whether i addresses a live element. Negative indices are
// always out of bounds.
func (v *Vector[T]) InBounds(i int) bool {
	return i >= 0 && i < v.size
}

// Get returns the element at index i. The caller must check InBounds first;
// an out-of-range index panics.
func (v *Vector[T]) Get(i int) T {
	return v.elems[:v.size][i]
}

// Set overwrites the element at index i. The previous value is not released;
// a caller holding the only reference to it must dispose of it itself. The
// caller must check InBounds first.
func (v *Vector[T]) Set(i int, value T) {
	v.elems[:v.size][i] = value
}

// Insert stores value at index i, shifting the elements at [i, size) one slot
// to the right. i may equal the current size, which appends.
func (v *Vector[T]) Insert(i int, value T) {
	v.size++
	v.extend()

	// copy has move semantics over overlapping slices, so shifting the tail
	// right in one call is safe.
	copy(v.elems[i+1:v.size], v.elems[i:v.size-1])
	v.elems[i] = value
}

// Remove deletes and returns the element at index i, shifting the elements
// after it one slot to the left. Ownership of the returned value passes back
// to the caller. The caller must check InBounds first.
func (v *Vector[T]) Remove(i int) T {
	removed := v.elems[:v.size][i]

	copy(v.elems[i:v.size-1], v.elems[i+1:v.size])
	v.size--

	// Zero the vacated slot so the vector no longer references the value.
	var zero T
	v.elems[v.size] = zero

	return removed
}

// Push appends value at the end of the vector.
func (v *Vector[T]) Push(value T) {
	v.Insert(v.size, value)
}

// Pop deletes and returns the last element. The caller must ensure the vector
// is not empty; popping an empty vector panics.
func (v *Vector[T]) Pop() T {
	return v.Remove(v.size - 1)
}

// Elems returns a copy of the live elements in order.
func (v *Vector[T]) Elems() []T {
	out := make([]T, v.size)
	copy(out, v.elems[:v.size])
	return out
}

// extend doubles the backing store once size has outgrown it, preserving the
// stored elements at their indices.
func (v *Vector[T]) extend() {
	if v.size <= len(v.elems) {
		return
	}

	grown := make([]T, len(v.elems)*2)
	copy(grown, v.elems)
	v.elems = grown
}
