package vec

import (
	"unsafe"

	"github.com/cockroachdb/errors"
)

// Vector is a growable array of T. The zero value is an empty Vector.
//
// A Vector must not be copied after first use: the copy would share storage
// with the original while keeping its own length.
type Vector[T any] struct {
	_ noCopy

	hdr  header
	data []T
}

// Len returns the number of elements. It is 0 for a nil or empty Vector.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.hdr.length
}

// Cap returns the number of allocated slots. It is 0 for a nil Vector and
// for one that has never grown.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return v.hdr.capacity
}

// Grow makes sure the Vector can hold at least n elements without moving.
// Slots past the length that were vacated by Pop or a shrinking Resize are
// carried into the new storage; only slots created by this growth are zero.
func (v *Vector[T]) Grow(n int) {
	v.grow("Grow", n)
}

// Resize sets the length to n, growing first if needed. Shrinking keeps the
// allocation and leaves the vacated slots untouched.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		fail("Resize", errors.Wrapf(ErrNegativeLength, "length %d", n))
	}
	v.grow("Resize", n)
	v.hdr.length = n
}

// Push appends item.
func (v *Vector[T]) Push(item T) {
	*v.PushRef() = item
}

// PushRef appends a slot and returns a pointer to it, valid until the next
// call that can grow v. A slot reused after Pop or a shrinking Resize still
// holds its old value.
func (v *Vector[T]) PushRef() *T {
	v.grow("Push", v.hdr.length+1)
	i := v.hdr.length
	v.hdr.length++
	return &v.data[i]
}

// Pop removes and returns the last element. The slot keeps its value.
func (v *Vector[T]) Pop() T {
	if Checked && v.Len() == 0 {
		fail("Pop", ErrEmpty)
	}
	v.hdr.length--
	return v.data[v.hdr.length]
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) T {
	if Checked {
		v.check("At", i)
	}
	return v.data[i]
}

// Ref returns a pointer to the element at index i, valid until the next call
// that can grow v.
func (v *Vector[T]) Ref(i int) *T {
	if Checked {
		v.check("Ref", i)
	}
	return &v.data[i]
}

// Front returns the first element.
func (v *Vector[T]) Front() T {
	if Checked && v.Len() == 0 {
		fail("Front", ErrEmpty)
	}
	return v.data[0]
}

// Data returns the live elements as a slice sharing v's storage. The slice is
// capped at the length, so appending to it never writes into v.
func (v *Vector[T]) Data() []T {
	if v.Len() == 0 {
		return nil
	}
	return v.data[:v.hdr.length:v.hdr.length]
}

// From returns the live elements starting at index i. i may equal the length,
// which yields an empty view.
func (v *Vector[T]) From(i int) []T {
	if Checked && (i < 0 || i > v.Len()) {
		fail("From", errors.Wrapf(ErrOutOfRange, "index %d, length %d", i, v.Len()))
	}
	if v.Len() == 0 {
		return nil
	}
	return v.data[i:v.hdr.length:v.hdr.length]
}

// Get is the checked form of At for callers that handle a bad index
// themselves. It never panics and does not depend on the build tags.
func (v *Vector[T]) Get(i int) (T, error) {
	if i < 0 || i >= v.Len() {
		var zero T
		return zero, errors.Wrapf(ErrOutOfRange, "index %d, length %d", i, v.Len())
	}
	return v.data[i], nil
}

// TryPop is the checked form of Pop.
func (v *Vector[T]) TryPop() (T, error) {
	if v.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.Pop(), nil
}

// Clear sets the length to 0 and keeps the allocation.
func (v *Vector[T]) Clear() {
	if v == nil {
		return
	}
	v.hdr.length = 0
}

// Free releases the storage and returns v to the empty state. Freeing an
// empty Vector does nothing.
func (v *Vector[T]) Free() {
	if v == nil {
		return
	}
	v.data = nil
	v.hdr = header{}
}

func (v *Vector[T]) check(op string, i int) {
	if uint(i) >= uint(v.Len()) {
		fail(op, errors.Wrapf(ErrOutOfRange, "index %d, length %d", i, v.Len()))
	}
}

func (v *Vector[T]) grow(op string, want int) {
	var zero T
	capacity, ok, err := v.hdr.plan(unsafe.Sizeof(zero), want)
	if err != nil {
		fail(op, err)
	}
	if !ok {
		return
	}

	buf, err := allocate[T](capacity)
	if err != nil {
		fail(op, err)
	}
	copy(buf, v.data)
	v.data = buf
	v.hdr.capacity = capacity
}

// allocate returns n zeroed slots, turning a failed make into ErrAllocation.
func allocate[T any](n int) (buf []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(ErrAllocation, "%d slots: %v", n, r)
		}
	}()
	return make([]T, n), nil
}

// noCopy makes go vet's copylocks check report copies of a Vector.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
