package vec

import (
	"math"
	"math/bits"

	"github.com/cockroachdb/errors"
)

// minCapacity is the capacity of the first allocation.
const minCapacity = 2

// header is the bookkeeping in front of a backing buffer. It only knows the
// byte size of an element, never its type.
type header struct {
	length   int
	capacity int
}

// plan returns the capacity needed to hold want elements of elemSize bytes
// each. grow is false when the current capacity already suffices.
func (h *header) plan(elemSize uintptr, want int) (capacity int, grow bool, err error) {
	if want <= h.capacity {
		return h.capacity, false, nil
	}

	capacity = minCapacity
	for capacity < want {
		if capacity > math.MaxInt/2 {
			return 0, false, errors.Wrapf(ErrOverflow, "no power of two holds %d slots", want)
		}
		capacity *= 2
	}

	if !bytesFit(elemSize, capacity) {
		return 0, false, errors.Wrapf(ErrOverflow, "%d slots of %d bytes", capacity, elemSize)
	}
	return capacity, true, nil
}

// bytesFit reports whether elemSize*capacity fits in an int.
func bytesFit(elemSize uintptr, capacity int) bool {
	hi, lo := bits.Mul64(uint64(elemSize), uint64(capacity))
	return hi == 0 && lo <= math.MaxInt
}
