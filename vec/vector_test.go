package vec

import (
	"math"
	"math/bits"
	"strconv"
	"testing"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backing[T any](v *Vector[T]) *T {
	return unsafe.SliceData(v.data)
}

func TestVectorPushPopResize(t *testing.T) {
	var v Vector[int32]
	for _, x := range []int32{10, 20, 30, 40, 50} {
		v.Push(x)
	}
	require.Equal(t, 5, v.Len())
	require.Equal(t, 8, v.Cap())
	require.Equal(t, int32(30), v.At(2))

	require.Equal(t, int32(50), v.Pop())
	require.Equal(t, 4, v.Len())

	v.Resize(2)
	require.Equal(t, 2, v.Len())
	require.Equal(t, 8, v.Cap())
	require.Equal(t, int32(10), v.At(0))
	require.Equal(t, int32(20), v.At(1))

	v.Free()
}

func TestVectorResizeFromEmpty(t *testing.T) {
	var v Vector[uint64]
	v.Resize(100)
	require.Equal(t, 100, v.Len())
	require.Equal(t, 128, v.Cap())
	for i := 0; i < v.Len(); i++ {
		require.Zero(t, v.At(i))
	}

	p := backing(&v)
	require.NotNil(t, p)
	v.Resize(128)
	assert.Equal(t, p, backing(&v), "resize within capacity must not move storage")
	v.Grow(128)
	assert.Equal(t, p, backing(&v), "grow within capacity must not move storage")

	var w Vector[uint64]
	allocs := testing.AllocsPerRun(10, func() {
		w.Free()
		w.Resize(100)
	})
	require.Equal(t, float64(1), allocs)
	require.Equal(t, 128, w.Cap())
}

func TestVectorGrowCarriesVacatedSlots(t *testing.T) {
	var v Vector[int]
	for i := 1; i <= 4; i++ {
		v.Push(i)
	}
	v.Resize(1)
	v.Grow(8)

	require.Equal(t, 1, v.Len())
	require.Equal(t, 8, v.Cap())
	require.Equal(t, []int{2, 3, 4, 0, 0, 0, 0}, v.data[1:8])
}

func TestVectorGrowth(t *testing.T) {
	const n = 1000

	var v Vector[int]
	prevCap := 0
	moves := 0
	for i := 0; i < n; i++ {
		v.Push(i)
		require.Equal(t, i+1, v.Len())
		require.GreaterOrEqual(t, v.Cap(), prevCap)
		require.Equal(t, 1, bits.OnesCount(uint(v.Cap())), "capacity %d is not a power of two", v.Cap())
		if v.Cap() != prevCap {
			moves++
		}
		prevCap = v.Cap()
	}

	require.Equal(t, 1024, v.Cap())
	require.LessOrEqual(t, moves, bits.Len(uint(n)))
	for i := 0; i < n; i++ {
		require.Equal(t, i, v.At(i))
	}
}

func TestVectorMinimumCapacity(t *testing.T) {
	var v Vector[byte]
	v.Push(1)
	require.Equal(t, 2, v.Cap())

	var w Vector[byte]
	w.Grow(1)
	require.Equal(t, 0, w.Len())
	require.Equal(t, 2, w.Cap())

	w.Grow(0)
	require.Equal(t, 2, w.Cap())
}

type slot struct {
	Name  string
	Value float64
	Next  *slot
}

func TestVectorZeroFill(t *testing.T) {
	var v Vector[slot]
	for i := 0; i < 5; i++ {
		v.Push(slot{Name: strconv.Itoa(i), Value: float64(i) + 0.5, Next: &slot{}})
		for j := v.Len(); j < v.Cap(); j++ {
			require.Equal(t, slot{}, v.data[j], "slot %d after %d pushes", j, i+1)
		}
	}

	v.Grow(40)
	require.Equal(t, 64, v.Cap())
	for j := v.Len(); j < v.Cap(); j++ {
		require.Equal(t, slot{}, v.data[j])
	}
}

func TestVectorClear(t *testing.T) {
	var v Vector[string]
	v.Push("a")
	v.Push("b")
	v.Push("c")
	capBefore := v.Cap()
	p := backing(&v)

	v.Clear()
	require.Equal(t, 0, v.Len())
	require.Equal(t, capBefore, v.Cap())

	v.Clear()
	require.Equal(t, 0, v.Len())

	for i := 0; i < capBefore; i++ {
		v.Push("x")
	}
	require.Equal(t, p, backing(&v))
	require.Equal(t, capBefore, v.Cap())
}

func TestVectorPopAfterPush(t *testing.T) {
	var v Vector[[3]float32]
	v.Push([3]float32{1, 2, 3})
	for _, x := range [][3]float32{{4, 5, 6}, {0, 0, 0}, {-1, 7, 8}} {
		v.Push(x)
		require.Equal(t, x, v.Pop())
	}
	require.Equal(t, 1, v.Len())
}

func TestVectorEmptyState(t *testing.T) {
	var v Vector[int]
	require.Equal(t, 0, v.Len())
	require.Equal(t, 0, v.Cap())
	require.Nil(t, v.Data())
	v.Clear()
	v.Free()
	v.Free()

	var nilVec *Vector[int]
	require.Equal(t, 0, nilVec.Len())
	require.Equal(t, 0, nilVec.Cap())
	nilVec.Clear()
	nilVec.Free()

	v.Push(7)
	v.Free()
	require.Equal(t, 0, v.Len())
	require.Equal(t, 0, v.Cap())
	require.Nil(t, backing(&v))

	v.Push(8)
	require.Equal(t, 8, v.At(0))
	require.Equal(t, 2, v.Cap())
}

func TestVectorShrinkKeepsSlots(t *testing.T) {
	var v Vector[int]
	for i := 1; i <= 4; i++ {
		v.Push(i * 10)
	}
	v.Resize(1)
	v.Resize(4)
	require.Equal(t, []int{10, 20, 30, 40}, v.Data())

	v.Pop()
	v.Resize(4)
	require.Equal(t, 40, v.At(3))
}

func TestVectorViews(t *testing.T) {
	var v Vector[int]
	for i := 0; i < 3; i++ {
		v.Push(i)
	}

	data := v.Data()
	require.Equal(t, []int{0, 1, 2}, data)
	require.Equal(t, 3, cap(data))

	_ = append(data, 99)
	require.Equal(t, 3, v.Len())
	require.Zero(t, v.data[3])

	require.Equal(t, []int{1, 2}, v.From(1))
	require.Empty(t, v.From(3))

	*v.Ref(1) = 11
	require.Equal(t, 11, v.At(1))
	require.Equal(t, 0, v.Front())

	*v.PushRef() = 5
	require.Equal(t, []int{0, 11, 2, 5}, v.Data())
}

func TestVectorGet(t *testing.T) {
	var v Vector[string]
	_, err := v.Get(0)
	require.True(t, errors.Is(err, ErrOutOfRange))

	v.Push("only")
	s, err := v.Get(0)
	require.NoError(t, err)
	require.Equal(t, "only", s)

	_, err = v.Get(-1)
	require.True(t, errors.Is(err, ErrOutOfRange))
	_, err = v.Get(1)
	require.True(t, errors.Is(err, ErrOutOfRange))

	s, err = v.TryPop()
	require.NoError(t, err)
	require.Equal(t, "only", s)

	_, err = v.TryPop()
	require.True(t, errors.Is(err, ErrEmpty))
}

func TestVectorOverflowFaults(t *testing.T) {
	var v Vector[[1 << 20]byte]
	err := Catch(func() { v.Grow(math.MaxInt / 4) })
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrOverflow), "%v", err)

	var f *Fault
	require.True(t, errors.As(err, &f))
	require.Equal(t, "Grow", f.Op)

	require.Equal(t, 0, v.Cap(), "a rejected growth must leave the vector untouched")
}

func TestVectorResizeNegative(t *testing.T) {
	var v Vector[int]
	err := Catch(func() { v.Resize(-1) })
	require.True(t, errors.Is(err, ErrNegativeLength), "%v", err)
}

func TestAllocateFailure(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("needs a 64-bit address space")
	}
	_, err := allocate[byte](math.MaxInt / 2)
	require.True(t, errors.Is(err, ErrAllocation), "%v", err)
}

func TestCatch(t *testing.T) {
	require.NoError(t, Catch(func() {}))

	require.PanicsWithValue(t, "not a fault", func() {
		_ = Catch(func() { panic("not a fault") })
	})

	other := errors.New("other")
	require.PanicsWithError(t, "other", func() {
		_ = Catch(func() { panic(other) })
	})
}
