//go:build !vecrelease

package vec

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func catchFault(t *testing.T, fn func()) *Fault {
	t.Helper()
	err := Catch(fn)
	require.Error(t, err)
	var f *Fault
	require.True(t, errors.As(err, &f), "%v", err)
	return f
}

func TestFaultOutOfRange(t *testing.T) {
	var v Vector[int]
	v.Push(1)
	v.Push(2)

	var w Vector[int]
	w.Resize(4)
	w.Resize(1)

	tests := []struct {
		name  string
		op    string
		cause error
		fn    func()
	}{
		{name: "at past length", op: "At", cause: ErrOutOfRange, fn: func() { v.At(2) }},
		{name: "at negative", op: "At", cause: ErrOutOfRange, fn: func() { v.At(-1) }},
		{name: "at inside capacity", op: "At", cause: ErrOutOfRange, fn: func() { w.At(1) }},
		{name: "ref past length", op: "Ref", cause: ErrOutOfRange, fn: func() { v.Ref(5) }},
		{name: "from past length", op: "From", cause: ErrOutOfRange, fn: func() { v.From(3) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := catchFault(t, tt.fn)
			require.Equal(t, tt.op, f.Op)
			require.True(t, errors.Is(f, tt.cause))
		})
	}
}

func TestFaultEmpty(t *testing.T) {
	var v Vector[string]
	f := catchFault(t, func() { v.Pop() })
	require.Equal(t, "Pop", f.Op)
	require.True(t, errors.Is(f, ErrEmpty))
	require.Equal(t, 0, v.Len())

	f = catchFault(t, func() { v.Front() })
	require.Equal(t, "Front", f.Op)

	v.Push("x")
	v.Clear()
	f = catchFault(t, func() { v.Pop() })
	require.True(t, errors.Is(f, ErrEmpty))
}

func TestFaultSite(t *testing.T) {
	var v Vector[int]
	f := catchFault(t, func() { v.At(0) })

	require.Equal(t, "fault_test.go", filepath.Base(f.Site.File))
	require.NotZero(t, f.Site.Line)
	require.True(t, strings.HasPrefix(f.Site.Func, "vec.TestFaultSite"), f.Site.Func)

	msg := f.Error()
	require.Contains(t, msg, "fault_test.go:")
	require.Contains(t, msg, "vec.At: index 0, length 0: index out of range")
}

func TestFaultSiteThroughGrowth(t *testing.T) {
	var v Vector[[1 << 20]byte]
	f := catchFault(t, func() { v.Resize(math.MaxInt / 4) })
	require.Equal(t, "Resize", f.Op)
	require.Equal(t, "fault_test.go", filepath.Base(f.Site.File))
}

func TestPackageOf(t *testing.T) {
	tests := []struct{ fn, want string }{
		{"github.com/vkngwrapper/vulkan-vec/vec.(*Vector[...]).At", "github.com/vkngwrapper/vulkan-vec/vec"},
		{"github.com/vkngwrapper/vulkan-vec/vkvec.init.0", "github.com/vkngwrapper/vulkan-vec/vkvec"},
		{"main.main", "main"},
		{"main.(*app).run.func1", "main"},
		{"runtime.goexit", "runtime"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, packageOf(tt.fn), tt.fn)
	}
	require.Equal(t, packageOf(thisFunc()), selfPackage)
}

func TestSiteString(t *testing.T) {
	require.Equal(t, "unknown", Site{}.String())
	require.Equal(t, "a/b.go:12:pkg.F()", Site{File: "a/b.go", Line: 12, Func: "pkg.F"}.String())
}
