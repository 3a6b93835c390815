//go:build vecrelease

package vec

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestReleaseSkipsBoundsChecks(t *testing.T) {
	require.False(t, Checked)

	var v Vector[int]
	v.Resize(4)
	v.Resize(1)

	// Slots past the length are readable without a fault.
	require.Equal(t, 0, v.At(3))
}

func TestReleaseStillFaultsOnOverflow(t *testing.T) {
	var v Vector[[1 << 20]byte]
	err := Catch(func() { v.Grow(math.MaxInt / 4) })
	require.True(t, errors.Is(err, ErrOverflow))

	var f *Fault
	require.True(t, errors.As(err, &f))
	require.Equal(t, Site{}, f.Site)
}
