package transcript

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMultisetEqualReflexiveAndSymmetric(t *testing.T) {
	a := []string{"1", "2", "2", "3"}
	b := []string{"3", "2", "1", "2"}

	require.True(t, MultisetEqual(a, a))
	require.Equal(t, MultisetEqual(a, b), MultisetEqual(b, a))
	require.True(t, MultisetEqual(a, b))
}

func TestMultisetEqualDetectsMismatch(t *testing.T) {
	a := []string{"1", "2", "3"}
	b := []string{"1", "2", "4"}
	require.False(t, MultisetEqual(a, b))
}

func TestMultisetEqualDifferentLengths(t *testing.T) {
	require.False(t, MultisetEqual([]string{"1"}, []string{"1", "1"}))
}

func TestMultisetRemoveIsOrderIndependent(t *testing.T) {
	pool := []string{"a", "b", "c", "d"}

	remaining1, removed1 := MultisetRemove(pool, []string{"b", "d"})
	remaining2, removed2 := MultisetRemove(pool, []string{"d", "b"})

	require.Equal(t, removed1, removed2)
	require.True(t, MultisetEqual(remaining1, remaining2))
}

func TestMultisetRemoveConservativeOnDuplicate(t *testing.T) {
	pool := []string{"a", "b"}

	_, removed := MultisetRemove(pool, []string{"a", "a"})
	require.Equal(t, 1, removed)
}
