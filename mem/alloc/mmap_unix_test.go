//go:build linux || darwin || freebsd || netbsd || openbsd

package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMmap_Lifecycle(t *testing.T) {
	m := NewMmap()

	b, err := m.Calloc(16, 8)
	require.NoError(t, err)
	require.Len(t, b, 128)
	for i, c := range b {
		require.Zero(t, c, "byte %d of a fresh mapping", i)
	}
	copy(b, "launcher")

	grown, err := m.Realloc(b, 10000)
	require.NoError(t, err)
	require.Len(t, grown, 10000)
	assert.Equal(t, "launcher", string(grown[:8]))

	shrunk, err := m.Realloc(grown, 4)
	require.NoError(t, err)
	assert.Equal(t, "laun", string(shrunk))

	st := m.Stats()
	assert.Equal(t, uint64(1), st.Mallocs)
	assert.Equal(t, uint64(2), st.Reallocs)
	assert.Equal(t, 10000, st.InUse)

	m.Free(shrunk)
	assert.Zero(t, m.Stats().InUse)

	// A second free of the same block is a no-op.
	m.Free(shrunk)
	assert.Equal(t, uint64(1), m.Stats().Frees)
}

func TestMmap_EdgeSizes(t *testing.T) {
	m := NewMmap()

	empty, err := m.Malloc(0)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
	m.Free(empty)

	_, err = m.Malloc(-1)
	require.Error(t, err)

	huge := MaxAlloc
	huge++
	_, err = m.Malloc(huge)
	require.Error(t, err)

	fresh, err := m.Realloc(nil, 32)
	require.NoError(t, err)
	assert.Len(t, fresh, 32)
	m.Free(fresh)
}

func TestMmap_ThroughChecked(t *testing.T) {
	c, col := newTestChecked(t, NewMmap())

	_, err := c.Malloc(-1)
	require.ErrorIs(t, err, ErrNoMemory)
	require.Equal(t, 1, col.Len())
	assert.NotZero(t, col.Diagnostics[0].Code, "mmap failures carry the platform errno")
}
