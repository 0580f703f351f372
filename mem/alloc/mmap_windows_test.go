//go:build windows

package alloc

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMmap_VirtualAllocBlock(t *testing.T) {
	m := NewMmap()

	b, err := m.Calloc(4, 1024)
	require.NoError(t, err)
	require.Len(t, b, 4096)
	for i, c := range b {
		require.Zero(t, c, "byte %d of a fresh reservation", i)
	}
	copy(b[4090:], "jvm.dll")
	assert.Equal(t, "jvm.dl", string(b[4090:]))

	m.Free(b)
	assert.Zero(t, m.Stats().InUse)
	m.Free(b)
	assert.Equal(t, uint64(1), m.Stats().Frees)

	huge := MaxAlloc
	huge++
	_, err = m.Malloc(huge)
	assert.ErrorIs(t, err, syscall.ENOMEM)
}
