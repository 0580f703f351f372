package strpack

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// block builds a raw packed block from slot offsets and a string region.
func block(offsets []uint64, region string) []byte {
	b := make([]byte, len(offsets)*SlotSize, len(offsets)*SlotSize+len(region))
	for i, off := range offsets {
		binary.LittleEndian.PutUint64(b[i*SlotSize:], off)
	}
	return append(b, region...)
}

func TestOpen(t *testing.T) {
	p, err := Pack(nil, []string{"-cp", "lib/*", "Main"})
	require.NoError(t, err)

	opened, err := Open(p.Bytes())
	require.NoError(t, err)
	assert.Equal(t, p.Strings(), opened.Strings())
	assert.Equal(t, p.Offsets(), opened.Offsets())
	assert.Equal(t, p.Size(), opened.Size())
}

func TestOpen_HandBuilt(t *testing.T) {
	// Strings need not be in slot order, and may share bytes.
	b := block([]uint64{35, 32, 33, 0}, "xyz\x00")
	p, err := Open(b)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "xyz", "yz"}, p.Strings())
}

func TestOpen_Corrupt(t *testing.T) {
	tests := []struct {
		name  string
		block []byte
		msg   string
	}{
		{"nil", nil, "slot 0"},
		{"short slot", []byte{1, 2, 3}, "slot 0"},
		{"no terminator", block([]uint64{16, 17}, ""), "slot 2"},
		{"offset inside table", block([]uint64{8, 0}, "a\x00"), "outside string region"},
		{"offset past end", block([]uint64{99, 0}, "a\x00"), "outside string region"},
		{"huge offset", block([]uint64{1 << 63, 0}, "a\x00"), "outside string region"},
		{"unterminated string", block([]uint64{16, 0}, "abc"), "not terminated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Open(tt.block)
			require.ErrorIs(t, err, ErrCorrupt)
			assert.Contains(t, err.Error(), tt.msg)
			assert.Nil(t, p)
		})
	}
}

func TestOpen_TerminatorOnly(t *testing.T) {
	p, err := Open(make([]byte, SlotSize))
	require.NoError(t, err)
	assert.Zero(t, p.Len())
	assert.Empty(t, p.Strings())
}

func TestPacked_NilView(t *testing.T) {
	var p *Packed
	assert.Zero(t, p.Len())
	assert.Zero(t, p.Size())
	assert.Nil(t, p.Bytes())
	assert.Empty(t, p.Strings())
	assert.Equal(t, []int{0}, p.Offsets())
}
