package alloc

import (
	"errors"
	"math"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/dynmem/mem/diag"
)

func TestChecked_Success(t *testing.T) {
	c, col := newTestChecked(t, NewHeap(0))

	b, err := c.Malloc(8)
	require.NoError(t, err)
	assert.Len(t, b, 8)

	z, err := c.Calloc(3, 4)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 12), z)

	r, err := c.ReallocArray(z, 5, 4)
	require.NoError(t, err)
	assert.Len(t, r, 20)

	c.Free(b)
	c.Free(r)
	c.Free(nil)

	assert.Zero(t, col.Len(), "no diagnostics on success")
}

func TestChecked_FailureReportsOnce(t *testing.T) {
	tests := []struct {
		name string
		call func(c *Checked) ([]byte, error)
		op   string
	}{
		{"malloc", func(c *Checked) ([]byte, error) { return c.Malloc(16) }, "malloc"},
		{"calloc", func(c *Checked) ([]byte, error) { return c.Calloc(2, 8) }, "calloc"},
		{"realloc", func(c *Checked) ([]byte, error) { return c.Realloc([]byte{1}, 16) }, "realloc"},
		{"realloc array", func(c *Checked) ([]byte, error) { return c.ReallocArray(nil, 2, 8) }, "realloc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, col := newTestChecked(t, FailOn(nil, 1))

			b, err := tt.call(c)
			require.Nil(t, b)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNoMemory))
			assert.True(t, errors.Is(err, syscall.ENOMEM))

			var aerr *Error
			require.True(t, errors.As(err, &aerr))
			assert.Equal(t, tt.op, aerr.Op)
			assert.Equal(t, 16, aerr.Size)

			require.Equal(t, 1, col.Len())
			d, _ := col.Last()
			assert.Equal(t, diag.SevError, d.Severity)
			assert.Equal(t, tt.op, d.Op)
			assert.Equal(t, int(syscall.ENOMEM), d.Code)
			assert.Equal(t, syscall.ENOMEM.Error(), d.Message)
		})
	}
}

func TestChecked_OverflowIsAllocationFailure(t *testing.T) {
	c, col := newTestChecked(t, NewHeap(0))

	_, err := c.Calloc(math.MaxInt, 8)
	require.ErrorIs(t, err, ErrNoMemory)

	_, err = c.ReallocArray(nil, math.MaxInt, 8)
	require.ErrorIs(t, err, ErrNoMemory)

	_, err = c.Malloc(-1)
	require.ErrorIs(t, err, ErrNoMemory)

	require.Equal(t, 3, col.Len())
	assert.Equal(t, "calloc", col.Diagnostics[0].Op)
	assert.Equal(t, "realloc", col.Diagnostics[1].Op)
	assert.Equal(t, "malloc", col.Diagnostics[2].Op)
	assert.Zero(t, col.Diagnostics[2].Size)
}

func TestChecked_NonErrnoError(t *testing.T) {
	col := diag.NewCollector(nil)
	c := New(refusing{}, col)

	_, err := c.Malloc(1)
	require.ErrorIs(t, err, ErrNoMemory)

	d, ok := col.Last()
	require.True(t, ok)
	assert.Zero(t, d.Code)
	assert.Equal(t, "refused", d.Message)
}

func TestNewDefaults(t *testing.T) {
	c := New(nil, nil)
	_, isHeap := c.Allocator().(*Heap)
	assert.True(t, isHeap)
	assert.NotNil(t, c.Reporter())
}

type refusing struct{}

func (refusing) Malloc(int) ([]byte, error)          { return nil, errors.New("refused") }
func (refusing) Calloc(int, int) ([]byte, error)     { return nil, errors.New("refused") }
func (refusing) Realloc([]byte, int) ([]byte, error) { return nil, errors.New("refused") }
func (refusing) Free([]byte)                         {}
