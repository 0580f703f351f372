package array

import (
	"testing"

	"github.com/joshuapare/dynmem/mem/alloc"
	"github.com/joshuapare/dynmem/mem/diag"
)

// BenchmarkAppendItem_Sequential measures filling an array one index at a time.
func BenchmarkAppendItem_Sequential(b *testing.B) {
	c := alloc.New(alloc.NewHeap(0), diag.Discard())
	item := u32(42)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		var arr []byte
		capacity := 0
		for i := range 1000 {
			var err error
			arr, err = AppendItem(c, arr, i, &capacity, item, 4)
			if err != nil {
				b.Fatal(err)
			}
		}
		c.Free(arr)
	}
}

// BenchmarkArray_Set is the typed equivalent of BenchmarkAppendItem_Sequential.
func BenchmarkArray_Set(b *testing.B) {
	c := alloc.New(alloc.NewHeap(0), diag.Discard())

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		a := New[uint32](c, 0)
		for i := range 1000 {
			v := uint32(i)
			if err := a.Set(i, &v); err != nil {
				b.Fatal(err)
			}
		}
		a.Release()
	}
}
