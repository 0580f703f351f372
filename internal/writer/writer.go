// Package writer provides destinations for finished packed blocks.
package writer

// Sink receives a complete block. Implementations must not retain b.
type Sink interface {
	WriteBlock(b []byte) error
}

// MemWriter keeps a private copy of the last block written.
type MemWriter struct {
	Buf []byte
}

// WriteBlock replaces Buf with a copy of b.
func (w *MemWriter) WriteBlock(b []byte) error {
	w.Buf = append(w.Buf[:0], b...)
	return nil
}
