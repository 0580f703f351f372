package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileWriter replaces the file at Path with each block, atomically.
type FileWriter struct {
	Path string
}

// WriteBlock writes b to a temp file beside Path, syncs it, then renames it
// over Path. Readers see either the old file or the whole new block.
func (w *FileWriter) WriteBlock(b []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(w.Path), ".dynmem-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(b); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, w.Path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	committed = true
	return nil
}
