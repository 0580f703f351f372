package main

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/joshuapare/dynmem/internal/writer"
	"github.com/joshuapare/dynmem/mem/strpack"
)

func TestPackOutAndInspect(t *testing.T) {
	resetFlags()
	path := filepath.Join(t.TempDir(), "argv.bin")
	packOut = path

	if _, err := captureOutput(t, func() error {
		return runPack([]string{"java", "-version"})
	}); err != nil {
		t.Fatalf("runPack() error = %v", err)
	}

	resetFlags()
	inspectDump = true
	output, err := captureOutput(t, func() error {
		return runInspect([]string{path})
	})
	if err != nil {
		t.Fatalf("runInspect() error = %v", err)
	}
	assertContains(t, output, []string{
		"Size: 38 bytes",
		`[0] @24 "java"`,
		`[1] @29 "-version"`,
		"[2] @0 (terminator)",
		"|........java.-ve|",
		"|rsion.|",
	})
}

func TestPackOutSink(t *testing.T) {
	resetFlags()
	mem := &writer.MemWriter{}
	orig := newSink
	newSink = func(string) writer.Sink { return mem }
	defer func() { newSink = orig }()
	packOut = "ignored"

	if _, err := captureOutput(t, func() error {
		return runPack([]string{"a", "bb", "ccc"})
	}); err != nil {
		t.Fatalf("runPack() error = %v", err)
	}

	p, err := strpack.Open(mem.Buf)
	if err != nil {
		t.Fatalf("sink received an invalid block: %v", err)
	}
	if !reflect.DeepEqual(p.Strings(), []string{"a", "bb", "ccc"}) {
		t.Errorf("strings = %v", p.Strings())
	}
}

func TestInspectErrors(t *testing.T) {
	resetFlags()
	dir := t.TempDir()

	_, err := captureOutput(t, func() error {
		return runInspect([]string{filepath.Join(dir, "missing.bin")})
	})
	if err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.bin")
	if err := os.WriteFile(bad, []byte{0x10, 0, 0, 0, 0, 0, 0, 0, 'x'}, 0644); err != nil {
		t.Fatal(err)
	}
	_, err = captureOutput(t, func() error {
		return runInspect([]string{bad})
	})
	if !errors.Is(err, strpack.ErrCorrupt) {
		t.Errorf("runInspect() error = %v, want ErrCorrupt", err)
	}
}

func TestInspectJSON(t *testing.T) {
	resetFlags()
	block, err := strpack.Pack(nil, []string{"x"})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "x.bin")
	if err := (&writer.FileWriter{Path: path}).WriteBlock(block.Bytes()); err != nil {
		t.Fatal(err)
	}

	jsonOut = true
	output, err := captureOutput(t, func() error {
		return runInspect([]string{path})
	})
	if err != nil {
		t.Fatalf("runInspect() error = %v", err)
	}
	var res packResult
	decodeJSON(t, output, &res)
	if res.Size != 18 || !reflect.DeepEqual(res.Offsets, []int{16, 0}) {
		t.Errorf("inspect = %+v", res)
	}
}
