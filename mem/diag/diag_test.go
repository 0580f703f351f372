package diag

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "INFO", SevInfo.String())
	assert.Equal(t, "WARNING", SevWarning.String())
	assert.Equal(t, "ERROR", SevError.String())
	assert.Equal(t, "CRITICAL", SevCritical.String())
	assert.Equal(t, "UNKNOWN", Severity(42).String())
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Severity: SevError, Op: "malloc", Size: 64, Code: 12, Message: "cannot allocate memory"}
	assert.Equal(t, "error 12 in malloc: cannot allocate memory", d.String())
}

func TestDiagnosticJSON(t *testing.T) {
	d := Diagnostic{Severity: SevError, Op: "realloc", Code: 12, Message: "cannot allocate memory"}
	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"severity":"ERROR"`)
	assert.Contains(t, string(out), `"op":"realloc"`)
	assert.NotContains(t, string(out), `"size"`)
}

func TestSlogReporter(t *testing.T) {
	var out bytes.Buffer
	r := NewSlog(slog.New(slog.NewTextHandler(&out, nil)))

	r.Report(Diagnostic{Severity: SevError, Op: "calloc", Size: 40, Code: 12, Message: "cannot allocate memory"})

	line := out.String()
	assert.Contains(t, line, "level=ERROR")
	assert.Contains(t, line, "op=calloc")
	assert.Contains(t, line, "size=40")
	assert.Contains(t, line, "code=12")
}

func TestSlogReporterLevels(t *testing.T) {
	var out bytes.Buffer
	r := NewSlog(slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelWarn})))

	r.Report(Diagnostic{Severity: SevInfo, Op: "malloc"})
	assert.Empty(t, out.String(), "info should be filtered at warn level")

	r.Report(Diagnostic{Severity: SevWarning, Op: "malloc"})
	assert.Contains(t, out.String(), "level=WARN")
}

func TestCollector(t *testing.T) {
	var forwarded []Diagnostic
	c := NewCollector(ReporterFunc(func(d Diagnostic) { forwarded = append(forwarded, d) }))

	_, ok := c.Last()
	require.False(t, ok)

	c.Report(Diagnostic{Severity: SevError, Op: "malloc"})
	c.Report(Diagnostic{Severity: SevWarning, Op: "realloc"})
	c.Report(Diagnostic{Severity: SevError, Op: "calloc"})

	require.Equal(t, 3, c.Len())
	assert.Equal(t, 2, c.Summary.Errors)
	assert.Equal(t, 1, c.Summary.Warnings)
	assert.Len(t, c.BySeverity(SevError), 2)
	assert.Len(t, forwarded, 3)

	last, ok := c.Last()
	require.True(t, ok)
	assert.Equal(t, "calloc", last.Op)

	c.Reset()
	assert.Zero(t, c.Len())
	assert.Equal(t, Summary{}, c.Summary)
}

func TestDiscard(t *testing.T) {
	// Must not panic or write anywhere visible.
	Discard().Report(Diagnostic{Severity: SevCritical, Op: "malloc"})
}
