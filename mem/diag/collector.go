package diag

// Summary counts collected diagnostics per severity.
type Summary struct {
	Critical int `json:"critical"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// Collector keeps every diagnostic it receives, optionally forwarding to
// another Reporter. It is the reporter tests use to count failures.
type Collector struct {
	Diagnostics []Diagnostic `json:"diagnostics"`
	Summary     Summary      `json:"summary"`

	next Reporter
}

// NewCollector returns a Collector that forwards to next when next is non-nil.
func NewCollector(next Reporter) *Collector {
	return &Collector{next: next}
}

// Report records d and updates the summary.
func (c *Collector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)

	switch d.Severity {
	case SevCritical:
		c.Summary.Critical++
	case SevError:
		c.Summary.Errors++
	case SevWarning:
		c.Summary.Warnings++
	case SevInfo:
		c.Summary.Info++
	}

	if c.next != nil {
		c.next.Report(d)
	}
}

// Len returns the number of collected diagnostics.
func (c *Collector) Len() int {
	return len(c.Diagnostics)
}

// Last returns the most recent diagnostic, if any.
func (c *Collector) Last() (Diagnostic, bool) {
	if len(c.Diagnostics) == 0 {
		return Diagnostic{}, false
	}
	return c.Diagnostics[len(c.Diagnostics)-1], true
}

// BySeverity returns the collected diagnostics of the given severity.
func (c *Collector) BySeverity(s Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range c.Diagnostics {
		if d.Severity == s {
			out = append(out, d)
		}
	}
	return out
}

// Reset drops everything collected so far.
func (c *Collector) Reset() {
	c.Diagnostics = c.Diagnostics[:0]
	c.Summary = Summary{}
}
