// Package diag carries the out-of-band diagnostic channel for allocation
// failures.
//
// Every failed allocation produces exactly one Diagnostic. The result value
// returned to the caller is always nil on failure, so a caller that ignores the
// channel can still detect the failure; the diagnostic exists for humans and
// logs.
package diag

import (
	"fmt"
	"strings"
)

// Severity classifies how serious a diagnostic is.
type Severity int

const (
	SevInfo     Severity = iota // Informational
	SevWarning                  // Recoverable, but worth noticing
	SevError                    // An operation failed and returned nothing
	SevCritical                 // The process cannot continue
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	case SevCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// MarshalText renders the severity by name so JSON output stays readable.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Diagnostic is a single report on the channel.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Op       string   `json:"op"`             // failed operation, e.g. "malloc"
	Size     int      `json:"size,omitempty"` // requested bytes, when known
	Code     int      `json:"code"`           // platform error number, 0 when none
	Message  string   `json:"message"`        // platform error description
}

// String renders the diagnostic the way the launcher always printed it:
// "error 12 in malloc: cannot allocate memory".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %d in %s: %s", strings.ToLower(d.Severity.String()), d.Code, d.Op, d.Message)
}
