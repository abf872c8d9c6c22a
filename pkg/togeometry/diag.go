package togeometry

import (
	"fmt"
	"log"
)

// Diagnostic codes for the non-fatal conditions a conversion can hit.
const (
	DiagCurvedEdges         = "curved-edges"
	DiagOpenBoundary        = "open-boundary"
	DiagDegenerateRing      = "degenerate-ring"
	DiagNonPlanar           = "non-planar"
	DiagHoleTouchesBoundary = "hole-touches-boundary"
	DiagUnsupportedType     = "unsupported-type"
)

// Diagnostic is a non-fatal condition reported during conversion, such
// as a surface being meshed instead of reconstructed exactly.
type Diagnostic struct {
	Code    string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Code, d.Message)
}

// DiagnosticSink receives conversion diagnostics. A sink is passed into
// the converter explicitly so callers can observe warnings without
// capturing process-wide output.
type DiagnosticSink interface {
	Warn(d Diagnostic)
}

// DiagnosticLog is a DiagnosticSink that records diagnostics in order.
type DiagnosticLog struct {
	Diagnostics []Diagnostic
}

// Warn appends the diagnostic to the log.
func (l *DiagnosticLog) Warn(d Diagnostic) {
	l.Diagnostics = append(l.Diagnostics, d)
}

// Has reports whether the log contains a diagnostic with the given code.
func (l *DiagnosticLog) Has(code string) bool {
	for _, d := range l.Diagnostics {
		if d.Code == code {
			return true
		}
	}
	return false
}

// logSink writes diagnostics to the standard logger. It is the default
// sink when none is injected.
type logSink struct{}

func (logSink) Warn(d Diagnostic) {
	log.Printf("togeometry: %s", d)
}
