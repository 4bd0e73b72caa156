package flyer

import (
	"fmt"
	"strings"
)

// WarningKind classifies a non-fatal condition.
type WarningKind int

const (
	// WarnGenerationDegraded means the fallback summary was used.
	WarnGenerationDegraded WarningKind = iota
	// WarnRender means a line was skipped while drawing.
	WarnRender
	// WarnSuspiciousOutput means the document is smaller than expected.
	WarnSuspiciousOutput
	// WarnOverflow means lines were positioned below the printable area.
	WarnOverflow
)

// String returns the string representation of the warning kind.
func (k WarningKind) String() string {
	switch k {
	case WarnGenerationDegraded:
		return "generation degraded"
	case WarnRender:
		return "render"
	case WarnSuspiciousOutput:
		return "suspicious output"
	case WarnOverflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal condition observed during a run.
type Warning struct {
	Kind    WarningKind
	Stage   Stage
	Message string
	Line    int // Index into Document.Page.Lines, or -1
	Err     error
}

func (w Warning) String() string {
	var sb strings.Builder
	sb.WriteString(w.Kind.String())
	if w.Line >= 0 {
		fmt.Fprintf(&sb, " (line %d)", w.Line)
	}
	sb.WriteString(": ")
	sb.WriteString(w.Message)
	if w.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(w.Err.Error())
	}
	return sb.String()
}

// FormatWarnings renders warnings one per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

// HasWarning reports whether warnings contains one of the given kind.
func HasWarning(warnings []Warning, kind WarningKind) bool {
	for _, w := range warnings {
		if w.Kind == kind {
			return true
		}
	}
	return false
}
