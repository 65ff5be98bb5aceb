package finding

import "fmt"

// Severity classifies how a finding affects downstream use of the document.
// Warnings never block; whether errors block is the caller's policy decision.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Kind identifies which pipeline rule produced a finding.
type Kind string

const (
	// KindMalformedInput is the only fatal kind: extraction could not
	// produce a shape graph at all.
	KindMalformedInput Kind = "malformed-input"

	// KindStructuralWarning flags containment the diagram declares but the
	// geometry contradicts, or other recoverable structure issues.
	KindStructuralWarning Kind = "structural-warning"

	// KindStructuralError flags containment cycles; the affected shapes are
	// demoted to independent components.
	KindStructuralError Kind = "structural-error"

	// KindClassificationWarning flags a shape no synonym table matched;
	// the component falls back to kind "unknown".
	KindClassificationWarning Kind = "classification-warning"

	// KindDanglingReference flags a relation endpoint that resolves to no
	// declared entity. The relation is still emitted.
	KindDanglingReference Kind = "dangling-reference"

	KindValidationError   Kind = "validation-error"
	KindValidationWarning Kind = "validation-warning"
)

// Finding is a single structured diagnostic. Location is a dotted path into
// the document (e.g. "technical_assets[2].confidentiality").
type Finding struct {
	Kind     Kind              `json:"kind" yaml:"kind"`
	Severity Severity          `json:"severity" yaml:"severity"`
	Message  string            `json:"message" yaml:"message"`
	Location string            `json:"location,omitempty" yaml:"location,omitempty"`
	Details  map[string]string `json:"details,omitempty" yaml:"details,omitempty"`
}

func (f Finding) String() string {
	if f.Location == "" {
		return fmt.Sprintf("[%s] %s: %s", f.Severity, f.Kind, f.Message)
	}
	return fmt.Sprintf("[%s] %s at %s: %s", f.Severity, f.Kind, f.Location, f.Message)
}

// Errorf builds an error-severity finding.
func Errorf(kind Kind, location, format string, args ...any) Finding {
	return Finding{
		Kind:     kind,
		Severity: SeverityError,
		Message:  fmt.Sprintf(format, args...),
		Location: location,
	}
}

// Warnf builds a warning-severity finding.
func Warnf(kind Kind, location, format string, args ...any) Finding {
	return Finding{
		Kind:     kind,
		Severity: SeverityWarning,
		Message:  fmt.Sprintf(format, args...),
		Location: location,
	}
}

// List accumulates findings across pipeline stages. The zero value is ready
// to use.
type List struct {
	findings []Finding
}

// Add appends findings in order.
func (l *List) Add(fs ...Finding) {
	l.findings = append(l.findings, fs...)
}

// All returns the accumulated findings in insertion order.
func (l *List) All() []Finding {
	return l.findings
}

// Errors returns only the error-severity findings.
func (l *List) Errors() []Finding {
	var out []Finding
	for _, f := range l.findings {
		if f.Severity == SeverityError {
			out = append(out, f)
		}
	}
	return out
}

// Warnings returns only the warning-severity findings.
func (l *List) Warnings() []Finding {
	var out []Finding
	for _, f := range l.findings {
		if f.Severity == SeverityWarning {
			out = append(out, f)
		}
	}
	return out
}

// HasErrors reports whether any finding carries error severity.
func (l *List) HasErrors() bool {
	for _, f := range l.findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// CountByKind tallies findings per kind.
func (l *List) CountByKind() map[Kind]int {
	counts := make(map[Kind]int)
	for _, f := range l.findings {
		counts[f.Kind]++
	}
	return counts
}

// Len returns the number of accumulated findings.
func (l *List) Len() int { return len(l.findings) }
