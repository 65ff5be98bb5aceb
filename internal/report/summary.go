package report

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/nmoret/diagile/internal/finding"
	"github.com/nmoret/diagile/internal/model"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// Summary renders the human-facing conversion summary. Styling is dropped
// when the writer is not a terminal.
type Summary struct {
	w      io.Writer
	styled bool
}

// NewSummary builds a summary writer, enabling color only for terminals.
func NewSummary(w io.Writer) *Summary {
	styled := false
	if f, ok := w.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}
	return &Summary{w: w, styled: styled}
}

func (s *Summary) render(style lipgloss.Style, text string) string {
	if !s.styled {
		return text
	}
	return style.Render(text)
}

// Print writes the document statistics and the finding tallies.
func (s *Summary) Print(doc *model.Document, findings []finding.Finding) {
	fmt.Fprintln(s.w, s.render(headerStyle, "Conversion summary"))

	if doc != nil {
		fmt.Fprintf(s.w, "  components:       %d\n", len(doc.Components))
		fmt.Fprintf(s.w, "  technical assets: %d\n", len(doc.TechnicalAssets))
		fmt.Fprintf(s.w, "  data assets:      %d\n", len(doc.DataAssets))
		fmt.Fprintf(s.w, "  trust boundaries: %d\n", len(doc.TrustBoundaries))
		fmt.Fprintf(s.w, "  relations:        %d\n", len(doc.Relations))
	}

	errors, warnings := 0, 0
	byKind := make(map[finding.Kind]int)
	for _, f := range findings {
		byKind[f.Kind]++
		if f.Severity == finding.SeverityError {
			errors++
		} else {
			warnings++
		}
	}

	switch {
	case errors > 0:
		fmt.Fprintln(s.w, s.render(errorStyle, fmt.Sprintf("  %d error(s), %d warning(s)", errors, warnings)))
	case warnings > 0:
		fmt.Fprintln(s.w, s.render(warningStyle, fmt.Sprintf("  0 errors, %d warning(s)", warnings)))
	default:
		fmt.Fprintln(s.w, s.render(okStyle, "  no findings"))
	}

	kinds := make([]string, 0, len(byKind))
	for k := range byKind {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Fprintln(s.w, s.render(dimStyle, fmt.Sprintf("    %s: %d", k, byKind[finding.Kind(k)])))
	}
}

// PrintFindings lists every finding, one line each, styled by severity.
func (s *Summary) PrintFindings(findings []finding.Finding) {
	for _, f := range findings {
		style := warningStyle
		if f.Severity == finding.SeverityError {
			style = errorStyle
		}
		fmt.Fprintln(s.w, s.render(style, "  "+f.String()))
	}
}
