// Package classify resolves raw shapes into typed model entities using the
// compiled synonym tables: component kinds, trust-boundary kinds, CIA
// ratings, data-asset kinds and tags.
package classify

import (
	"strings"

	"github.com/nmoret/diagile/internal/config"
	"github.com/nmoret/diagile/internal/diagram"
	"github.com/nmoret/diagile/internal/finding"
	"github.com/nmoret/diagile/internal/model"
)

// Detector classifies shape nodes. Safe for concurrent use; it holds only
// the immutable compiled configuration.
type Detector struct {
	cfg *config.Compiled
}

func NewDetector(cfg *config.Compiled) *Detector {
	return &Detector{cfg: cfg}
}

// Classify resolves a shape to a component kind. Candidate strings are tried
// in priority order: the explicit type attribute from the style string, the
// full label, the label's individual tokens, then the style's shape family.
// Each candidate is an exact normalized match against the synonym tables; a
// shape no candidate matches degrades to KindUnknown with a warning naming
// the shape id and its raw label.
func (d *Detector) Classify(shape *diagram.ShapeNode, findings *finding.List) model.ComponentKind {
	style := diagram.ParseStyle(shape.Style)
	for _, candidate := range candidates(shape, style) {
		if kind, ok := d.cfg.LookupComponentKind(candidate); ok {
			return kind
		}
	}

	findings.Add(finding.Warnf(finding.KindClassificationWarning,
		"components."+shape.ID,
		"shape %q (label %q) matched no configured component kind", shape.ID, shape.Label))
	return model.KindUnknown
}

// BoundaryKind reports whether a shape names a trust boundary, using the
// same candidate priority as Classify against the boundary table. This is
// vocabulary matching only; the mapper promotes a matching shape only when
// it is a container, so a leaf service whose label carries a boundary token
// still classifies as a component.
func (d *Detector) BoundaryKind(shape *diagram.ShapeNode) (model.BoundaryKind, bool) {
	style := diagram.ParseStyle(shape.Style)
	if attr := style.Get("boundary"); attr != "" {
		if kind, ok := d.cfg.LookupBoundaryKind(attr); ok {
			return kind, true
		}
	}
	for _, candidate := range candidates(shape, style) {
		if kind, ok := d.cfg.LookupBoundaryKind(candidate); ok {
			return kind, true
		}
	}
	return "", false
}

// candidates lists the classification candidates for a shape in priority
// order. The full normalized label comes before its tokens so a multi-word
// synonym ("web application firewall") beats a token hit ("firewall").
func candidates(shape *diagram.ShapeNode, style diagram.Style) []string {
	var out []string
	if attr := style.Get("type"); attr != "" {
		out = append(out, attr)
	}
	if shape.Label != "" {
		out = append(out, shape.Label)
		out = append(out, labelTokens(shape.Label)...)
	}
	if family := style.Family(); family != "" {
		out = append(out, family)
	}
	return out
}

// labelTokens splits a normalized label into its hyphen-separated tokens,
// skipping the degenerate single-token case already covered by the full
// label candidate.
func labelTokens(label string) []string {
	normalized := config.Normalize(label)
	if !strings.Contains(normalized, "-") {
		return nil
	}
	return strings.Split(normalized, "-")
}
