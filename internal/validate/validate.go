// Package validate runs the ordered validation passes over an assembled
// document. The validator is stateless and read-only: it accumulates
// findings, it never repairs the document, and whether errors block
// downstream use is the caller's policy decision.
package validate

import (
	"github.com/nmoret/diagile/internal/config"
	"github.com/nmoret/diagile/internal/finding"
	"github.com/nmoret/diagile/internal/model"
)

// Pass is one validation layer. Passes run in registration order and never
// short-circuit each other; a pass may mark a root collection as skipped so
// later passes that depend on it stay quiet about that collection only.
type Pass interface {
	Name() string
	Check(ctx *Context) []finding.Finding
}

// Context carries the document and shared lookups through the passes.
type Context struct {
	Doc *model.Document
	Cfg *config.Compiled

	// Entities is the declared entity id space (everything but relations).
	Entities map[string]bool

	// Skipped marks root collections reported missing by the structural
	// pass, keyed by collection name.
	Skipped map[string]bool
}

// Result is the validator's verdict: every finding in pass order, plus the
// error summary callers branch on.
type Result struct {
	Findings []finding.Finding
}

// HasErrors reports whether any finding carries error severity.
func (r Result) HasErrors() bool {
	for _, f := range r.Findings {
		if f.Severity == finding.SeverityError {
			return true
		}
	}
	return false
}

// Errors returns the error-severity findings.
func (r Result) Errors() []finding.Finding {
	var out []finding.Finding
	for _, f := range r.Findings {
		if f.Severity == finding.SeverityError {
			out = append(out, f)
		}
	}
	return out
}

// Validator is the ordered pass registry.
type Validator struct {
	passes []Pass
}

// New builds the standard seven-pass validator.
func New() *Validator {
	return &Validator{passes: []Pass{
		structuralPass{},
		enumPass{},
		namingPass{},
		uniquenessPass{},
		referencePass{},
		compliancePass{},
		ciaPass{},
	}}
}

// Passes returns the registered passes, for inspection in tests.
func (v *Validator) Passes() []Pass { return v.passes }

// Run executes every pass in order and accumulates their findings.
func (v *Validator) Run(doc *model.Document, cfg *config.Compiled) Result {
	ctx := &Context{
		Doc:      doc,
		Cfg:      cfg,
		Entities: doc.EntityIDs(),
		Skipped:  make(map[string]bool),
	}

	var result Result
	for _, pass := range v.passes {
		result.Findings = append(result.Findings, pass.Check(ctx)...)
	}
	return result
}
