package report

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nmoret/diagile/internal/finding"
	"github.com/nmoret/diagile/internal/model"
)

// WriteDocument serializes the document as YAML. Serialization order follows
// the document's field order, so identical documents emit identical bytes.
func WriteDocument(w io.Writer, doc *model.Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return enc.Close()
}

// WriteDocumentFile writes the document YAML to a file.
func WriteDocumentFile(path string, doc *model.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteDocument(f, doc)
}

// ReadDocumentFile loads a previously emitted document for re-validation.
func ReadDocumentFile(path string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc model.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &doc, nil
}

// WriteFindings serializes the finding list as YAML, for machine consumers
// that want the full diagnostics next to the document.
func WriteFindings(w io.Writer, findings []finding.Finding) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(findings); err != nil {
		return fmt.Errorf("encode findings: %w", err)
	}
	return enc.Close()
}
