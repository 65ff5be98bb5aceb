package diagram

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nmoret/diagile/internal/finding"
)

// ErrMalformedDiagram is the only fatal extraction error: the markup cannot
// be parsed into any graph at all. Everything recoverable downstream becomes
// a finding instead.
var ErrMalformedDiagram = errors.New("malformed diagram markup")

// mxCell mirrors one <mxCell> element. drawio wraps cells in an mxfile /
// diagram / mxGraphModel / root hierarchy, but the cells themselves are the
// only elements that matter.
type mxCell struct {
	ID       string      `xml:"id,attr"`
	Value    string      `xml:"value,attr"`
	Style    string      `xml:"style,attr"`
	Vertex   string      `xml:"vertex,attr"`
	Edge     string      `xml:"edge,attr"`
	Parent   string      `xml:"parent,attr"`
	Source   string      `xml:"source,attr"`
	Target   string      `xml:"target,attr"`
	Geometry *mxGeometry `xml:"mxGeometry"`
}

type mxGeometry struct {
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
}

// Extract parses diagram markup into an ordered shape/edge graph. Shapes and
// edges are distinguished structurally: a cell carrying two endpoint
// references is an edge, everything else with an id is a shape. Cells "0"
// and "1" are the mxGraph structural layers and are skipped, as are parent
// references to them. Half-connected edges cannot form a relation; they are
// dropped with a structural warning.
func Extract(markup string, findings *finding.List) (*Graph, error) {
	dec := xml.NewDecoder(strings.NewReader(markup))
	graph := &Graph{}
	sawModel := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDiagram, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "mxGraphModel":
			sawModel = true
		case "mxCell":
			var cell mxCell
			if err := dec.DecodeElement(&cell, &start); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedDiagram, err)
			}
			appendCell(graph, cell, findings)
		}
	}

	if !sawModel {
		return nil, fmt.Errorf("%w: no mxGraphModel element", ErrMalformedDiagram)
	}
	return graph, nil
}

func appendCell(graph *Graph, cell mxCell, findings *finding.List) {
	if cell.ID == "" || isStructuralID(cell.ID) {
		return
	}

	if cell.Edge == "1" || (cell.Source != "" && cell.Target != "") {
		if cell.Source == "" || cell.Target == "" {
			findings.Add(finding.Warnf(finding.KindStructuralWarning,
				"relations."+cell.ID,
				"edge %q is missing a source or target endpoint and was ignored", cell.ID))
			return
		}
		graph.Edges = append(graph.Edges, Edge{
			ID:       cell.ID,
			SourceID: cell.Source,
			TargetID: cell.Target,
			Style:    cell.Style,
			Label:    cell.Value,
		})
		return
	}

	parent := cell.Parent
	if isStructuralID(parent) {
		parent = ""
	}
	graph.Shapes = append(graph.Shapes, ShapeNode{
		ID:       cell.ID,
		Label:    cell.Value,
		Style:    cell.Style,
		Geometry: parseGeometry(cell.Geometry),
		ParentID: parent,
	})
}

func isStructuralID(id string) bool {
	return id == "0" || id == "1"
}

func parseGeometry(g *mxGeometry) Geometry {
	if g == nil {
		return Geometry{}
	}
	return Geometry{
		X:      parseFloat(g.X),
		Y:      parseFloat(g.Y),
		Width:  parseFloat(g.Width),
		Height: parseFloat(g.Height),
	}
}

func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
