package diagram

import (
	"errors"
	"testing"

	"github.com/nmoret/diagile/internal/finding"
)

const sampleMarkup = `<mxfile host="app.diagrams.net">
  <diagram id="d1" name="Page-1">
    <mxGraphModel dx="800" dy="600" grid="1">
      <root>
        <mxCell id="0"/>
        <mxCell id="1" parent="0"/>
        <mxCell id="web-1" value="Web App" style="rounded=1;fillColor=#dae8fc" vertex="1" parent="1">
          <mxGeometry x="40" y="40" width="160" height="80" as="geometry"/>
        </mxCell>
        <mxCell id="db-1" value="Orders DB" style="shape=cylinder;whiteSpace=wrap" vertex="1" parent="1">
          <mxGeometry x="320" y="40" width="120" height="100" as="geometry"/>
        </mxCell>
        <mxCell id="zone-1" value="DMZ" style="rounded=0;dashed=1" vertex="1" parent="1">
          <mxGeometry x="20" y="20" width="220" height="140" as="geometry"/>
        </mxCell>
        <mxCell id="flow-1" value="HTTPS" style="edgeStyle=orthogonalEdgeStyle" edge="1" parent="1" source="web-1" target="db-1"/>
      </root>
    </mxGraphModel>
  </diagram>
</mxfile>`

func TestExtract_ShapesAndEdges(t *testing.T) {
	graph, err := Extract(sampleMarkup, &finding.List{})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(graph.Shapes) != 3 {
		t.Fatalf("expected 3 shapes, got %d", len(graph.Shapes))
	}
	if len(graph.Edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(graph.Edges))
	}

	// Document order preserved
	if graph.Shapes[0].ID != "web-1" || graph.Shapes[1].ID != "db-1" || graph.Shapes[2].ID != "zone-1" {
		t.Errorf("shapes out of document order: %+v", graph.Shapes)
	}

	web := graph.ShapeByID("web-1")
	if web == nil {
		t.Fatal("shape web-1 missing")
	}
	if web.Label != "Web App" {
		t.Errorf("expected label 'Web App', got %q", web.Label)
	}
	if web.ParentID != "" {
		t.Errorf("root-layer parent should be dropped, got %q", web.ParentID)
	}
	if web.Geometry.Width != 160 || web.Geometry.Height != 80 {
		t.Errorf("unexpected geometry: %+v", web.Geometry)
	}

	edge := graph.Edges[0]
	if edge.SourceID != "web-1" || edge.TargetID != "db-1" {
		t.Errorf("edge endpoints wrong: %+v", edge)
	}
	if edge.Label != "HTTPS" {
		t.Errorf("expected edge label HTTPS, got %q", edge.Label)
	}
}

func TestExtract_StructuralCellsSkipped(t *testing.T) {
	graph, err := Extract(sampleMarkup, &finding.List{})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	for _, s := range graph.Shapes {
		if s.ID == "0" || s.ID == "1" {
			t.Errorf("structural cell %q leaked into shapes", s.ID)
		}
	}
}

func TestExtract_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		markup string
	}{
		{"truncated xml", `<mxfile><diagram><mxGraphModel><root><mxCell id="a"`},
		{"not a diagram", `<html><body>hello</body></html>`},
		{"empty input", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.markup, &finding.List{})
			if !errors.Is(err, ErrMalformedDiagram) {
				t.Errorf("expected ErrMalformedDiagram, got %v", err)
			}
		})
	}
}

func TestExtract_HalfConnectedEdgeDroppedWithWarning(t *testing.T) {
	markup := `<mxGraphModel><root>
		<mxCell id="0"/><mxCell id="1" parent="0"/>
		<mxCell id="a" value="A" vertex="1" parent="1"/>
		<mxCell id="e" value="broken" edge="1" parent="1" source="a"/>
	</root></mxGraphModel>`

	findings := &finding.List{}
	graph, err := Extract(markup, findings)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(graph.Edges) != 0 {
		t.Errorf("edge missing a target should be dropped, got %+v", graph.Edges)
	}

	warnings := findings.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning for the half-connected edge, got %v", findings.All())
	}
	if warnings[0].Kind != finding.KindStructuralWarning {
		t.Errorf("expected %s, got %s", finding.KindStructuralWarning, warnings[0].Kind)
	}
	if warnings[0].Location != "relations.e" {
		t.Errorf("warning location = %q, want %q", warnings[0].Location, "relations.e")
	}
	if findings.HasErrors() {
		t.Errorf("half-connected edges never block extraction: %v", findings.Errors())
	}
}

func TestGeometry_Contains(t *testing.T) {
	outer := Geometry{X: 0, Y: 0, Width: 100, Height: 100}
	tests := []struct {
		name  string
		inner Geometry
		want  bool
	}{
		{"wholly inside", Geometry{X: 10, Y: 10, Width: 20, Height: 20}, true},
		{"identical box", Geometry{X: 0, Y: 0, Width: 100, Height: 100}, true},
		{"overlapping edge", Geometry{X: 90, Y: 10, Width: 20, Height: 20}, false},
		{"outside", Geometry{X: 200, Y: 200, Width: 10, Height: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.Contains(tt.inner); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}
}
