package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nmoret/diagile/internal/config"
	"github.com/nmoret/diagile/internal/finding"
	"github.com/nmoret/diagile/internal/model"
)

const sampleMarkup = `<mxfile host="app.diagrams.net">
  <diagram id="d1" name="Page-1">
    <mxGraphModel dx="800" dy="600" grid="1">
      <root>
        <mxCell id="0"/>
        <mxCell id="1" parent="0"/>
        <mxCell id="zone-1" value="DMZ" style="rounded=0;dashed=1" vertex="1" parent="1">
          <mxGeometry x="20" y="20" width="220" height="140" as="geometry"/>
        </mxCell>
        <mxCell id="web-1" value="Web App" style="rounded=1;fillColor=#dae8fc" vertex="1" parent="1">
          <mxGeometry x="40" y="40" width="160" height="80" as="geometry"/>
        </mxCell>
        <mxCell id="db-1" value="Orders DB" style="shape=cylinder;whiteSpace=wrap" vertex="1" parent="1">
          <mxGeometry x="320" y="40" width="120" height="100" as="geometry"/>
        </mxCell>
        <mxCell id="flow-1" value="HTTPS" style="edgeStyle=orthogonalEdgeStyle" edge="1" parent="1" source="web-1" target="db-1"/>
      </root>
    </mxGraphModel>
  </diagram>
</mxfile>`

func newPipeline(t *testing.T) *Pipeline {
	t.Helper()
	compiled, err := config.Default().Compile()
	require.NoError(t, err)
	return New(compiled)
}

func testMeta() model.Metadata {
	return model.Metadata{
		Title:       "Shop Architecture",
		Description: "Threat model generated from the shop architecture diagram.",
		Date:        "2026-01-15",
		Author:      "security-team",
	}
}

func TestConvert_AssemblesDocument(t *testing.T) {
	doc, findings, err := newPipeline(t).Convert(sampleMarkup, testMeta())
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Equal(t, "Shop Architecture", doc.Metadata.Title)

	require.Len(t, doc.Components, 2)
	web, db := doc.Components[0], doc.Components[1]
	assert.Equal(t, "web-1", web.ID)
	assert.Equal(t, model.KindWebApplication, web.Kind)
	assert.Equal(t, "db-1", db.ID)
	assert.Equal(t, model.KindDatabase, db.Kind)

	// One technical asset per component.
	require.Len(t, doc.TechnicalAssets, 2)
	assert.Equal(t, "web-1-asset", doc.TechnicalAssets[0].ID)
	assert.True(t, doc.TechnicalAssets[0].Rating.Valid())

	// "Orders DB" carries business data.
	require.Len(t, doc.DataAssets, 1)
	assert.Equal(t, "db-1-data", doc.DataAssets[0].ID)
	assert.Equal(t, model.ConfidentialityRestricted, doc.DataAssets[0].Rating.Confidentiality)

	require.Len(t, doc.Relations, 1)
	rel := doc.Relations[0]
	assert.Equal(t, "web-1", rel.SourceID)
	assert.Equal(t, "db-1", rel.TargetID)
	assert.Equal(t, "https", rel.Protocol)
	assert.True(t, rel.Encryption)

	assert.False(t, findings.HasErrors(), "clean diagram must not produce errors: %v", findings.All())
}

func TestConvert_ContainerBecomesTrustBoundary(t *testing.T) {
	doc, _, err := newPipeline(t).Convert(sampleMarkup, testMeta())
	require.NoError(t, err)

	require.Len(t, doc.TrustBoundaries, 1)
	zone := doc.TrustBoundaries[0]
	assert.Equal(t, "zone-1", zone.ID)
	assert.Equal(t, model.BoundaryNetwork, zone.Kind)
	assert.Equal(t, []string{"web-1"}, zone.Components)
	assert.Equal(t, []string{"web-1-asset"}, zone.TechnicalAssets)

	// The DMZ container must not also appear as a component.
	for _, c := range doc.Components {
		assert.NotEqual(t, "zone-1", c.ID)
	}

	// Contained component points back at its boundary.
	web := doc.Components[0]
	assert.Equal(t, []string{"zone-1"}, web.TrustBoundaries)
}

func TestConvert_Deterministic(t *testing.T) {
	pipeline := newPipeline(t)

	first, _, err := pipeline.Convert(sampleMarkup, testMeta())
	require.NoError(t, err)
	second, _, err := pipeline.Convert(sampleMarkup, testMeta())
	require.NoError(t, err)

	a, err := yaml.Marshal(first)
	require.NoError(t, err)
	b, err := yaml.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b), "identical input must serialize byte-identically")
}

func TestConvert_MalformedMarkupFatal(t *testing.T) {
	doc, findings, err := newPipeline(t).Convert("<html>not a diagram</html>", testMeta())
	require.Error(t, err)
	assert.Nil(t, doc)

	require.Equal(t, 1, findings.Len())
	assert.Equal(t, finding.KindMalformedInput, findings.All()[0].Kind)
	assert.True(t, findings.HasErrors())
}

func TestConvert_UnknownShapeDegrades(t *testing.T) {
	markup := `<mxGraphModel><root>
		<mxCell id="0"/><mxCell id="1" parent="0"/>
		<mxCell id="m-1" value="Quantum Flux Capacitor" vertex="1" parent="1">
			<mxGeometry x="0" y="0" width="100" height="60" as="geometry"/>
		</mxCell>
	</root></mxGraphModel>`

	doc, findings, err := newPipeline(t).Convert(markup, testMeta())
	require.NoError(t, err)

	require.Len(t, doc.Components, 1)
	assert.Equal(t, model.KindUnknown, doc.Components[0].Kind)

	warnings := findings.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, finding.KindClassificationWarning, warnings[0].Kind)
	assert.False(t, findings.HasErrors(), "classification misses never block assembly")
}

func TestConvert_LeafWithBoundaryVocabularyStaysComponent(t *testing.T) {
	markup := `<mxGraphModel><root>
		<mxCell id="0"/><mxCell id="1" parent="0"/>
		<mxCell id="svc-1" value="Team Service" vertex="1" parent="1">
			<mxGeometry x="0" y="0" width="100" height="60" as="geometry"/>
		</mxCell>
	</root></mxGraphModel>`

	doc, _, err := newPipeline(t).Convert(markup, testMeta())
	require.NoError(t, err)

	assert.Empty(t, doc.TrustBoundaries, "a childless shape never becomes a trust boundary")
	require.Len(t, doc.Components, 1)
	assert.Equal(t, "svc-1", doc.Components[0].ID)
	assert.Equal(t, model.KindService, doc.Components[0].Kind)
	require.Len(t, doc.TechnicalAssets, 1)
	assert.Equal(t, "svc-1-asset", doc.TechnicalAssets[0].ID)
}

func TestConvert_EmptyContainerWithBoundaryAttr(t *testing.T) {
	markup := `<mxGraphModel><root>
		<mxCell id="0"/><mxCell id="1" parent="0"/>
		<mxCell id="zone-9" value="Staging" style="boundary=network;rounded=0" vertex="1" parent="1">
			<mxGeometry x="0" y="0" width="300" height="200" as="geometry"/>
		</mxCell>
	</root></mxGraphModel>`

	doc, _, err := newPipeline(t).Convert(markup, testMeta())
	require.NoError(t, err)

	require.Len(t, doc.TrustBoundaries, 1)
	assert.Equal(t, "zone-9", doc.TrustBoundaries[0].ID)
	assert.Equal(t, model.BoundaryNetwork, doc.TrustBoundaries[0].Kind)
	assert.Empty(t, doc.Components)
}

func TestConvert_DanglingEdgeSurvives(t *testing.T) {
	markup := `<mxGraphModel><root>
		<mxCell id="0"/><mxCell id="1" parent="0"/>
		<mxCell id="svc-1" value="API Service" vertex="1" parent="1">
			<mxGeometry x="0" y="0" width="100" height="60" as="geometry"/>
		</mxCell>
		<mxCell id="e-1" edge="1" parent="1" source="svc-1" target="ghost-9"/>
	</root></mxGraphModel>`

	doc, findings, err := newPipeline(t).Convert(markup, testMeta())
	require.NoError(t, err)

	require.Len(t, doc.Relations, 1)
	assert.Equal(t, "ghost-9", doc.Relations[0].TargetID)
	assert.Equal(t, 1, findings.CountByKind()[finding.KindDanglingReference])
}
