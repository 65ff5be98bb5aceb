// Package mapper assembles the threat-model document from the extracted
// shape graph: classification, containment, flow resolution and rating
// inference feed deterministic document assembly. The mapper never
// validates; it hands a best-effort document plus accumulated findings to
// the caller, and the validator decides what is acceptable.
package mapper

import (
	"github.com/nmoret/diagile/internal/classify"
	"github.com/nmoret/diagile/internal/composite"
	"github.com/nmoret/diagile/internal/config"
	"github.com/nmoret/diagile/internal/diagram"
	"github.com/nmoret/diagile/internal/finding"
	"github.com/nmoret/diagile/internal/flow"
	"github.com/nmoret/diagile/internal/model"
)

// Pipeline wires the conversion stages over one compiled configuration.
// Stateless between runs; safe for concurrent use.
type Pipeline struct {
	cfg      *config.Compiled
	detector *classify.Detector
	levels   *classify.LevelMapper
	flows    *flow.Detector
}

func New(cfg *config.Compiled) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		detector: classify.NewDetector(cfg),
		levels:   classify.NewLevelMapper(cfg),
		flows:    flow.NewDetector(cfg),
	}
}

// Convert runs the full pipeline over raw diagram markup. Extraction failure
// is the only fatal path; every later stage degrades into findings.
// Identical markup and metadata always produce an identical document,
// collection ordering included.
func (p *Pipeline) Convert(markup string, meta model.Metadata) (*model.Document, *finding.List, error) {
	findings := &finding.List{}

	graph, err := diagram.Extract(markup, findings)
	if err != nil {
		findings.Add(finding.Errorf(finding.KindMalformedInput, "",
			"diagram markup cannot be parsed: %v", err))
		return nil, findings, err
	}

	containment := composite.Resolve(graph.Shapes, findings)
	doc := p.assemble(graph, containment, meta, findings)
	return doc, findings, nil
}

// assemble partitions shapes into trust boundaries and components, derives
// per-component technical and data assets, then resolves relations. All
// collections follow diagram document order.
func (p *Pipeline) assemble(graph *diagram.Graph, containment *composite.Resolution,
	meta model.Metadata, findings *finding.List) *model.Document {

	doc := &model.Document{Metadata: meta}

	// Boundary detection runs before component classification so a "DMZ"
	// container becomes a trust boundary, not an unknown component. Only
	// container shapes are promoted: a leaf shape whose label happens to
	// carry boundary vocabulary ("Team Service") stays a component. An
	// explicit boundary or container style attribute marks an empty
	// container.
	isBoundary := make(map[string]bool, len(graph.Shapes))
	boundaryKind := make(map[string]model.BoundaryKind)
	for i := range graph.Shapes {
		shape := &graph.Shapes[i]
		kind, ok := p.detector.BoundaryKind(shape)
		if !ok {
			continue
		}
		style := diagram.ParseStyle(shape.Style)
		if len(containment.Children(shape.ID)) == 0 &&
			style.Get("boundary") == "" && style.Get("container") != "1" {
			continue
		}
		isBoundary[shape.ID] = true
		boundaryKind[shape.ID] = kind
	}

	kinds := make(map[string]model.ComponentKind)
	assetOf := make(map[string]string) // component id -> technical asset id
	dataOf := make(map[string]string)  // component id -> data asset id

	for i := range graph.Shapes {
		shape := &graph.Shapes[i]
		if isBoundary[shape.ID] {
			continue
		}
		component := p.component(shape, containment, isBoundary, findings)
		kinds[shape.ID] = component.Kind

		asset := p.technicalAsset(shape, component.Kind)
		component.TechnicalAssets = []string{asset.ID}
		assetOf[shape.ID] = asset.ID
		doc.TechnicalAssets = append(doc.TechnicalAssets, asset)

		if data, ok := p.dataAsset(shape); ok {
			component.DataAssets = []string{data.ID}
			dataOf[shape.ID] = data.ID
			doc.DataAssets = append(doc.DataAssets, data)
		}

		if parent := containment.Parent(shape.ID); parent != "" && isBoundary[parent] {
			component.TrustBoundaries = []string{parent}
		}

		doc.Components = append(doc.Components, component)
	}

	for i := range graph.Shapes {
		shape := &graph.Shapes[i]
		if !isBoundary[shape.ID] {
			continue
		}
		doc.TrustBoundaries = append(doc.TrustBoundaries,
			p.trustBoundary(shape, boundaryKind[shape.ID], containment, isBoundary, assetOf, dataOf))
	}

	entities := doc.EntityIDs()
	doc.Relations = p.flows.Relations(graph.Edges, entities, kinds, findings)
	return doc
}

func (p *Pipeline) component(shape *diagram.ShapeNode, containment *composite.Resolution,
	isBoundary map[string]bool, findings *finding.List) model.Component {

	style := diagram.ParseStyle(shape.Style)
	kind := p.detector.Classify(shape, findings)

	name := shape.Label
	if name == "" {
		name = shape.ID
	}

	description := style.Get("description")
	if description == "" {
		description = name + " component imported from the architecture diagram."
	}

	var children []string
	for _, child := range containment.Children(shape.ID) {
		if !isBoundary[child] {
			children = append(children, child)
		}
	}

	return model.Component{
		ID:          shape.ID,
		Name:        name,
		Kind:        kind,
		Description: description,
		Tags:        classify.Tags(shape),
		Children:    children,
	}
}

func (p *Pipeline) technicalAsset(shape *diagram.ShapeNode, kind model.ComponentKind) model.TechnicalAsset {
	style := diagram.ParseStyle(shape.Style)

	name := shape.Label
	if name == "" {
		name = shape.ID
	}

	return model.TechnicalAsset{
		ID:            shape.ID + "-asset",
		Name:          name,
		Kind:          kind,
		Description:   "Technical asset backing " + name + ".",
		Usage:         "business",
		Owner:         style.Get("owner"),
		Rating:        p.levels.Rate(shape.Label, shape.Style),
		Justification: style.Get("justification"),
	}
}

// dataAsset derives at most one data asset per component, from the label's
// data-kind cues. The rating combines the data kind's confidentiality with
// inferred integrity/availability.
func (p *Pipeline) dataAsset(shape *diagram.ShapeNode) (model.DataAsset, bool) {
	dk, ok := classify.DataKindFor(p.cfg, shape.Label)
	if !ok {
		return model.DataAsset{}, false
	}

	rating := p.levels.Rate(shape.Label, shape.Style)
	rating.Confidentiality = model.Confidentiality(dk.Confidentiality)

	name := shape.Label
	if name == "" {
		name = shape.ID
	}

	return model.DataAsset{
		ID:          shape.ID + "-data",
		Name:        name + " data",
		Description: dk.Description + " held by " + name + ".",
		Usage:       "business",
		Rating:      rating,
	}, true
}

func (p *Pipeline) trustBoundary(shape *diagram.ShapeNode, kind model.BoundaryKind,
	containment *composite.Resolution, isBoundary map[string]bool,
	assetOf, dataOf map[string]string) model.TrustBoundary {

	style := diagram.ParseStyle(shape.Style)

	name := shape.Label
	if name == "" {
		name = shape.ID
	}

	description := style.Get("description")
	if description == "" {
		description = name + " trust boundary derived from the diagram."
	}

	boundary := model.TrustBoundary{
		ID:          shape.ID,
		Name:        name,
		Description: description,
		Kind:        kind,
	}
	for _, child := range containment.Children(shape.ID) {
		if isBoundary[child] {
			continue
		}
		boundary.Components = append(boundary.Components, child)
		if asset, ok := assetOf[child]; ok {
			boundary.TechnicalAssets = append(boundary.TechnicalAssets, asset)
		}
		if data, ok := dataOf[child]; ok {
			boundary.DataAssets = append(boundary.DataAssets, data)
		}
	}
	return boundary
}
