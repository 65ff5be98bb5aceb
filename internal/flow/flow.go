// Package flow resolves extracted edges into model relations: endpoint
// resolution, relation-kind classification, and protocol inference with the
// protocol's security attributes.
package flow

import (
	"fmt"
	"strings"

	"github.com/nmoret/diagile/internal/config"
	"github.com/nmoret/diagile/internal/diagram"
	"github.com/nmoret/diagile/internal/finding"
	"github.com/nmoret/diagile/internal/model"
)

// Detector turns edges into relations. Safe for concurrent use.
type Detector struct {
	cfg *config.Compiled
}

func NewDetector(cfg *config.Compiled) *Detector {
	return &Detector{cfg: cfg}
}

// Relations resolves every edge against the entity id space, in document
// order. A dangling endpoint produces a finding and the relation is still
// emitted with the unresolved id, so consumers see the reference explicitly
// instead of data silently disappearing.
func (d *Detector) Relations(edges []diagram.Edge, entities map[string]bool,
	kinds map[string]model.ComponentKind, findings *finding.List) []model.Relation {

	relations := make([]model.Relation, 0, len(edges))
	for i := range edges {
		relations = append(relations, d.relation(&edges[i], entities, kinds, findings))
	}
	return relations
}

func (d *Detector) relation(edge *diagram.Edge, entities map[string]bool,
	kinds map[string]model.ComponentKind, findings *finding.List) model.Relation {

	style := diagram.ParseStyle(edge.Style)
	location := "relations." + edge.ID

	for _, endpoint := range []string{edge.SourceID, edge.TargetID} {
		if !entities[endpoint] {
			findings.Add(finding.Warnf(finding.KindDanglingReference, location,
				"relation %q references %q which resolves to no declared entity", edge.ID, endpoint))
		}
	}

	rel := model.Relation{
		ID:       edge.ID,
		Name:     edge.Label,
		Kind:     d.relationKind(edge, style),
		SourceID: edge.SourceID,
		TargetID: edge.TargetID,
	}
	if rel.Name == "" {
		rel.Name = fmt.Sprintf("%s to %s", edge.SourceID, edge.TargetID)
	}

	rel.Protocol = d.inferProtocol(edge, style, kinds)
	if p, ok := d.cfg.ProtocolInfo(rel.Protocol); ok {
		rel.Encryption = p.Encryption
		rel.Authentication = p.Authentication
		rel.Authorization = p.Authorization
	}
	rel.Description = fmt.Sprintf("%s from %s to %s over %s.",
		rel.Kind, edge.SourceID, edge.TargetID, rel.Protocol)
	return rel
}

// relationKind classifies the edge against the relation-kind table: explicit
// style attribute, then the label and its tokens. Unmatched edges default to
// data-flow, the dominant relation in architecture diagrams.
func (d *Detector) relationKind(edge *diagram.Edge, style diagram.Style) model.RelationKind {
	if attr := style.Get("kind"); attr != "" {
		if kind, ok := d.cfg.LookupRelationKind(attr); ok {
			return kind
		}
	}
	for _, candidate := range labelCandidates(edge.Label) {
		if kind, ok := d.cfg.LookupRelationKind(candidate); ok {
			return kind
		}
	}
	return model.RelationDataFlow
}

// inferProtocol resolves the wire protocol, in priority order: an explicit
// style attribute, a protocol name in the label, edge line styling, then the
// endpoints' component kinds. Plain http is the last resort.
func (d *Detector) inferProtocol(edge *diagram.Edge, style diagram.Style,
	kinds map[string]model.ComponentKind) string {

	if attr := style.Get("protocol"); attr != "" {
		if p, ok := d.cfg.ProtocolInfo(attr); ok {
			return p.Name
		}
	}
	for _, candidate := range labelCandidates(edge.Label) {
		if p, ok := d.cfg.ProtocolInfo(candidate); ok {
			return p.Name
		}
	}

	if style.Get("dashed") == "1" {
		return "udp"
	}
	if style.Get("dotted") == "1" {
		return "ws"
	}

	source, target := kinds[edge.SourceID], kinds[edge.TargetID]
	switch {
	case source == model.KindDatabase || target == model.KindDatabase:
		return "tcp"
	case source == model.KindFileStorage || target == model.KindFileStorage:
		return "tcp"
	case source == model.KindMessageQueue || target == model.KindMessageQueue:
		return "amqp"
	case source == model.KindWebApplication || target == model.KindWebApplication,
		source == model.KindService || target == model.KindService,
		source == model.KindGateway || target == model.KindGateway:
		return "https"
	}
	return "http"
}

// labelCandidates yields the full normalized label then its tokens.
func labelCandidates(label string) []string {
	if label == "" {
		return nil
	}
	normalized := config.Normalize(label)
	out := []string{normalized}
	if strings.Contains(normalized, "-") {
		out = append(out, strings.Split(normalized, "-")...)
	}
	return out
}
