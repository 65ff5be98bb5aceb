package model

// Document types for the generated threat model. Field order matches the
// desired YAML output order; the mapper never reorders collections after
// assembly, so serialization is byte-stable for identical input.

// ComponentKind is the closed set of architectural element classifications.
// Unmapped input degrades to KindUnknown, never to a missing value.
type ComponentKind string

const (
	KindWebApplication ComponentKind = "web-application"
	KindMobileApp      ComponentKind = "mobile-app"
	KindService        ComponentKind = "service"
	KindDatabase       ComponentKind = "database"
	KindFileStorage    ComponentKind = "file-storage"
	KindMessageQueue   ComponentKind = "message-queue"
	KindLoadBalancer   ComponentKind = "load-balancer"
	KindReverseProxy   ComponentKind = "reverse-proxy"
	KindWAF            ComponentKind = "waf"
	KindIDS            ComponentKind = "ids"
	KindIPS            ComponentKind = "ips"
	KindVPN            ComponentKind = "vpn"
	KindFirewall       ComponentKind = "firewall"
	KindGateway        ComponentKind = "gateway"
	KindUnknown        ComponentKind = "unknown"
)

// ComponentKinds lists every declared kind, in declaration order.
var ComponentKinds = []ComponentKind{
	KindWebApplication, KindMobileApp, KindService, KindDatabase,
	KindFileStorage, KindMessageQueue, KindLoadBalancer, KindReverseProxy,
	KindWAF, KindIDS, KindIPS, KindVPN, KindFirewall, KindGateway,
	KindUnknown,
}

// BoundaryKind classifies a trust boundary.
type BoundaryKind string

const (
	BoundaryNetwork        BoundaryKind = "network"
	BoundaryPhysical       BoundaryKind = "physical"
	BoundaryLogical        BoundaryKind = "logical"
	BoundaryOrganizational BoundaryKind = "organizational"
	BoundaryLegal          BoundaryKind = "legal"
	BoundaryRegulatory     BoundaryKind = "regulatory"
)

var BoundaryKinds = []BoundaryKind{
	BoundaryNetwork, BoundaryPhysical, BoundaryLogical,
	BoundaryOrganizational, BoundaryLegal, BoundaryRegulatory,
}

// RelationKind classifies a modeled connection between two entities.
type RelationKind string

const (
	RelationDataFlow      RelationKind = "data-flow"
	RelationTrustBoundary RelationKind = "trust-boundary"
	RelationCommunication RelationKind = "communication"
	RelationDependency    RelationKind = "dependency"
	RelationInheritance   RelationKind = "inheritance"
	RelationComposition   RelationKind = "composition"
	RelationAggregation   RelationKind = "aggregation"
	RelationAssociation   RelationKind = "association"
)

var RelationKinds = []RelationKind{
	RelationDataFlow, RelationTrustBoundary, RelationCommunication,
	RelationDependency, RelationInheritance, RelationComposition,
	RelationAggregation, RelationAssociation,
}

// Metadata is caller-supplied document front matter, passed through verbatim.
type Metadata struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Date        string `yaml:"date"`
	Author      string `yaml:"author"`
}

// Component is a classified diagram shape. Composite components carry their
// resolved children in document order.
type Component struct {
	ID              string        `yaml:"id"`
	Name            string        `yaml:"name"`
	Kind            ComponentKind `yaml:"type"`
	Description     string        `yaml:"description"`
	Tags            []string      `yaml:"tags,omitempty"`
	Children        []string      `yaml:"children,omitempty"`
	TechnicalAssets []string      `yaml:"technical_assets,omitempty"`
	DataAssets      []string      `yaml:"data_assets,omitempty"`
	TrustBoundaries []string      `yaml:"trust_boundaries,omitempty"`
}

// TechnicalAsset is a modeled technical resource with security ratings.
type TechnicalAsset struct {
	ID            string         `yaml:"id"`
	Name          string         `yaml:"name"`
	Kind          ComponentKind  `yaml:"type"`
	Description   string         `yaml:"description"`
	Usage         string         `yaml:"usage"`
	Owner         string         `yaml:"owner"`
	Rating        SecurityRating `yaml:"rating"`
	Justification string         `yaml:"justification_cia_rating,omitempty"`
}

// DataAsset is a modeled data resource with security ratings.
type DataAsset struct {
	ID            string         `yaml:"id"`
	Name          string         `yaml:"name"`
	Description   string         `yaml:"description"`
	Usage         string         `yaml:"usage"`
	Owner         string         `yaml:"owner"`
	Rating        SecurityRating `yaml:"rating"`
	Justification string         `yaml:"justification_cia_rating,omitempty"`
}

// TrustBoundary groups components and assets under a shared security context.
type TrustBoundary struct {
	ID              string       `yaml:"id"`
	Name            string       `yaml:"name"`
	Description     string       `yaml:"description"`
	Kind            BoundaryKind `yaml:"type"`
	Components      []string     `yaml:"components,omitempty"`
	TechnicalAssets []string     `yaml:"technical_assets,omitempty"`
	DataAssets      []string     `yaml:"data_assets,omitempty"`
}

// Relation is a modeled connection derived from a diagram edge. SourceID and
// TargetID are kept verbatim even when unresolved so the validator can
// surface dangling references instead of the mapper silently dropping data.
type Relation struct {
	ID             string       `yaml:"id"`
	Name           string       `yaml:"name"`
	Description    string       `yaml:"description,omitempty"`
	Kind           RelationKind `yaml:"type"`
	SourceID       string       `yaml:"source"`
	TargetID       string       `yaml:"target"`
	Protocol       string       `yaml:"protocol,omitempty"`
	Authentication string       `yaml:"authentication,omitempty"`
	Authorization  string       `yaml:"authorization,omitempty"`
	Encryption     bool         `yaml:"encryption,omitempty"`
}

// Document is the assembled threat model handed to the validator and to the
// serialization collaborator.
type Document struct {
	Metadata        Metadata         `yaml:",inline"`
	Components      []Component      `yaml:"components"`
	TechnicalAssets []TechnicalAsset `yaml:"technical_assets"`
	DataAssets      []DataAsset      `yaml:"data_assets"`
	TrustBoundaries []TrustBoundary  `yaml:"trust_boundaries"`
	Relations       []Relation       `yaml:"relations"`
}

// EntityIDs returns every declared entity id in document order: components,
// technical assets, data assets, trust boundaries. Relation ids are entity
// ids too but are never valid endpoint targets.
func (d *Document) EntityIDs() map[string]bool {
	ids := make(map[string]bool)
	for _, c := range d.Components {
		ids[c.ID] = true
	}
	for _, a := range d.TechnicalAssets {
		ids[a.ID] = true
	}
	for _, a := range d.DataAssets {
		ids[a.ID] = true
	}
	for _, b := range d.TrustBoundaries {
		ids[b.ID] = true
	}
	return ids
}
