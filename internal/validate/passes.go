package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/nmoret/diagile/internal/finding"
	"github.com/nmoret/diagile/internal/model"
)

// Pass 1: required root fields. A missing components collection is reported
// once here and marked skipped; the compliance pass owns the asset and
// boundary minimums, so they are not double-reported.
type structuralPass struct{}

func (structuralPass) Name() string { return "structural" }

func (structuralPass) Check(ctx *Context) []finding.Finding {
	var out []finding.Finding

	if len(ctx.Doc.Components) == 0 {
		out = append(out, finding.Errorf(finding.KindValidationError, "components",
			"document declares no components"))
		ctx.Skipped["components"] = true
	}
	if ctx.Doc.Metadata.Title == "" {
		out = append(out, finding.Errorf(finding.KindValidationError, "title",
			"document title is required"))
	}
	if ctx.Doc.Metadata.Description == "" {
		out = append(out, finding.Warnf(finding.KindValidationWarning, "description",
			"document description is empty"))
	}
	if format := ctx.Cfg.Rules().DateFormat; format != "" && ctx.Doc.Metadata.Date != "" {
		if _, err := time.Parse(format, ctx.Doc.Metadata.Date); err != nil {
			out = append(out, finding.Warnf(finding.KindValidationWarning, "date",
				"date %q does not match format %q", ctx.Doc.Metadata.Date, format))
		}
	}
	return out
}

// Pass 2: every typed field holds a declared enumerated value. "unknown" is
// a declared component kind and passes; a kind outside the enumeration is a
// mapping bug or a hand-edited document, and errors.
type enumPass struct{}

func (enumPass) Name() string { return "enum" }

func (enumPass) Check(ctx *Context) []finding.Finding {
	var out []finding.Finding

	for i, c := range ctx.Doc.Components {
		if !declaredComponentKind(c.Kind) {
			out = append(out, finding.Errorf(finding.KindValidationError,
				fmt.Sprintf("components[%d].type", i),
				"component %q has undeclared type %q", c.ID, c.Kind))
		}
	}
	for i, a := range ctx.Doc.TechnicalAssets {
		if !declaredComponentKind(a.Kind) {
			out = append(out, finding.Errorf(finding.KindValidationError,
				fmt.Sprintf("technical_assets[%d].type", i),
				"technical asset %q has undeclared type %q", a.ID, a.Kind))
		}
		out = append(out, checkRating(fmt.Sprintf("technical_assets[%d]", i), a.ID, a.Rating)...)
	}
	for i, a := range ctx.Doc.DataAssets {
		out = append(out, checkRating(fmt.Sprintf("data_assets[%d]", i), a.ID, a.Rating)...)
	}
	for i, b := range ctx.Doc.TrustBoundaries {
		if !declaredBoundaryKind(b.Kind) {
			out = append(out, finding.Errorf(finding.KindValidationError,
				fmt.Sprintf("trust_boundaries[%d].type", i),
				"trust boundary %q has undeclared type %q", b.ID, b.Kind))
		}
	}
	for i, r := range ctx.Doc.Relations {
		if !declaredRelationKind(r.Kind) {
			out = append(out, finding.Errorf(finding.KindValidationError,
				fmt.Sprintf("relations[%d].type", i),
				"relation %q has undeclared type %q", r.ID, r.Kind))
		}
		out = append(out, checkAccessLevel(fmt.Sprintf("relations[%d].authentication", i), r.ID, r.Authentication)...)
		out = append(out, checkAccessLevel(fmt.Sprintf("relations[%d].authorization", i), r.ID, r.Authorization)...)
	}
	return out
}

func declaredComponentKind(k model.ComponentKind) bool {
	for _, d := range model.ComponentKinds {
		if d == k {
			return true
		}
	}
	return false
}

func declaredBoundaryKind(k model.BoundaryKind) bool {
	for _, d := range model.BoundaryKinds {
		if d == k {
			return true
		}
	}
	return false
}

func declaredRelationKind(k model.RelationKind) bool {
	for _, d := range model.RelationKinds {
		if d == k {
			return true
		}
	}
	return false
}

func checkRating(location, id string, r model.SecurityRating) []finding.Finding {
	var out []finding.Finding
	if r.Confidentiality.Rank() < 0 {
		out = append(out, finding.Errorf(finding.KindValidationError,
			location+".confidentiality",
			"asset %q has undeclared confidentiality %q", id, r.Confidentiality))
	}
	if r.Integrity.Rank() < 0 {
		out = append(out, finding.Errorf(finding.KindValidationError,
			location+".integrity",
			"asset %q has undeclared integrity %q", id, r.Integrity))
	}
	if r.Availability.Rank() < 0 {
		out = append(out, finding.Errorf(finding.KindValidationError,
			location+".availability",
			"asset %q has undeclared availability %q", id, r.Availability))
	}
	return out
}

func checkAccessLevel(location, id, value string) []finding.Finding {
	switch value {
	case "", "none", "optional", "required":
		return nil
	}
	return []finding.Finding{finding.Errorf(finding.KindValidationError, location,
		"relation %q has undeclared access level %q", id, value)}
}

// Pass 3: id/name patterns and length bounds. Short descriptions warn, so an
// imported diagram with terse labels validates noisily but usably.
type namingPass struct{}

func (namingPass) Name() string { return "naming" }

func (namingPass) Check(ctx *Context) []finding.Finding {
	var out []finding.Finding
	for _, e := range documentEntities(ctx.Doc) {
		out = append(out, checkNaming(ctx, e)...)
	}
	return out
}

func checkNaming(ctx *Context, e entityRef) []finding.Finding {
	rules := ctx.Cfg.Rules()
	var out []finding.Finding

	if !ctx.Cfg.MatchesIDPattern(e.id) {
		out = append(out, finding.Errorf(finding.KindValidationError, e.location+".id",
			"id %q does not match the configured id pattern", e.id))
	}
	if len(e.name) < rules.MinNameLen || len(e.name) > rules.MaxNameLen {
		out = append(out, finding.Errorf(finding.KindValidationError, e.location+".name",
			"name %q length %d outside bounds %d-%d", e.name, len(e.name), rules.MinNameLen, rules.MaxNameLen))
	} else if !ctx.Cfg.MatchesNamePattern(e.name) {
		out = append(out, finding.Errorf(finding.KindValidationError, e.location+".name",
			"name %q does not match the configured name pattern", e.name))
	}
	if len(e.description) < rules.MinDescLen {
		out = append(out, finding.Warnf(finding.KindValidationWarning, e.location+".description",
			"description of %q is %d characters, minimum is %d", e.id, len(e.description), rules.MinDescLen))
	} else if len(e.description) > rules.MaxDescLen {
		out = append(out, finding.Warnf(finding.KindValidationWarning, e.location+".description",
			"description of %q is %d characters, maximum is %d", e.id, len(e.description), rules.MaxDescLen))
	}
	if e.tags > rules.MaxTags {
		out = append(out, finding.Errorf(finding.KindValidationError, e.location+".tags",
			"%q carries %d tags, maximum is %d", e.id, e.tags, rules.MaxTags))
	}
	return out
}

// Pass 4: global id uniqueness. One error per duplicated id, naming every
// location that declares it.
type uniquenessPass struct{}

func (uniquenessPass) Name() string { return "uniqueness" }

func (uniquenessPass) Check(ctx *Context) []finding.Finding {
	locations := make(map[string][]string)
	var order []string
	for _, e := range documentEntities(ctx.Doc) {
		if len(locations[e.id]) == 0 {
			order = append(order, e.id)
		}
		locations[e.id] = append(locations[e.id], e.location)
	}

	var out []finding.Finding
	for _, id := range order {
		locs := locations[id]
		if len(locs) < 2 {
			continue
		}
		out = append(out, finding.Errorf(finding.KindValidationError, locs[0],
			"id %q declared %d times, at %s", id, len(locs), strings.Join(locs, " and ")))
	}
	return out
}

// Pass 5: reference integrity. Relation endpoints that resolve to no entity
// are dangling-reference errors; bad intra-document references (a component
// naming a missing asset, a boundary naming a missing component) are plain
// validation errors.
type referencePass struct{}

func (referencePass) Name() string { return "reference" }

func (referencePass) Check(ctx *Context) []finding.Finding {
	var out []finding.Finding

	componentIDs := make(map[string]bool)
	assetIDs := make(map[string]bool)
	dataIDs := make(map[string]bool)
	boundaryIDs := make(map[string]bool)
	for _, c := range ctx.Doc.Components {
		componentIDs[c.ID] = true
	}
	for _, a := range ctx.Doc.TechnicalAssets {
		assetIDs[a.ID] = true
	}
	for _, a := range ctx.Doc.DataAssets {
		dataIDs[a.ID] = true
	}
	for _, b := range ctx.Doc.TrustBoundaries {
		boundaryIDs[b.ID] = true
	}

	if !ctx.Skipped["components"] {
		for i, c := range ctx.Doc.Components {
			loc := fmt.Sprintf("components[%d]", i)
			out = append(out, checkRefs(loc+".children", c.ID, c.Children, componentIDs)...)
			out = append(out, checkRefs(loc+".technical_assets", c.ID, c.TechnicalAssets, assetIDs)...)
			out = append(out, checkRefs(loc+".data_assets", c.ID, c.DataAssets, dataIDs)...)
			out = append(out, checkRefs(loc+".trust_boundaries", c.ID, c.TrustBoundaries, boundaryIDs)...)
		}
	}
	for i, b := range ctx.Doc.TrustBoundaries {
		loc := fmt.Sprintf("trust_boundaries[%d]", i)
		out = append(out, checkRefs(loc+".components", b.ID, b.Components, componentIDs)...)
		out = append(out, checkRefs(loc+".technical_assets", b.ID, b.TechnicalAssets, assetIDs)...)
		out = append(out, checkRefs(loc+".data_assets", b.ID, b.DataAssets, dataIDs)...)
	}
	for i, r := range ctx.Doc.Relations {
		loc := fmt.Sprintf("relations[%d]", i)
		for _, endpoint := range []string{r.SourceID, r.TargetID} {
			if !ctx.Entities[endpoint] {
				out = append(out, finding.Errorf(finding.KindDanglingReference, loc,
					"relation %q references %q which resolves to no declared entity", r.ID, endpoint))
			}
		}
	}
	return out
}

func checkRefs(location, owner string, refs []string, declared map[string]bool) []finding.Finding {
	var out []finding.Finding
	for _, ref := range refs {
		if !declared[ref] {
			out = append(out, finding.Errorf(finding.KindValidationError, location,
				"%q references %q which is not declared", owner, ref))
		}
	}
	return out
}

// Pass 6: compliance rules and global collection ceilings. Each missing
// required collection is exactly one error; independent passes still run.
type compliancePass struct{}

func (compliancePass) Name() string { return "compliance" }

func (compliancePass) Check(ctx *Context) []finding.Finding {
	rules := ctx.Cfg.Compliance()
	limits := ctx.Cfg.Limits()
	var out []finding.Finding

	if rules.RequireTrustBoundaries && len(ctx.Doc.TrustBoundaries) == 0 {
		out = append(out, finding.Errorf(finding.KindValidationError, "trust_boundaries",
			"at least one trust boundary is required"))
	}
	if rules.RequireTechnicalAssets && len(ctx.Doc.TechnicalAssets) == 0 {
		out = append(out, finding.Errorf(finding.KindValidationError, "technical_assets",
			"at least one technical asset is required"))
	}
	if rules.RequireDataAssets && len(ctx.Doc.DataAssets) == 0 {
		out = append(out, finding.Errorf(finding.KindValidationError, "data_assets",
			"at least one data asset is required"))
	}

	ceilings := []struct {
		name  string
		count int
		max   int
	}{
		{"components", len(ctx.Doc.Components), limits.MaxComponents},
		{"technical_assets", len(ctx.Doc.TechnicalAssets), limits.MaxTechnicalAssets},
		{"data_assets", len(ctx.Doc.DataAssets), limits.MaxDataAssets},
		{"trust_boundaries", len(ctx.Doc.TrustBoundaries), limits.MaxTrustBoundaries},
		{"relations", len(ctx.Doc.Relations), limits.MaxRelations},
	}
	for _, c := range ceilings {
		if c.max > 0 && c.count > c.max {
			out = append(out, finding.Errorf(finding.KindValidationError, c.name,
				"%s holds %d entries, maximum is %d", c.name, c.count, c.max))
		}
	}
	return out
}

// Pass 7: CIA justification. Assets whose rating deviates from the configured
// defaults in any dimension, in either direction, need an explicit
// justification when the compliance rules demand one.
type ciaPass struct{}

func (ciaPass) Name() string { return "cia" }

func (ciaPass) Check(ctx *Context) []finding.Finding {
	if !ctx.Cfg.Compliance().RequireCIAJustification {
		return nil
	}
	defaults := ctx.Cfg.DefaultRating()
	var out []finding.Finding

	for i, a := range ctx.Doc.TechnicalAssets {
		if a.Justification == "" && a.Rating != defaults {
			out = append(out, finding.Warnf(finding.KindValidationWarning,
				fmt.Sprintf("technical_assets[%d].justification_cia_rating", i),
				"asset %q carries a non-default rating without a CIA justification", a.ID))
		}
	}
	for i, a := range ctx.Doc.DataAssets {
		if a.Justification == "" && a.Rating != defaults {
			out = append(out, finding.Warnf(finding.KindValidationWarning,
				fmt.Sprintf("data_assets[%d].justification_cia_rating", i),
				"data asset %q carries a non-default rating without a CIA justification", a.ID))
		}
	}
	return out
}

// entityRef is the uniform view the naming and uniqueness passes share.
type entityRef struct {
	id          string
	name        string
	description string
	tags        int
	location    string
}

// documentEntities lists every entity (relations included) in document
// order, so findings come out in a stable order.
func documentEntities(doc *model.Document) []entityRef {
	var out []entityRef
	for i, c := range doc.Components {
		out = append(out, entityRef{c.ID, c.Name, c.Description, len(c.Tags), fmt.Sprintf("components[%d]", i)})
	}
	for i, a := range doc.TechnicalAssets {
		out = append(out, entityRef{a.ID, a.Name, a.Description, 0, fmt.Sprintf("technical_assets[%d]", i)})
	}
	for i, a := range doc.DataAssets {
		out = append(out, entityRef{a.ID, a.Name, a.Description, 0, fmt.Sprintf("data_assets[%d]", i)})
	}
	for i, b := range doc.TrustBoundaries {
		out = append(out, entityRef{b.ID, b.Name, b.Description, 0, fmt.Sprintf("trust_boundaries[%d]", i)})
	}
	for i, r := range doc.Relations {
		out = append(out, entityRef{r.ID, r.Name, r.Description, 0, fmt.Sprintf("relations[%d]", i)})
	}
	return out
}
