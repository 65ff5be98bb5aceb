package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nmoret/diagile/internal/model"
)

// Normalize lowercases a candidate and collapses every punctuation or
// whitespace run into a single hyphen, so "Web App", "web_app" and
// "web-app" all match the same synonym entry.
func Normalize(s string) string {
	var b strings.Builder
	lastHyphen := true // swallow leading separators
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// kindTable is a precompiled synonym table: declaration-ordered kinds, each
// with a hash set of normalized synonyms.
type kindTable struct {
	kinds []string
	sets  []map[string]bool
}

func compileKindTable(entries []KindSynonyms) *kindTable {
	t := &kindTable{}
	for _, e := range entries {
		set := make(map[string]bool, len(e.Synonyms))
		for _, syn := range e.Synonyms {
			set[Normalize(syn)] = true
		}
		t.kinds = append(t.kinds, e.Kind)
		t.sets = append(t.sets, set)
	}
	return t
}

// lookup resolves a normalized candidate against the table in declaration
// order. Exact set membership only; no substring or fuzzy scoring.
func (t *kindTable) lookup(candidate string) (string, bool) {
	if candidate == "" {
		return "", false
	}
	for i, set := range t.sets {
		if set[candidate] {
			return t.kinds[i], true
		}
	}
	return "", false
}

// levelTable is the same structure for CIA level cues.
type levelTable struct {
	levels []string
	sets   []map[string]bool
}

func compileLevelTable(entries []LevelSynonyms) *levelTable {
	t := &levelTable{}
	for _, e := range entries {
		set := make(map[string]bool, len(e.Synonyms))
		for _, syn := range e.Synonyms {
			set[Normalize(syn)] = true
		}
		t.levels = append(t.levels, e.Level)
		t.sets = append(t.sets, set)
	}
	return t
}

func (t *levelTable) lookup(candidate string) (string, bool) {
	if candidate == "" {
		return "", false
	}
	for i, set := range t.sets {
		if set[candidate] {
			return t.levels[i], true
		}
	}
	return "", false
}

// Compiled is the immutable, lookup-ready form of a Config. It is safe for
// concurrent use by any number of pipeline runs.
type Compiled struct {
	cfg *Config

	components *kindTable
	boundaries *kindTable
	relations  *kindTable

	confidentiality *levelTable
	integrity       *levelTable
	availability    *levelTable

	protocols map[string]Protocol

	idRe   *regexp.Regexp
	nameRe *regexp.Regexp
}

// Compile validates the semantic content of a Config (structural validation
// happens at load time) and builds the lookup structures. Unknown enum keys
// fail here, at configuration time, never during classification.
func (c *Config) Compile() (*Compiled, error) {
	if err := checkKinds("component_kinds", c.ComponentKinds, componentKindSet()); err != nil {
		return nil, err
	}
	if err := checkKinds("boundary_kinds", c.BoundaryKinds, boundaryKindSet()); err != nil {
		return nil, err
	}
	if err := checkKinds("relation_kinds", c.RelationKinds, relationKindSet()); err != nil {
		return nil, err
	}
	if err := checkLevels("confidentiality", c.Confidentiality, confidentialitySet()); err != nil {
		return nil, err
	}
	if err := checkLevels("integrity", c.Integrity, criticalitySet()); err != nil {
		return nil, err
	}
	if err := checkLevels("availability", c.Availability, criticalitySet()); err != nil {
		return nil, err
	}
	for _, dk := range c.DataKinds {
		if !confidentialitySet()[dk.Confidentiality] {
			return nil, fmt.Errorf("data_kinds[%s]: unknown confidentiality %q", dk.Kind, dk.Confidentiality)
		}
	}
	if !confidentialitySet()[c.Defaults.Confidentiality] {
		return nil, fmt.Errorf("rating_defaults: unknown confidentiality %q", c.Defaults.Confidentiality)
	}
	if !criticalitySet()[c.Defaults.Integrity] {
		return nil, fmt.Errorf("rating_defaults: unknown integrity %q", c.Defaults.Integrity)
	}
	if !criticalitySet()[c.Defaults.Availability] {
		return nil, fmt.Errorf("rating_defaults: unknown availability %q", c.Defaults.Availability)
	}

	idRe, err := regexp.Compile(c.Validation.IDPattern)
	if err != nil {
		return nil, fmt.Errorf("validation_rules.id_pattern: %w", err)
	}
	nameRe, err := regexp.Compile(c.Validation.NamePattern)
	if err != nil {
		return nil, fmt.Errorf("validation_rules.name_pattern: %w", err)
	}

	protocols := make(map[string]Protocol, len(c.Protocols))
	for _, p := range c.Protocols {
		protocols[Normalize(p.Name)] = p
	}

	return &Compiled{
		cfg:             c,
		components:      compileKindTable(c.ComponentKinds),
		boundaries:      compileKindTable(c.BoundaryKinds),
		relations:       compileKindTable(c.RelationKinds),
		confidentiality: compileLevelTable(c.Confidentiality),
		integrity:       compileLevelTable(c.Integrity),
		availability:    compileLevelTable(c.Availability),
		protocols:       protocols,
		idRe:            idRe,
		nameRe:          nameRe,
	}, nil
}

func checkKinds(section string, entries []KindSynonyms, declared map[string]bool) error {
	for _, e := range entries {
		if !declared[e.Kind] {
			return fmt.Errorf("%s: unknown kind %q", section, e.Kind)
		}
	}
	return nil
}

func checkLevels(section string, entries []LevelSynonyms, declared map[string]bool) error {
	for _, e := range entries {
		if !declared[e.Level] {
			return fmt.Errorf("%s: unknown level %q", section, e.Level)
		}
	}
	return nil
}

func componentKindSet() map[string]bool {
	set := make(map[string]bool, len(model.ComponentKinds))
	for _, k := range model.ComponentKinds {
		set[string(k)] = true
	}
	return set
}

func boundaryKindSet() map[string]bool {
	set := make(map[string]bool, len(model.BoundaryKinds))
	for _, k := range model.BoundaryKinds {
		set[string(k)] = true
	}
	return set
}

func relationKindSet() map[string]bool {
	set := make(map[string]bool, len(model.RelationKinds))
	for _, k := range model.RelationKinds {
		set[string(k)] = true
	}
	return set
}

func confidentialitySet() map[string]bool {
	set := make(map[string]bool, len(model.ConfidentialityLevels))
	for _, l := range model.ConfidentialityLevels {
		set[string(l)] = true
	}
	return set
}

func criticalitySet() map[string]bool {
	set := make(map[string]bool, len(model.CriticalityLevels))
	for _, l := range model.CriticalityLevels {
		set[string(l)] = true
	}
	return set
}

// Rules exposes the raw rule blocks to the validator.
func (c *Compiled) Rules() ValidationRules { return c.cfg.Validation }

// Compliance exposes the compliance rule block.
func (c *Compiled) Compliance() ComplianceRules { return c.cfg.Compliance }

// Limits exposes the global ceiling block.
func (c *Compiled) Limits() Limits { return c.cfg.Limits }

// DataKinds exposes the data-asset vocabulary in declaration order.
func (c *Compiled) DataKinds() []DataKind { return c.cfg.DataKinds }

// DefaultRating returns the configured fallback CIA rating.
func (c *Compiled) DefaultRating() model.SecurityRating {
	return model.SecurityRating{
		Confidentiality: model.Confidentiality(c.cfg.Defaults.Confidentiality),
		Integrity:       model.Criticality(c.cfg.Defaults.Integrity),
		Availability:    model.Criticality(c.cfg.Defaults.Availability),
	}
}

// LookupComponentKind resolves a candidate string to a component kind.
func (c *Compiled) LookupComponentKind(candidate string) (model.ComponentKind, bool) {
	k, ok := c.components.lookup(Normalize(candidate))
	return model.ComponentKind(k), ok
}

// LookupBoundaryKind resolves a candidate string to a trust-boundary kind.
func (c *Compiled) LookupBoundaryKind(candidate string) (model.BoundaryKind, bool) {
	k, ok := c.boundaries.lookup(Normalize(candidate))
	return model.BoundaryKind(k), ok
}

// LookupRelationKind resolves a candidate string to a relation kind.
func (c *Compiled) LookupRelationKind(candidate string) (model.RelationKind, bool) {
	k, ok := c.relations.lookup(Normalize(candidate))
	return model.RelationKind(k), ok
}

// LookupConfidentiality resolves a cue to a confidentiality level.
func (c *Compiled) LookupConfidentiality(cue string) (model.Confidentiality, bool) {
	l, ok := c.confidentiality.lookup(Normalize(cue))
	return model.Confidentiality(l), ok
}

// LookupIntegrity resolves a cue to an integrity level.
func (c *Compiled) LookupIntegrity(cue string) (model.Criticality, bool) {
	l, ok := c.integrity.lookup(Normalize(cue))
	return model.Criticality(l), ok
}

// LookupAvailability resolves a cue to an availability level.
func (c *Compiled) LookupAvailability(cue string) (model.Criticality, bool) {
	l, ok := c.availability.lookup(Normalize(cue))
	return model.Criticality(l), ok
}

// ProtocolInfo returns the attributes for a protocol name.
func (c *Compiled) ProtocolInfo(name string) (Protocol, bool) {
	p, ok := c.protocols[Normalize(name)]
	return p, ok
}

// ProtocolNames returns the configured protocol names in declaration order.
func (c *Compiled) ProtocolNames() []string {
	names := make([]string, 0, len(c.cfg.Protocols))
	for _, p := range c.cfg.Protocols {
		names = append(names, p.Name)
	}
	return names
}

// MatchesIDPattern reports whether an id satisfies the configured pattern.
func (c *Compiled) MatchesIDPattern(id string) bool { return c.idRe.MatchString(id) }

// MatchesNamePattern reports whether a name satisfies the configured pattern.
func (c *Compiled) MatchesNamePattern(name string) bool { return c.nameRe.MatchString(name) }
