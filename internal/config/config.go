// Package config holds the mapping tables and rule blocks that drive
// classification, security-level inference and validation. Configuration is
// loaded once per run, validated, compiled into immutable lookups and
// treated as read-only afterwards, so batch workers can share it freely.
package config

// KindSynonyms maps one enumerated kind to its synonym vocabulary. Table
// order is declaration order; the first kind whose synonym set contains the
// normalized candidate wins, which keeps classification deterministic.
type KindSynonyms struct {
	Kind     string   `yaml:"kind" validate:"required"`
	Synonyms []string `yaml:"synonyms" validate:"required,min=1,dive,required"`
}

// LevelSynonyms maps one CIA level to its cue vocabulary.
type LevelSynonyms struct {
	Level    string   `yaml:"level" validate:"required"`
	Synonyms []string `yaml:"synonyms" validate:"required,min=1,dive,required"`
}

// DataKind describes a data-asset vocabulary entry: labels containing one of
// the cues yield a data asset with the given confidentiality.
type DataKind struct {
	Kind            string   `yaml:"kind" validate:"required"`
	Description     string   `yaml:"description"`
	Confidentiality string   `yaml:"confidentiality" validate:"required"`
	Cues            []string `yaml:"cues" validate:"required,min=1,dive,required"`
}

// Protocol carries the security attributes inferred for a relation once its
// protocol is known.
type Protocol struct {
	Name           string `yaml:"name" validate:"required"`
	Encryption     bool   `yaml:"encryption"`
	Authentication string `yaml:"authentication" validate:"required,oneof=none optional required"`
	Authorization  string `yaml:"authorization" validate:"required,oneof=none optional required"`
}

// RatingDefaults are the levels assigned when no cue matches. An unannotated
// asset is assumed internal/operational rather than public, so defaulting
// never silently downgrades a rating someone forgot to draw.
type RatingDefaults struct {
	Confidentiality string `yaml:"confidentiality" validate:"required"`
	Integrity       string `yaml:"integrity" validate:"required"`
	Availability    string `yaml:"availability" validate:"required"`
}

// ValidationRules is the naming/length rule block.
type ValidationRules struct {
	IDPattern   string `yaml:"id_pattern" validate:"required"`
	NamePattern string `yaml:"name_pattern" validate:"required"`
	MinNameLen  int    `yaml:"min_name_length" validate:"min=0"`
	MaxNameLen  int    `yaml:"max_name_length" validate:"gtfield=MinNameLen"`
	MinDescLen  int    `yaml:"min_description_length" validate:"min=0"`
	MaxDescLen  int    `yaml:"max_description_length" validate:"gtfield=MinDescLen"`
	MaxTags     int    `yaml:"max_tags" validate:"min=1"`
	DateFormat  string `yaml:"date_format"`
}

// ComplianceRules is the boolean requirement block.
type ComplianceRules struct {
	RequireTrustBoundaries  bool `yaml:"require_trust_boundaries"`
	RequireTechnicalAssets  bool `yaml:"require_technical_assets"`
	RequireDataAssets       bool `yaml:"require_data_assets"`
	RequireCIAJustification bool `yaml:"require_cia_justification"`
}

// Limits is the global ceiling block; zero means unlimited.
type Limits struct {
	MaxComponents      int `yaml:"max_components" validate:"min=0"`
	MaxTechnicalAssets int `yaml:"max_technical_assets" validate:"min=0"`
	MaxDataAssets      int `yaml:"max_data_assets" validate:"min=0"`
	MaxTrustBoundaries int `yaml:"max_trust_boundaries" validate:"min=0"`
	MaxRelations       int `yaml:"max_relations" validate:"min=0"`
}

// Config is the full configuration surface. Adding a new component kind or
// synonym is a configuration change only; no code change is required.
type Config struct {
	ComponentKinds  []KindSynonyms  `yaml:"component_kinds" validate:"required,min=1,dive"`
	BoundaryKinds   []KindSynonyms  `yaml:"boundary_kinds" validate:"required,min=1,dive"`
	RelationKinds   []KindSynonyms  `yaml:"relation_kinds" validate:"required,min=1,dive"`
	DataKinds       []DataKind      `yaml:"data_kinds" validate:"dive"`
	Confidentiality []LevelSynonyms `yaml:"confidentiality" validate:"required,min=1,dive"`
	Integrity       []LevelSynonyms `yaml:"integrity" validate:"required,min=1,dive"`
	Availability    []LevelSynonyms `yaml:"availability" validate:"required,min=1,dive"`
	Defaults        RatingDefaults  `yaml:"rating_defaults"`
	Protocols       []Protocol      `yaml:"protocols" validate:"dive"`
	Validation      ValidationRules `yaml:"validation_rules"`
	Compliance      ComplianceRules `yaml:"compliance_rules"`
	Limits          Limits          `yaml:"global_limits"`
}
