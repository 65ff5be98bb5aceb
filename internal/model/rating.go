package model

// Confidentiality is a 5-level ordinal rating.
type Confidentiality string

const (
	ConfidentialityPublic               Confidentiality = "public"
	ConfidentialityInternal             Confidentiality = "internal"
	ConfidentialityRestricted           Confidentiality = "restricted"
	ConfidentialityConfidential         Confidentiality = "confidential"
	ConfidentialityStrictlyConfidential Confidentiality = "strictly-confidential"
)

var ConfidentialityLevels = []Confidentiality{
	ConfidentialityPublic, ConfidentialityInternal, ConfidentialityRestricted,
	ConfidentialityConfidential, ConfidentialityStrictlyConfidential,
}

// Rank returns the ordinal position, or -1 for an undeclared value.
func (c Confidentiality) Rank() int {
	for i, l := range ConfidentialityLevels {
		if l == c {
			return i
		}
	}
	return -1
}

// Criticality is the 4-level ordinal shared by integrity and availability.
type Criticality string

const (
	CriticalityOperational     Criticality = "operational"
	CriticalityImportant       Criticality = "important"
	CriticalityCritical        Criticality = "critical"
	CriticalityMissionCritical Criticality = "mission-critical"
)

var CriticalityLevels = []Criticality{
	CriticalityOperational, CriticalityImportant,
	CriticalityCritical, CriticalityMissionCritical,
}

func (c Criticality) Rank() int {
	for i, l := range CriticalityLevels {
		if l == c {
			return i
		}
	}
	return -1
}

// SecurityRating is the CIA classification of an asset.
type SecurityRating struct {
	Confidentiality Confidentiality `yaml:"confidentiality"`
	Integrity       Criticality     `yaml:"integrity"`
	Availability    Criticality     `yaml:"availability"`
}

// Valid reports whether all three dimensions carry declared values.
func (r SecurityRating) Valid() bool {
	return r.Confidentiality.Rank() >= 0 &&
		r.Integrity.Rank() >= 0 &&
		r.Availability.Rank() >= 0
}
