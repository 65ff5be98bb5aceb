package model

import "testing"

func TestConfidentiality_Rank(t *testing.T) {
	if ConfidentialityPublic.Rank() >= ConfidentialityStrictlyConfidential.Rank() {
		t.Error("public must rank below strictly-confidential")
	}
	order := []Confidentiality{
		ConfidentialityPublic, ConfidentialityInternal, ConfidentialityRestricted,
		ConfidentialityConfidential, ConfidentialityStrictlyConfidential,
	}
	for i := 1; i < len(order); i++ {
		if order[i-1].Rank() >= order[i].Rank() {
			t.Errorf("%q must rank below %q", order[i-1], order[i])
		}
	}
	if Confidentiality("ultra-secret").Rank() != -1 {
		t.Error("undeclared level must rank -1")
	}
}

func TestCriticality_Rank(t *testing.T) {
	if CriticalityOperational.Rank() >= CriticalityMissionCritical.Rank() {
		t.Error("operational must rank below mission-critical")
	}
	if Criticality("").Rank() != -1 {
		t.Error("empty level must rank -1")
	}
}

func TestSecurityRating_Valid(t *testing.T) {
	good := SecurityRating{
		Confidentiality: ConfidentialityInternal,
		Integrity:       CriticalityOperational,
		Availability:    CriticalityCritical,
	}
	if !good.Valid() {
		t.Error("declared rating must be valid")
	}

	bad := good
	bad.Integrity = "severe"
	if bad.Valid() {
		t.Error("undeclared integrity must invalidate the rating")
	}
}

func TestDocument_EntityIDs(t *testing.T) {
	doc := &Document{
		Components:      []Component{{ID: "web-1"}},
		TechnicalAssets: []TechnicalAsset{{ID: "web-1-asset"}},
		DataAssets:      []DataAsset{{ID: "web-1-data"}},
		TrustBoundaries: []TrustBoundary{{ID: "zone-1"}},
		Relations:       []Relation{{ID: "flow-1", SourceID: "web-1", TargetID: "zone-1"}},
	}

	ids := doc.EntityIDs()
	for _, want := range []string{"web-1", "web-1-asset", "web-1-data", "zone-1"} {
		if !ids[want] {
			t.Errorf("EntityIDs missing %q", want)
		}
	}
	if ids["flow-1"] {
		t.Error("relation ids are not valid endpoint targets")
	}
}
