package classify

import (
	"testing"

	"github.com/nmoret/diagile/internal/diagram"
	"github.com/nmoret/diagile/internal/model"
)

func TestLevelMapper_Rate(t *testing.T) {
	mapper := NewLevelMapper(mustCompile(t))

	tests := []struct {
		name  string
		label string
		style string
		want  model.SecurityRating
	}{
		{
			"no cues keeps defaults",
			"Orders Service", "rounded=1",
			model.SecurityRating{
				Confidentiality: model.ConfidentialityInternal,
				Integrity:       model.CriticalityOperational,
				Availability:    model.CriticalityOperational,
			},
		},
		{
			"label cue sets confidentiality",
			"Confidential Customer Records", "",
			model.SecurityRating{
				Confidentiality: model.ConfidentialityConfidential,
				Integrity:       model.CriticalityOperational,
				Availability:    model.CriticalityOperational,
			},
		},
		{
			"explicit style attributes win",
			"Public Website", "confidentiality=secret;integrity=vital;availability=ha",
			model.SecurityRating{
				Confidentiality: model.ConfidentialityStrictlyConfidential,
				Integrity:       model.CriticalityMissionCritical,
				Availability:    model.CriticalityCritical,
			},
		},
		{
			"pii label cue",
			"PII Store", "",
			model.SecurityRating{
				Confidentiality: model.ConfidentialityConfidential,
				Integrity:       model.CriticalityOperational,
				Availability:    model.CriticalityOperational,
			},
		},
		{
			"critical cue raises integrity and availability",
			"Critical Payments", "",
			model.SecurityRating{
				Confidentiality: model.ConfidentialityInternal,
				Integrity:       model.CriticalityCritical,
				Availability:    model.CriticalityCritical,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapper.Rate(tt.label, tt.style)
			if got != tt.want {
				t.Errorf("Rate(%q, %q) = %+v, want %+v", tt.label, tt.style, got, tt.want)
			}
			if !got.Valid() {
				t.Errorf("Rate must always produce declared levels, got %+v", got)
			}
		})
	}
}

func TestDataKindFor(t *testing.T) {
	compiled := mustCompile(t)

	tests := []struct {
		label string
		kind  string
		conf  model.Confidentiality
		ok    bool
	}{
		{"Payment Records", "business", model.ConfidentialityRestricted, true},
		{"User Profiles", "user", model.ConfidentialityConfidential, true},
		{"Application Logs", "system", model.ConfidentialityInternal, true},
		{"Static Content", "public", model.ConfidentialityPublic, true},
		// business is declared first, so mixed labels take the higher kind
		{"User Payment History", "business", model.ConfidentialityRestricted, true},
		{"Banana", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		dk, ok := DataKindFor(compiled, tt.label)
		if ok != tt.ok {
			t.Errorf("DataKindFor(%q) ok = %v, want %v", tt.label, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if dk.Kind != tt.kind || dk.Confidentiality != string(tt.conf) {
			t.Errorf("DataKindFor(%q) = %s/%s, want %s/%s",
				tt.label, dk.Kind, dk.Confidentiality, tt.kind, tt.conf)
		}
	}
}

func TestTags(t *testing.T) {
	tests := []struct {
		name  string
		shape diagram.ShapeNode
		want  []string
	}{
		{
			"explicit style tags",
			diagram.ShapeNode{Label: "Orders", Style: "tags=pci, Payments"},
			[]string{"pci", "payments"},
		},
		{
			"keyword tags from label",
			diagram.ShapeNode{Label: "Cloud API Service"},
			[]string{"cloud", "api"},
		},
		{
			"db token tags database",
			diagram.ShapeNode{Label: "Orders DB"},
			[]string{"database"},
		},
		{
			"style tags first then keywords deduped",
			diagram.ShapeNode{Label: "AWS Database", Style: "tags=database"},
			[]string{"database", "cloud"},
		},
		{
			"no tags",
			diagram.ShapeNode{Label: "Frontend"},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tags(&tt.shape)
			if len(got) != len(tt.want) {
				t.Fatalf("Tags(%+v) = %v, want %v", tt.shape, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Tags(%+v)[%d] = %q, want %q", tt.shape, i, got[i], tt.want[i])
				}
			}
		})
	}
}
