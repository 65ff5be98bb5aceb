package classify

import (
	"strings"

	"github.com/nmoret/diagile/internal/config"
	"github.com/nmoret/diagile/internal/diagram"
	"github.com/nmoret/diagile/internal/model"
)

// LevelMapper infers CIA security ratings from style and label cues. One
// lookup table per dimension; a dimension no cue matches keeps the
// configured default, never fails.
type LevelMapper struct {
	cfg *config.Compiled
}

func NewLevelMapper(cfg *config.Compiled) *LevelMapper {
	return &LevelMapper{cfg: cfg}
}

// Rate infers a full SecurityRating for an asset. Per dimension, an explicit
// style attribute wins; otherwise the label and remaining style values are
// scanned token by token in order and the first cue hit wins. Anything still
// unresolved takes the configured default.
func (m *LevelMapper) Rate(label, rawStyle string) model.SecurityRating {
	style := diagram.ParseStyle(rawStyle)
	rating := m.cfg.DefaultRating()

	cues := ratingCues(label, style)

	if v, ok := m.lookupConfidentiality(style.Get("confidentiality"), cues); ok {
		rating.Confidentiality = v
	}
	if v, ok := m.lookupIntegrity(style.Get("integrity"), cues); ok {
		rating.Integrity = v
	}
	if v, ok := m.lookupAvailability(style.Get("availability"), cues); ok {
		rating.Availability = v
	}
	return rating
}

func (m *LevelMapper) lookupConfidentiality(attr string, cues []string) (model.Confidentiality, bool) {
	if attr != "" {
		if v, ok := m.cfg.LookupConfidentiality(attr); ok {
			return v, true
		}
	}
	for _, cue := range cues {
		if v, ok := m.cfg.LookupConfidentiality(cue); ok {
			return v, true
		}
	}
	return "", false
}

func (m *LevelMapper) lookupIntegrity(attr string, cues []string) (model.Criticality, bool) {
	if attr != "" {
		if v, ok := m.cfg.LookupIntegrity(attr); ok {
			return v, true
		}
	}
	for _, cue := range cues {
		if v, ok := m.cfg.LookupIntegrity(cue); ok {
			return v, true
		}
	}
	return "", false
}

func (m *LevelMapper) lookupAvailability(attr string, cues []string) (model.Criticality, bool) {
	if attr != "" {
		if v, ok := m.cfg.LookupAvailability(attr); ok {
			return v, true
		}
	}
	for _, cue := range cues {
		if v, ok := m.cfg.LookupAvailability(cue); ok {
			return v, true
		}
	}
	return "", false
}

// ratingCues collects candidate cues from a label and style: the full
// normalized label, its tokens, then bare style flags in style order.
func ratingCues(label string, style diagram.Style) []string {
	var cues []string
	if label != "" {
		normalized := config.Normalize(label)
		cues = append(cues, normalized)
		if strings.Contains(normalized, "-") {
			cues = append(cues, strings.Split(normalized, "-")...)
		}
	}
	for _, key := range style.Keys() {
		if style[key] == "" {
			cues = append(cues, key)
		}
	}
	return cues
}
