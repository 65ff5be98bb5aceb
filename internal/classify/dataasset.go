package classify

import (
	"strings"

	"github.com/nmoret/diagile/internal/config"
)

// DataKindFor matches a label against the configured data-asset vocabulary.
// Unlike component classification, data-kind cues are substring matches over
// the normalized label ("Payment Records" hits the "payment" cue); the first
// data kind in declaration order with a matching cue wins, which is why the
// higher-confidentiality kinds are declared first.
func DataKindFor(cfg *config.Compiled, label string) (config.DataKind, bool) {
	normalized := config.Normalize(label)
	if normalized == "" {
		return config.DataKind{}, false
	}
	for _, dk := range cfg.DataKinds() {
		for _, cue := range dk.Cues {
			if strings.Contains(normalized, config.Normalize(cue)) {
				return dk, true
			}
		}
	}
	return config.DataKind{}, false
}
