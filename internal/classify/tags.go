package classify

import (
	"strings"

	"github.com/nmoret/diagile/internal/config"
	"github.com/nmoret/diagile/internal/diagram"
)

// keywordTags are coarse technology markers looked for in labels.
var keywordTags = []struct {
	tag  string
	cues []string
}{
	{"cloud", []string{"cloud", "aws", "azure", "gcp"}},
	{"api", []string{"api"}},
	{"database", []string{"db", "database"}},
}

// Tags derives component tags from a shape: explicit style tags
// ("tags=a,b,c"), then technology keywords found in the label tokens.
// Order is stable and duplicates are dropped.
func Tags(shape *diagram.ShapeNode) []string {
	style := diagram.ParseStyle(shape.Style)

	var out []string
	seen := make(map[string]bool)
	add := func(tag string) {
		tag = config.Normalize(tag)
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		out = append(out, tag)
	}

	for _, tag := range strings.Split(style.Get("tags"), ",") {
		if strings.TrimSpace(tag) != "" {
			add(tag)
		}
	}

	tokens := make(map[string]bool)
	normalized := config.Normalize(shape.Label)
	for _, tok := range strings.Split(normalized, "-") {
		tokens[tok] = true
	}
	for _, kw := range keywordTags {
		for _, cue := range kw.cues {
			if tokens[cue] {
				add(kw.tag)
				break
			}
		}
	}
	return out
}
