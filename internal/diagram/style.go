package diagram

import (
	"sort"
	"strings"
)

// Style is the decoded form of an mxGraph style string: semicolon-separated
// key=value statements, with bare tokens treated as presence flags. Style
// strings are free-form; partial parses are expected, never fatal.
type Style map[string]string

// ParseStyle decodes a raw style string. Empty fragments are skipped. A
// fragment without '=' becomes a presence flag with an empty value. Repeated
// keys keep the last value, matching how mxGraph applies styles.
func ParseStyle(raw string) Style {
	style := make(Style)
	for _, stmt := range strings.Split(raw, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		key, value, found := strings.Cut(stmt, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if !found {
			style[key] = ""
			continue
		}
		style[key] = strings.TrimSpace(value)
	}
	return style
}

// Get returns the value for key, or "".
func (s Style) Get(key string) string { return s[key] }

// Has reports whether key is present, including presence flags.
func (s Style) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Family returns the shape-family attribute ("shape=cylinder" → "cylinder").
func (s Style) Family() string { return s["shape"] }

// Keys returns the attribute names in sorted order, so callers iterating a
// style stay deterministic.
func (s Style) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
