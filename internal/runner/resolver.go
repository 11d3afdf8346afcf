package runner

import (
	"featrun/internal/catalog"
	"featrun/internal/feature"
)

// Match pairs a resolved catalog entry with the text its capture
// groups extracted.
type Match struct {
	Entry    *catalog.Entry
	Captures []string
}

// Resolve finds the implementation for a step. Each entry is tried
// against the bare step text first, then against "<keyword> <text>".
// The first entry in catalog order that matches wins, regardless of
// how specific later entries are; this keeps resolution deterministic
// and cheap at the cost of ignoring specificity. A false return means
// the step is undefined.
func Resolve(cat *catalog.Catalog, step feature.Step) (Match, bool) {
	full := string(step.Keyword) + " " + step.Text
	for i := range cat.Entries {
		entry := &cat.Entries[i]
		if captures, ok := matchEntry(entry, step.Text); ok {
			return Match{Entry: entry, Captures: captures}, true
		}
		if captures, ok := matchEntry(entry, full); ok {
			return Match{Entry: entry, Captures: captures}, true
		}
	}
	return Match{}, false
}

// Ambiguities returns the raw patterns of every entry matching the
// step, in catalog order. More than one element means authoring overlap
// that first-match-wins is silently resolving.
func Ambiguities(cat *catalog.Catalog, step feature.Step) []string {
	full := string(step.Keyword) + " " + step.Text
	var patterns []string
	for i := range cat.Entries {
		entry := &cat.Entries[i]
		if _, ok := matchEntry(entry, step.Text); ok {
			patterns = append(patterns, entry.Raw)
			continue
		}
		if _, ok := matchEntry(entry, full); ok {
			patterns = append(patterns, entry.Raw)
		}
	}
	return patterns
}

func matchEntry(entry *catalog.Entry, text string) ([]string, bool) {
	groups := entry.Pattern.FindStringSubmatch(text)
	if groups == nil {
		return nil, false
	}
	return groups[1:], true
}
