package assistant

import (
	"strings"
)

// Intents is the closed set of side-lookups a user message implies. Both
// members can be set at once; neither short-circuits the other. The plain
// question path is implicit and always available.
type Intents struct {
	Video bool
	Place bool
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// Classify inspects raw user text and returns the implied intents.
// Classification never fails; an empty Intents means the general path only.
func (v *Vocabulary) Classify(text string) Intents {
	lower := strings.ToLower(text)

	intents := Intents{
		Video: containsAny(lower, v.Video),
		Place: containsAny(lower, v.Place),
	}

	if !intents.Place {
		for _, rule := range v.Categories {
			if containsAny(lower, rule.Keywords) {
				intents.Place = true
				break
			}
		}
	}

	return intents
}

// VideoQuery derives a search query from the raw input by dropping the
// video trigger tokens. Falls back to the full raw input when stripping
// leaves nothing.
func (v *Vocabulary) VideoQuery(text string) string {
	fields := strings.Fields(text)
	kept := make([]string, 0, len(fields))

	for _, field := range fields {
		lower := strings.ToLower(field)
		trigger := false
		for _, kw := range v.Video {
			if lower == strings.ToLower(kw) {
				trigger = true
				break
			}
		}
		if !trigger {
			kept = append(kept, field)
		}
	}

	query := strings.TrimSpace(strings.Join(kept, " "))
	if query == "" {
		return text
	}
	return query
}

// PlaceCategory maps raw input to a place category by keyword lookup,
// degrading to DefaultCategory when nothing specific matches.
func (v *Vocabulary) PlaceCategory(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range v.Categories {
		if containsAny(lower, rule.Keywords) {
			return rule.Category
		}
	}
	return DefaultCategory
}
