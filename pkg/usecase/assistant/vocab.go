package assistant

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// DefaultCategory is used when no category keyword matches a place request
const DefaultCategory = "point_of_interest"

// CategoryRule maps keywords to a place category. Rules are evaluated in
// order; the first match wins.
type CategoryRule struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// Vocabulary holds the keyword sets that drive intent classification.
// Matching is substring membership over lowercased input; there is no
// natural-language understanding.
type Vocabulary struct {
	Video      []string       `yaml:"video"`
	Place      []string       `yaml:"place"`
	Categories []CategoryRule `yaml:"categories"`
}

// DefaultVocabulary returns the built-in keyword sets
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Video: []string{"video", "youtube", "watch"},
		Place: []string{"near", "nearby", "place", "around me"},
		Categories: []CategoryRule{
			{Category: "restaurant", Keywords: []string{"restaurant", "dinner", "lunch", "food"}},
			{Category: "cafe", Keywords: []string{"cafe", "coffee"}},
			{Category: "library", Keywords: []string{"library", "study spot"}},
			{Category: "gym", Keywords: []string{"gym", "workout"}},
			{Category: "park", Keywords: []string{"park"}},
		},
	}
}

// LoadVocabulary reads keyword sets from a YAML file. Sections left empty
// in the file keep their defaults.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read vocabulary file", goerr.V("path", path))
	}

	var loaded Vocabulary
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, goerr.Wrap(err, "failed to parse vocabulary file", goerr.V("path", path))
	}

	vocab := DefaultVocabulary()
	if len(loaded.Video) > 0 {
		vocab.Video = loaded.Video
	}
	if len(loaded.Place) > 0 {
		vocab.Place = loaded.Place
	}
	if len(loaded.Categories) > 0 {
		vocab.Categories = loaded.Categories
	}

	return vocab, nil
}
