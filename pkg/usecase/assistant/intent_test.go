package assistant_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/t-okazaki/satchel/pkg/usecase/assistant"
)

func TestClassify(t *testing.T) {
	vocab := assistant.DefaultVocabulary()

	testCases := []struct {
		name  string
		text  string
		video bool
		place bool
	}{
		{"plain question", "explain the French Revolution", false, false},
		{"video keyword", "find a video about photosynthesis", true, false},
		{"youtube keyword", "any good youtube channels for calculus?", true, false},
		{"place keyword", "is there a quiet spot near campus?", false, true},
		{"category keyword without place keyword", "I need coffee", false, true},
		{"both intents", "show me a video of cafes nearby", true, true},
		{"case insensitive", "WATCH something about WW2", true, false},
		{"empty input", "", false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			intents := vocab.Classify(tc.text)
			gt.Equal(t, intents.Video, tc.video)
			gt.Equal(t, intents.Place, tc.place)
		})
	}
}

func TestVideoQuery(t *testing.T) {
	vocab := assistant.DefaultVocabulary()

	testCases := []struct {
		name     string
		text     string
		expected string
	}{
		{"drops trigger token", "find a video about photosynthesis", "find a about photosynthesis"},
		{"drops uppercase trigger", "Video essay recommendations", "essay recommendations"},
		{"no trigger untouched", "explain entropy", "explain entropy"},
		{"all triggers fall back to raw text", "video youtube watch", "video youtube watch"},
		{"keeps embedded substrings", "videos about cooking", "videos about cooking"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, vocab.VideoQuery(tc.text), tc.expected)
		})
	}
}

func TestPlaceCategory(t *testing.T) {
	vocab := assistant.DefaultVocabulary()

	testCases := []struct {
		name     string
		text     string
		expected string
	}{
		{"restaurant", "where can I get dinner near here?", "restaurant"},
		{"cafe", "coffee places around me", "cafe"},
		{"library", "a library to study in", "library"},
		{"gym", "gym nearby", "gym"},
		{"park", "any park close to campus?", "park"},
		{"no match degrades to default", "somewhere interesting nearby", assistant.DefaultCategory},
		{"first matching rule wins", "food court next to the gym", "restaurant"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, vocab.PlaceCategory(tc.text), tc.expected)
		})
	}
}
