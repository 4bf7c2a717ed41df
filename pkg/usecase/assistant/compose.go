package assistant

import (
	"fmt"
	"strings"

	"github.com/t-okazaki/satchel/pkg/model"
)

// Grounding is the document text that replaces general enrichment when
// document mode is active
type Grounding struct {
	ID       model.DocumentID
	FileName string
	Text     string
}

// ComposePrompt builds the final prompt handed to the language model. The
// output is fully deterministic in its inputs: the grounding template when
// a document grounds the turn, otherwise the raw user text, followed by one
// annotation line per non-empty result set (places before videos).
func ComposePrompt(text string, videos []model.VideoRef, places []model.PlaceRef, doc *Grounding) string {
	var sb strings.Builder

	if doc != nil {
		fmt.Fprintf(&sb, "Based on the document %q: %s\n\nUser question: %s", doc.FileName, doc.Text, text)
	} else {
		sb.WriteString(text)
	}

	if len(places) > 0 {
		fmt.Fprintf(&sb, "\n[System Note: I found %d places. Mention them briefly.]", len(places))
	}
	if len(videos) > 0 {
		fmt.Fprintf(&sb, "\n[System Note: I found %d videos. Mention them briefly.]", len(videos))
	}

	return sb.String()
}
