package prompt

import (
	"fmt"
	"strings"

	"github.com/m-mizutani/retrospect/pkg/model"
)

// Context projects a discovery result into one bounded text block for use as
// background instruction: topic, narrative summary, and an enumerated list
// of every article in original order with one-based indices. Deterministic,
// no truncation.
func Context(result *model.DiscoveryResult) string {
	var b strings.Builder

	b.WriteString("Topic: " + result.Topic + "\n\n")
	b.WriteString("Summary:\n" + result.Summary + "\n\n")
	b.WriteString("Articles:\n")

	for i, a := range result.Articles {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, a.Title, a.PublicationDate)
		fmt.Fprintf(&b, "   Authors: %s\n", a.Authors)
		if a.Journal != "" {
			fmt.Fprintf(&b, "   Journal: %s\n", a.Journal)
		}
		fmt.Fprintf(&b, "   Significance: %s\n", a.Significance)
		fmt.Fprintf(&b, "   Summary: %s\n", a.AISummary)
	}

	return b.String()
}
