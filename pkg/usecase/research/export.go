package research

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/m-mizutani/retrospect/pkg/model"
)

// Export serializes a completed session into one self-contained markdown
// document: topic header, block-quoted summary, the timeline image and the
// literature review when present, and one subsection per article. Pure, no
// network dependency.
func Export(session *model.Session) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", session.Topic)

	for _, line := range strings.Split(strings.TrimSpace(session.Result.Summary), "\n") {
		fmt.Fprintf(&b, "> %s\n", line)
	}
	b.WriteString("\n")

	if img := session.TimelineImage; img != nil {
		fmt.Fprintf(&b, "![Timeline](data:%s;base64,%s)\n\n",
			img.MIMEType, base64.StdEncoding.EncodeToString(img.Data))
	}

	if session.LiteratureReview != "" {
		b.WriteString("## Literature Review\n\n")
		b.WriteString(strings.TrimSpace(session.LiteratureReview))
		b.WriteString("\n\n")
	}

	b.WriteString("## Articles\n\n")
	for _, a := range session.Result.Articles {
		fmt.Fprintf(&b, "### %s\n\n", a.Title)
		fmt.Fprintf(&b, "- Authors: %s\n", a.Authors)
		fmt.Fprintf(&b, "- Published: %s\n", a.PublicationDate)
		if a.Journal != "" {
			fmt.Fprintf(&b, "- Journal: %s\n", a.Journal)
		}
		if a.URL != "" {
			fmt.Fprintf(&b, "- Link: %s\n", a.URL)
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s\n\n", a.Significance)
		fmt.Fprintf(&b, "%s\n\n", a.AISummary)
	}

	return b.String()
}
