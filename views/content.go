package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
)

// Post bodies may come from operator-edited YAML or SQLite files, so inline
// HTML is allowed but run through the UGC policy.
var contentPolicy = bluemonday.UGCPolicy()

// Content returns a templ.Component rendering post content as paragraphs.
// Blank lines separate paragraphs.
func Content(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, renderContent(content))
		return err
	})
}

func renderContent(content string) string {
	var b strings.Builder
	for _, para := range splitParagraphs(content) {
		b.WriteString(`<p class="content">`)
		b.WriteString(contentPolicy.Sanitize(para))
		b.WriteString("</p>")
	}
	return b.String()
}

func splitParagraphs(content string) []string {
	var out, cur []string
	flush := func() {
		if len(cur) > 0 {
			out = append(out, strings.Join(cur, " "))
			cur = nil
		}
	}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return out
}
