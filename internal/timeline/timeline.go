// Package timeline renders an ordered list of career entries as a
// chronological list. Ordering is the caller's responsibility: entries are
// emitted exactly in the order supplied, and no validation is performed.
package timeline

import (
	"html/template"
	"strings"

	"github.com/quiet-field/vellum/internal/core"
)

// Entry is one row of the timeline.
type Entry struct {
	// Start is required; End is optional and its absence means the
	// position is ongoing.
	Start core.DisplayDate
	End   core.DisplayDate

	Title   string
	Company string

	// Description is optional; nothing is rendered in its place when
	// empty.
	Description string

	// Extra is opaque pre-rendered markup placed verbatim after the
	// description. The renderer never interprets it.
	Extra template.HTML
}

// DateRange formats the entry's date line: "March 2025" for an ongoing
// entry, "March 2025 - June 2025" otherwise. Pre-formatted string dates
// pass through unchanged.
func (e Entry) DateRange() string {
	return core.FormatDateRange(e.Start, e.End)
}

var listTemplate = template.Must(template.New("timeline").Parse(`<ol class="timeline">
{{- range . }}
  <li class="timeline-entry">
    <span class="timeline-dates">{{ .DateRange }}</span>
    <h3 class="timeline-heading">{{ .Title }} &middot; {{ .Company }}</h3>
    {{- if .Description }}
    <p class="timeline-description">{{ .Description }}</p>
    {{- end }}
    {{- if .Extra }}
    <div class="timeline-extra">{{ .Extra }}</div>
    {{- end }}
  </li>
{{- end }}
</ol>
`))

// Render produces the timeline list fragment, one item per entry,
// preserving input order.
func Render(entries []Entry) (string, error) {
	var buf strings.Builder
	if err := listTemplate.Execute(&buf, entries); err != nil {
		return "", err
	}
	return buf.String(), nil
}
