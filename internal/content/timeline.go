package content

import (
	"fmt"
	"html/template"
	"io/fs"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/quiet-field/vellum/internal/core"
	"github.com/quiet-field/vellum/internal/timeline"
)

// structuredDateLayout is the data-file form that renders through the
// month-year convention; any other value passes through as-is.
const structuredDateLayout = "2006-01"

type timelineDoc struct {
	Entries []timelineEntryDoc `yaml:"entries"`
}

type timelineEntryDoc struct {
	Start       string `yaml:"start"`
	End         string `yaml:"end"`
	Title       string `yaml:"title"`
	Company     string `yaml:"company"`
	Description string `yaml:"description"`
	Extra       string `yaml:"extra"`
}

// LoadTimeline reads the timeline data file. File order is render order;
// the loader does not sort.
func LoadTimeline(fsys fs.FS, file string) ([]timeline.Entry, error) {
	raw, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, err
	}

	var doc timelineDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}

	entries := make([]timeline.Entry, 0, len(doc.Entries))
	for i, e := range doc.Entries {
		if e.Title == "" || e.Company == "" {
			return nil, fmt.Errorf("%s: entry %d is missing title or company", file, i)
		}
		if e.Start == "" {
			return nil, fmt.Errorf("%s: entry %d is missing start", file, i)
		}

		entry := timeline.Entry{
			Start:       parseDisplayDate(e.Start),
			Title:       e.Title,
			Company:     e.Company,
			Description: e.Description,
			Extra:       template.HTML(e.Extra),
		}
		if e.End != "" {
			entry.End = parseDisplayDate(e.End)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func parseDisplayDate(s string) core.DisplayDate {
	if t, err := time.Parse(structuredDateLayout, s); err == nil {
		return core.DateOf(t)
	}
	return core.TextDate(s)
}
