// Package content loads the site's authored data: Markdown documents
// with YAML front-matter, and the timeline data file. Authoring defects
// (missing required fields, unparseable dates) surface here at load
// time; the renderers downstream never validate.
package content

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/quiet-field/vellum/internal/blog"
	"github.com/quiet-field/vellum/internal/core"
)

// dateLayouts are the front-matter date formats accepted, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"Jan 2 2006",
}

type postMatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	PubDate     string `yaml:"pubDate"`
	UpdatedDate string `yaml:"updatedDate"`
	HeroImage   string `yaml:"heroImage"`
	Draft       bool   `yaml:"draft"`
}

// Loader converts authored documents into render-ready posts.
type Loader struct {
	md            goldmark.Markdown
	titleCaser    cases.Caser
	includeDrafts bool
}

// NewLoader builds a Loader. Drafts are included only when requested
// (the dev server does; the static export does not).
func NewLoader(includeDrafts bool) *Loader {
	return &Loader{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				gmhtml.WithUnsafe(),
			),
		),
		titleCaser:    cases.Title(language.English),
		includeDrafts: includeDrafts,
	}
}

// LoadPosts reads every Markdown document under dir in fsys and returns
// posts sorted by publish date, newest first.
func (l *Loader) LoadPosts(fsys fs.FS, dir string) ([]blog.Post, error) {
	var posts []blog.Post

	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !isMarkdown(d.Name()) {
			return nil
		}

		post, err := l.loadPost(fsys, p)
		if err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}

		if post.Draft && !l.includeDrafts {
			return nil
		}
		posts = append(posts, post)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PubDate.After(posts[j].PubDate)
	})

	return posts, nil
}

func (l *Loader) loadPost(fsys fs.FS, file string) (blog.Post, error) {
	raw, err := fs.ReadFile(fsys, file)
	if err != nil {
		return blog.Post{}, err
	}

	var matter postMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &matter)
	if err != nil {
		return blog.Post{}, fmt.Errorf("parse front-matter: %w", err)
	}

	if matter.PubDate == "" {
		return blog.Post{}, fmt.Errorf("front-matter is missing pubDate")
	}
	pubDate, err := parseDate(matter.PubDate)
	if err != nil {
		return blog.Post{}, fmt.Errorf("pubDate: %w", err)
	}

	var updated *time.Time
	if matter.UpdatedDate != "" {
		u, err := parseDate(matter.UpdatedDate)
		if err != nil {
			return blog.Post{}, fmt.Errorf("updatedDate: %w", err)
		}
		updated = &u
	}

	var htmlBuf bytes.Buffer
	if err := l.md.Convert(body, &htmlBuf); err != nil {
		return blog.Post{}, fmt.Errorf("convert markdown: %w", err)
	}

	title := matter.Title
	if title == "" {
		title = l.titleFromFilename(file)
	}

	return blog.Post{
		Slug:        core.SlugFromFile(file),
		Title:       title,
		Description: matter.Description,
		PubDate:     pubDate,
		UpdatedDate: updated,
		HeroImage:   matter.HeroImage,
		Draft:       matter.Draft,
		Body:        template.HTML(htmlBuf.String()),
	}, nil
}

func (l *Loader) titleFromFilename(file string) string {
	base := strings.TrimSuffix(path.Base(file), path.Ext(file))
	base = strings.ReplaceAll(base, "-", " ")
	base = strings.ReplaceAll(base, "_", " ")
	return l.titleCaser.String(base)
}

func isMarkdown(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".md" || ext == ".mdx" || ext == ".markdown"
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
