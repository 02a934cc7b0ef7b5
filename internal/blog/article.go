package blog

import (
	"html/template"
	"strings"

	"github.com/quiet-field/vellum/internal/core"
)

// PubDateDisplay formats the publish date with the fixed long
// convention, e.g. "March 4, 2025".
func (p Post) PubDateDisplay() string {
	return core.FormatLongDate(p.PubDate)
}

// UpdatedDateDisplay formats the optional updated date; empty when the
// post was never updated.
func (p Post) UpdatedDateDisplay() string {
	if p.UpdatedDate == nil {
		return ""
	}
	return core.FormatLongDate(*p.UpdatedDate)
}

func (p Post) PubDateISO() string {
	return p.PubDate.Format("2006-01-02")
}

func (p Post) UpdatedDateISO() string {
	if p.UpdatedDate == nil {
		return ""
	}
	return p.UpdatedDate.Format("2006-01-02")
}

var articleTemplate = template.Must(template.New("article").Parse(`<article class="blog-post">
  <nav class="back-link"><a href="/blog">&larr; Back to all posts</a></nav>
  {{- if .HeroImage }}
  <div class="hero-image"><img src="{{ .HeroImage }}" alt="" /></div>
  {{- end }}
  <header class="post-header">
    <h1>{{ .Title }}</h1>
    <div class="post-dates">
      <time datetime="{{ .PubDateISO }}">{{ .PubDateDisplay }}</time>
      {{- if .UpdatedDate }}
      <p class="last-updated">Last updated on <time datetime="{{ .UpdatedDateISO }}">{{ .UpdatedDateDisplay }}</time></p>
      {{- end }}
    </div>
    <hr />
  </header>
  <div class="post-body">{{ .Body }}</div>
</article>
`))

var articleHeadTemplate = template.Must(template.New("articleHead").Parse(
	`<title>{{ .Title }}</title><meta name="description" content="{{ .Description }}" />`))

// RenderArticle produces the full article page fragment for one post:
// back link, optional hero image, title block, date block, body.
func RenderArticle(p Post) (core.RenderedPage, error) {
	var body strings.Builder
	if err := articleTemplate.Execute(&body, p); err != nil {
		return core.RenderedPage{}, err
	}

	var head strings.Builder
	if err := articleHeadTemplate.Execute(&head, p); err != nil {
		return core.RenderedPage{}, err
	}

	return core.RenderedPage{Body: body.String(), Head: head.String()}, nil
}

var listingTemplate = template.Must(template.New("listing").Parse(`<section class="blog-listing">
  <h1>Blog</h1>
  <ul class="post-list">
{{- range . }}
    <li class="post-list-item">
      <a href="{{ .Permalink }}">
        <h2>{{ .Title }}</h2>
        <time datetime="{{ .PubDateISO }}">{{ .PubDateDisplay }}</time>
        {{- if .Description }}
        <p class="post-summary">{{ .Description }}</p>
        {{- end }}
      </a>
    </li>
{{- end }}
  </ul>
</section>
`))

// RenderListing produces the post index fragment in the order supplied
// by the caller (the loader sorts newest first).
func RenderListing(posts []Post) (string, error) {
	var buf strings.Builder
	if err := listingTemplate.Execute(&buf, posts); err != nil {
		return "", err
	}
	return buf.String(), nil
}
