package site

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/quiet-field/vellum/internal/blog"
	"github.com/quiet-field/vellum/internal/core"
	"github.com/quiet-field/vellum/internal/timeline"
)

var homeTemplate = template.Must(template.New("home").Parse(`<section class="home">
  <h1>{{ .Title }}</h1>
  {{- if .Description }}
  <p class="site-intro">{{ .Description }}</p>
  {{- end }}
  <nav class="site-nav"><a href="/blog">Blog</a></nav>
  <h2>Career</h2>
  {{ .Timeline }}
</section>
`))

func (s *Site) homeView(props map[string]any) (core.RenderedPage, error) {
	entries, ok := props["entries"].([]timeline.Entry)
	if !ok {
		return core.RenderedPage{}, fmt.Errorf("home view: missing timeline entries")
	}

	frag, err := timeline.Render(entries)
	if err != nil {
		return core.RenderedPage{}, err
	}

	var body strings.Builder
	err = homeTemplate.Execute(&body, struct {
		Title       string
		Description string
		Timeline    template.HTML
	}{
		Title:       s.cfg.SiteTitle,
		Description: s.cfg.SiteDescription,
		Timeline:    template.HTML(frag),
	})
	if err != nil {
		return core.RenderedPage{}, err
	}

	return core.RenderedPage{
		Body: body.String(),
		Head: headFor(s.cfg.SiteTitle, s.cfg.SiteDescription),
	}, nil
}

func (s *Site) listingView(props map[string]any) (core.RenderedPage, error) {
	posts, ok := props["posts"].([]blog.Post)
	if !ok {
		return core.RenderedPage{}, fmt.Errorf("listing view: missing posts")
	}

	body, err := blog.RenderListing(posts)
	if err != nil {
		return core.RenderedPage{}, err
	}

	return core.RenderedPage{
		Body: body,
		Head: headFor("Blog | "+s.cfg.SiteTitle, s.cfg.SiteDescription),
	}, nil
}

func (s *Site) articleView(props map[string]any) (core.RenderedPage, error) {
	post, ok := props["post"].(blog.Post)
	if !ok {
		return core.RenderedPage{}, fmt.Errorf("article view: missing post")
	}

	return blog.RenderArticle(post)
}

var headTemplate = template.Must(template.New("head").Parse(
	`<title>{{ .Title }}</title>{{ if .Description }}<meta name="description" content="{{ .Description }}" />{{ end }}`))

func headFor(title, description string) string {
	var head strings.Builder
	_ = headTemplate.Execute(&head, struct {
		Title       string
		Description string
	}{Title: title, Description: description})
	return head.String()
}
