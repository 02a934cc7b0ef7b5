package core

import (
	"context"
	"net/http"
)

// PropsLoader resolves per-request props for a live page.
type PropsLoader func(*http.Request) (map[string]any, error)

// RedirectError lets a PropsLoader redirect instead of rendering.
type RedirectError interface {
	RedirectURL() string
	RedirectStatusCode() int
}

type PageMode int

const (
	// ModeLive renders on every request through the PropsLoader.
	ModeLive PageMode = iota
	// ModeStaticPrerender enumerates its paths up front and is written to
	// disk by the static export.
	ModeStaticPrerender
)

// StaticPathData is one concrete page a static route expands to.
type StaticPathData struct {
	Path  string
	Props map[string]any
}

// StaticDataLoader enumerates every path a static page renders at,
// together with the props for each.
type StaticDataLoader func(context.Context) ([]StaticPathData, error)

// RenderedPage is a view's output: a body fragment plus markup for the
// document head (title, meta tags).
type RenderedPage struct {
	Body string
	Head string
}

// ViewFunc renders props into a page fragment. Views are pure: same
// props, same markup.
type ViewFunc func(props map[string]any) (RenderedPage, error)

type PageConfig struct {
	View             ViewFunc
	Mode             PageMode
	PropsLoader      PropsLoader
	StaticDataLoader StaticDataLoader
}

type PageOption func(*PageConfig)

func WithLoader(loader PropsLoader) PageOption {
	return func(c *PageConfig) {
		c.PropsLoader = loader
	}
}

func WithStatic() PageOption {
	return func(c *PageConfig) {
		c.Mode = ModeStaticPrerender
	}
}

func WithStaticData(loader StaticDataLoader) PageOption {
	return func(c *PageConfig) {
		c.Mode = ModeStaticPrerender
		c.StaticDataLoader = loader
	}
}
