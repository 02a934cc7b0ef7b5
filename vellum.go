// Package vellum is a small component-based site engine: pages are
// declared as routes bound to pure view functions, served live in
// development and exported as a static HTML tree for deployment.
package vellum

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/quiet-field/vellum/internal/adapters/env"
	"github.com/quiet-field/vellum/internal/assets"
	"github.com/quiet-field/vellum/internal/core"
	"github.com/quiet-field/vellum/internal/page"
)

type (
	RenderedPage   = core.RenderedPage
	ViewFunc       = core.ViewFunc
	PageOption     = core.PageOption
	PropsLoader    = core.PropsLoader
	StaticPathData = core.StaticPathData
	RedirectError  = core.RedirectError
)

// Route binds a URL pattern to a view.
type Route struct {
	Pattern string
	View    ViewFunc
	Options []PageOption
}

type App struct {
	routes      []Route
	staticFS    fs.FS
	stylesheet  string
	isDev       bool
	pageConfigs map[string]*core.PageConfig
}

type router interface {
	http.Handler
	Handle(pattern string, handler http.Handler)
}

// New assembles an App. staticFS holds the site's static assets (served
// under /static/ and copied on export); stylesheet is the href injected
// into every page head, empty to skip.
func New(staticFS fs.FS, stylesheet string, routes ...Route) *App {
	mode := env.DetectMode()

	app := &App{
		routes:      routes,
		staticFS:    staticFS,
		stylesheet:  stylesheet,
		isDev:       mode == core.ModeDev,
		pageConfigs: make(map[string]*core.PageConfig),
	}

	for _, route := range routes {
		config := buildPageConfig(route)
		app.pageConfigs[route.Pattern] = &config
	}

	return app
}

func buildPageConfig(route Route) core.PageConfig {
	config := core.PageConfig{
		View: route.View,
		Mode: core.ModeLive,
	}
	for _, opt := range route.Options {
		opt(&config)
	}
	return config
}

// Wrap registers the app's pages on the given router and returns a
// handler that also serves /static/ assets. Pass an existing mux to mix
// pages with API routes.
func (a *App) Wrap(api router) http.Handler {
	if api == nil {
		panic("vellum: nil router passed to Wrap; use app.Handler()")
	}

	for _, route := range a.routes {
		config := buildPageConfig(route)
		handler := page.NewHandler(config, a.stylesheet, a.isDev)
		api.Handle(route.Pattern, handler)
	}

	return a.withStaticAssets(api)
}

// Handler returns the app mounted on a fresh ServeMux.
func (a *App) Handler() http.Handler {
	return a.Wrap(http.NewServeMux())
}

func (a *App) withStaticAssets(next http.Handler) http.Handler {
	if a.staticFS == nil {
		return next
	}

	staticHandler := assets.Handler(a.staticFS, "/static/")

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.HasPrefix(req.URL.Path, "/static/") {
			staticHandler.ServeHTTP(w, req)
			return
		}
		next.ServeHTTP(w, req)
	})
}

// Page declares a route.
func Page(pattern string, view ViewFunc, opts ...PageOption) Route {
	return Route{
		Pattern: pattern,
		View:    view,
		Options: opts,
	}
}

func WithLoader(loader PropsLoader) PageOption {
	return core.WithLoader(loader)
}

func WithStatic() PageOption {
	return core.WithStatic()
}

func WithStaticData(loader core.StaticDataLoader) PageOption {
	return core.WithStaticData(loader)
}
