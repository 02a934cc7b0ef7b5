// Package page turns a page configuration into an http.Handler. Live
// pages resolve props per request; static pages match the request path
// against their enumerated entries.
package page

import (
	"bytes"
	"context"
	"html"
	"net/http"

	"github.com/quiet-field/vellum/internal/core"
)

type Handler struct {
	config  core.PageConfig
	cssHref string
	isDev   bool
}

func NewHandler(config core.PageConfig, cssHref string, isDev bool) http.Handler {
	return &Handler{
		config:  config,
		cssHref: cssHref,
		isDev:   isDev,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if h.config.Mode == core.ModeStaticPrerender {
		h.serveStatic(w, req)
		return
	}

	loader := h.config.PropsLoader
	if loader == nil {
		loader = func(*http.Request) (map[string]any, error) {
			return map[string]any{}, nil
		}
	}

	props, err := loader(req)
	if err != nil {
		h.handlePropsError(w, req, err)
		return
	}

	h.render(w, props)
}

// serveStatic renders a prerendered page on demand: the request path is
// matched against the entries the StaticDataLoader enumerates, so the
// dev server and the exported site agree on which paths exist.
func (h *Handler) serveStatic(w http.ResponseWriter, req *http.Request) {
	requestPath := core.NormalizePath(req.URL.Path)

	props, found, err := h.loadStaticDataForPath(req.Context(), requestPath)
	if err != nil {
		h.serveError(w, err)
		return
	}
	if !found {
		http.NotFound(w, req)
		return
	}

	h.render(w, props)
}

func (h *Handler) render(w http.ResponseWriter, props map[string]any) {
	page, err := h.config.View(props)
	if err != nil {
		h.serveError(w, err)
		return
	}

	fullHTML := core.RenderDocument(page.Body, page.Head, h.cssHref)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(fullHTML))
}

func (h *Handler) loadStaticDataForPath(ctx context.Context, requestPath string) (map[string]any, bool, error) {
	// A static page without a loader exists at exactly one path, the one
	// the mux routed here.
	if h.config.StaticDataLoader == nil {
		return map[string]any{}, true, nil
	}

	entries, err := h.config.StaticDataLoader(ctx)
	if err != nil {
		return nil, false, err
	}

	for _, entry := range entries {
		if core.NormalizePath(entry.Path) == requestPath {
			return entry.Props, true, nil
		}
	}

	return nil, false, nil
}

func (h *Handler) handlePropsError(w http.ResponseWriter, req *http.Request, err error) {
	redirectErr, isRedirect := err.(core.RedirectError)
	if !isRedirect {
		h.serveError(w, err)
		return
	}

	status := redirectErr.RedirectStatusCode()
	if status == 0 {
		status = http.StatusFound
	}
	http.Redirect(w, req, redirectErr.RedirectURL(), status)
}

func (h *Handler) serveError(w http.ResponseWriter, err error) {
	data := core.ErrorData{
		Message: "Internal Server Error",
		IsDev:   h.isDev,
	}
	if err != nil {
		data.Message = err.Error()
	}

	var buf bytes.Buffer
	if tplErr := core.ErrorTemplate.Execute(&buf, data); tplErr != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(buf.Bytes())
}
