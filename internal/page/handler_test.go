package page

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quiet-field/vellum/internal/core"
)

func echoView(props map[string]any) (core.RenderedPage, error) {
	name, _ := props["name"].(string)
	return core.RenderedPage{
		Body: fmt.Sprintf("<p>hello %s</p>", name),
		Head: "<title>Echo</title>",
	}, nil
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandler_LivePageUsesLoader(t *testing.T) {
	h := NewHandler(core.PageConfig{
		View: echoView,
		Mode: core.ModeLive,
		PropsLoader: func(req *http.Request) (map[string]any, error) {
			return map[string]any{"name": req.URL.Query().Get("name")}, nil
		},
	}, "", true)

	rec := get(t, h, "/?name=world")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<p>hello world</p>")
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestHandler_LivePageWithoutLoader(t *testing.T) {
	h := NewHandler(core.PageConfig{View: echoView, Mode: core.ModeLive}, "", true)

	rec := get(t, h, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_StaticPageMatchesEnumeratedPath(t *testing.T) {
	config := core.PageConfig{
		View: echoView,
		Mode: core.ModeStaticPrerender,
		StaticDataLoader: func(context.Context) ([]core.StaticPathData, error) {
			return []core.StaticPathData{
				{Path: "/blog/hello", Props: map[string]any{"name": "hello"}},
			}, nil
		},
	}
	h := NewHandler(config, "", true)

	rec := get(t, h, "/blog/hello")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hello hello")

	// Trailing slash normalizes to the same page.
	rec = get(t, h, "/blog/hello/")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_StaticPageUnknownPathIs404(t *testing.T) {
	config := core.PageConfig{
		View: echoView,
		Mode: core.ModeStaticPrerender,
		StaticDataLoader: func(context.Context) ([]core.StaticPathData, error) {
			return []core.StaticPathData{{Path: "/blog/hello", Props: nil}}, nil
		},
	}
	h := NewHandler(config, "", true)

	rec := get(t, h, "/blog/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_ViewErrorIs500(t *testing.T) {
	failing := func(map[string]any) (core.RenderedPage, error) {
		return core.RenderedPage{}, errors.New("template exploded")
	}

	dev := NewHandler(core.PageConfig{View: failing, Mode: core.ModeLive}, "", true)
	rec := get(t, dev, "/")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "template exploded", "dev error pages show the message")

	prod := NewHandler(core.PageConfig{View: failing, Mode: core.ModeLive}, "", false)
	rec = get(t, prod, "/")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "template exploded")
}

type redirectErr struct{ url string }

func (e *redirectErr) Error() string           { return "redirect to " + e.url }
func (e *redirectErr) RedirectURL() string     { return e.url }
func (e *redirectErr) RedirectStatusCode() int { return 0 }

func TestHandler_LoaderRedirect(t *testing.T) {
	h := NewHandler(core.PageConfig{
		View: echoView,
		Mode: core.ModeLive,
		PropsLoader: func(*http.Request) (map[string]any, error) {
			return nil, &redirectErr{url: "/login"}
		},
	}, "", true)

	rec := get(t, h, "/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestHandler_StylesheetInjected(t *testing.T) {
	h := NewHandler(core.PageConfig{View: echoView, Mode: core.ModeLive}, "/static/css/site.css", true)

	rec := get(t, h, "/")
	assert.Contains(t, rec.Body.String(), `href="/static/css/site.css"`)
}
