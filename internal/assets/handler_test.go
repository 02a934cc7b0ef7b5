package assets

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

func testStaticFS() fstest.MapFS {
	return fstest.MapFS{
		"css/site.css":    &fstest.MapFile{Data: []byte("body{}")},
		"images/hero.svg": &fstest.MapFile{Data: []byte("<svg/>")},
	}
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandler_ServesFileWithContentType(t *testing.T) {
	h := Handler(testStaticFS(), "/static/")

	rec := get(h, "/static/css/site.css")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/css", rec.Header().Get("Content-Type"))
	assert.Equal(t, "body{}", rec.Body.String())

	rec = get(h, "/static/images/hero.svg")
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
}

func TestHandler_MissingFileIs404(t *testing.T) {
	h := Handler(testStaticFS(), "/static/")
	assert.Equal(t, http.StatusNotFound, get(h, "/static/nope.css").Code)
}

func TestHandler_DirectoryIs404(t *testing.T) {
	h := Handler(testStaticFS(), "/static/")
	assert.Equal(t, http.StatusNotFound, get(h, "/static/css").Code)
}

func TestHandler_TraversalIs404(t *testing.T) {
	h := Handler(testStaticFS(), "/static/")
	assert.Equal(t, http.StatusNotFound, get(h, "/static/../css/site.css").Code)
}
