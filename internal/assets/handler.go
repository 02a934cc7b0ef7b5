// Package assets serves the site's static files with explicit content
// types.
package assets

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/quiet-field/vellum/internal/core"
)

type handler struct {
	fsys   fs.FS
	prefix string
}

// Handler serves files from fsys under the given URL prefix, e.g.
// Handler(staticFS, "/static/") serves "css/site.css" at
// "/static/css/site.css". Directories and missing files 404.
func Handler(fsys fs.FS, prefix string) http.Handler {
	return &handler{fsys: fsys, prefix: prefix}
}

func (h *handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, h.prefix)
	if path == "" || strings.Contains(path, "..") {
		http.NotFound(w, req)
		return
	}

	info, err := fs.Stat(h.fsys, path)
	if err != nil || info.IsDir() {
		http.NotFound(w, req)
		return
	}

	data, err := fs.ReadFile(h.fsys, path)
	if err != nil {
		http.NotFound(w, req)
		return
	}

	w.Header().Set("Content-Type", core.GetContentType(path))
	_, _ = w.Write(data)
}
