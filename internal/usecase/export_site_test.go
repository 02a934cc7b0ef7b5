package usecase

import (
	"context"
	"errors"
	iofs "io/fs"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quiet-field/vellum/internal/core"
)

type fakeFS struct {
	files   map[string][]byte
	dirs    map[string][]iofs.DirEntry
	removed []string
}

func newFakeFS() *fakeFS {
	return &fakeFS{
		files: make(map[string][]byte),
		dirs:  make(map[string][]iofs.DirEntry),
	}
}

func (f *fakeFS) ReadFile(path string) ([]byte, error) {
	data, ok := f.files[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func (f *fakeFS) ReadDir(path string) ([]iofs.DirEntry, error) {
	return f.dirs[path], nil
}

func (f *fakeFS) FileExists(path string) bool {
	if _, ok := f.files[path]; ok {
		return true
	}
	_, ok := f.dirs[path]
	return ok
}

func (f *fakeFS) WriteFile(path string, data []byte, perm iofs.FileMode) error {
	f.files[path] = data
	return nil
}

func (f *fakeFS) MkdirAll(path string, perm iofs.FileMode) error { return nil }

func (f *fakeFS) RemoveAll(path string) error {
	f.removed = append(f.removed, path)
	return nil
}

type fakeDirEntry struct{ name string }

func (e fakeDirEntry) Name() string                 { return e.name }
func (e fakeDirEntry) IsDir() bool                  { return false }
func (e fakeDirEntry) Type() iofs.FileMode          { return 0 }
func (e fakeDirEntry) Info() (iofs.FileInfo, error) { return nil, errors.New("not implemented") }

type quietOutput struct{}

func (quietOutput) PrintHeader(string)           {}
func (quietOutput) PrintStep(string, ...any)     {}
func (quietOutput) PrintSuccess(string, ...any)  {}
func (quietOutput) PrintWarning(string, ...any)  {}
func (quietOutput) PrintError(string, ...any)    {}
func (quietOutput) PrintFile(string)             {}
func (quietOutput) PrintDone(string)             {}

func staticPage(paths ...string) core.PageConfig {
	return core.PageConfig{
		View: func(props map[string]any) (core.RenderedPage, error) {
			name, _ := props["name"].(string)
			return core.RenderedPage{Body: "<p>" + name + "</p>"}, nil
		},
		Mode: core.ModeStaticPrerender,
		StaticDataLoader: func(context.Context) ([]core.StaticPathData, error) {
			entries := make([]core.StaticPathData, 0, len(paths))
			for _, p := range paths {
				entries = append(entries, core.StaticPathData{
					Path:  p,
					Props: map[string]any{"name": p},
				})
			}
			return entries, nil
		},
	}
}

func TestExportSite_WritesOnePageFilePerPath(t *testing.T) {
	fs := newFakeFS()
	svc := NewExportService(fs, quietOutput{})

	result := svc.ExportSite(context.Background(), ExportInput{
		Pages: []ExportPage{
			{Pattern: "/blog/{slug}", Config: staticPage("/blog/hello", "/blog/automation")},
		},
		OutputDir: "public",
	})

	require.NoError(t, result.Error)
	assert.Equal(t, 2, result.PagesWritten)
	assert.Contains(t, fs.files, filepath.Join("public", "blog", "hello", "index.html"))
	assert.Contains(t, fs.files, filepath.Join("public", "blog", "automation", "index.html"))
	assert.Equal(t, []string{"public"}, fs.removed, "output dir is cleaned first")
}

func TestExportSite_RootPattern(t *testing.T) {
	fs := newFakeFS()
	svc := NewExportService(fs, quietOutput{})

	page := core.PageConfig{
		View: func(map[string]any) (core.RenderedPage, error) {
			return core.RenderedPage{Body: "<p>home</p>"}, nil
		},
		Mode: core.ModeStaticPrerender,
	}

	result := svc.ExportSite(context.Background(), ExportInput{
		Pages:     []ExportPage{{Pattern: "/{$}", Config: page}},
		OutputDir: "public",
	})

	require.NoError(t, result.Error)
	data := fs.files[filepath.Join("public", "index.html")]
	assert.Contains(t, string(data), "<p>home</p>")
}

func TestExportSite_ParameterizedRouteNeedsLoader(t *testing.T) {
	fs := newFakeFS()
	svc := NewExportService(fs, quietOutput{})

	page := core.PageConfig{
		View: func(map[string]any) (core.RenderedPage, error) {
			return core.RenderedPage{}, nil
		},
	}

	result := svc.ExportSite(context.Background(), ExportInput{
		Pages:     []ExportPage{{Pattern: "/blog/{slug}", Config: page}},
		OutputDir: "public",
	})

	require.Error(t, result.Error)
	assert.Contains(t, result.Error.Error(), "static data loader")
}

func TestExportSite_CopiesStaticAssets(t *testing.T) {
	fs := newFakeFS()
	svc := NewExportService(fs, quietOutput{})

	staticFS := fstest.MapFS{
		"css/site.css":    &fstest.MapFile{Data: []byte("body{}")},
		"images/hero.svg": &fstest.MapFile{Data: []byte("<svg/>")},
	}

	result := svc.ExportSite(context.Background(), ExportInput{
		Pages:     nil,
		OutputDir: "public",
		StaticFS:  staticFS,
	})

	require.NoError(t, result.Error)
	assert.Equal(t, 2, result.AssetsWritten)
	assert.Equal(t, []byte("body{}"), fs.files[filepath.Join("public", "static", "css", "site.css")])
}

func TestExportSite_StylesheetInjected(t *testing.T) {
	fs := newFakeFS()
	svc := NewExportService(fs, quietOutput{})

	result := svc.ExportSite(context.Background(), ExportInput{
		Pages:     []ExportPage{{Pattern: "/blog", Config: staticPage("/blog")}},
		OutputDir: "public",
		CSSHref:   "/static/css/site.css",
	})

	require.NoError(t, result.Error)
	data := fs.files[filepath.Join("public", "blog", "index.html")]
	assert.Contains(t, string(data), `href="/static/css/site.css"`)
}

func TestPathForPattern(t *testing.T) {
	assert.Equal(t, "/", PathForPattern("/{$}"))
	assert.Equal(t, "/blog", PathForPattern("/blog"))
}

func TestExportSite_LoaderErrorPropagates(t *testing.T) {
	fs := newFakeFS()
	svc := NewExportService(fs, quietOutput{})

	page := core.PageConfig{
		View: func(map[string]any) (core.RenderedPage, error) {
			return core.RenderedPage{}, nil
		},
		Mode: core.ModeStaticPrerender,
		StaticDataLoader: func(context.Context) ([]core.StaticPathData, error) {
			return nil, errors.New("bad front-matter")
		},
	}

	result := svc.ExportSite(context.Background(), ExportInput{
		Pages:     []ExportPage{{Pattern: "/blog", Config: page}},
		OutputDir: "public",
	})

	require.Error(t, result.Error)
	assert.Contains(t, result.Error.Error(), "bad front-matter")
}
