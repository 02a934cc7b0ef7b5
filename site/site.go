// Package site defines the personal website: its routes, views, and
// authored content. The engine underneath is generic; everything
// site-specific lives here.
package site

import (
	"context"
	"io/fs"
	"path"

	"github.com/quiet-field/vellum"
	"github.com/quiet-field/vellum/internal/config"
	"github.com/quiet-field/vellum/internal/content"
	"github.com/quiet-field/vellum/internal/core"
)

const timelineFile = "timeline.yaml"

// Site wires the content loaders to the page routes. Data loaders run
// per request in dev, so edits show up without a restart; the static
// export runs them once.
type Site struct {
	cfg    *config.Config
	fsys   fs.FS
	loader *content.Loader
}

// New builds the site's App from the given filesystem: os.DirFS of the
// working tree in dev, the embedded FS in prod.
func New(cfg *config.Config, fsys fs.FS, dev bool) (*vellum.App, error) {
	s := &Site{
		cfg:    cfg,
		fsys:   fsys,
		loader: content.NewLoader(dev),
	}

	staticFS, err := fs.Sub(fsys, cfg.StaticDir)
	if err != nil {
		return nil, err
	}

	return vellum.New(staticFS, cfg.Stylesheet,
		vellum.Page("/{$}", s.homeView, vellum.WithStaticData(s.homeData)),
		vellum.Page("/blog", s.listingView, vellum.WithStaticData(s.listingData)),
		vellum.Page("/blog/{slug}", s.articleView, vellum.WithStaticData(s.articleData)),
	), nil
}

// Check loads everything the site renders from and returns the first
// authoring error. The dev server runs it when content changes so
// defects surface on save, not on the next request.
func Check(cfg *config.Config, fsys fs.FS, dev bool) error {
	s := &Site{
		cfg:    cfg,
		fsys:   fsys,
		loader: content.NewLoader(dev),
	}

	if _, err := content.LoadTimeline(s.fsys, s.timelinePath()); err != nil {
		return err
	}
	_, err := s.loader.LoadPosts(s.fsys, s.cfg.ContentDir)
	return err
}

func (s *Site) timelinePath() string {
	return path.Join(s.cfg.DataDir, timelineFile)
}

func (s *Site) homeData(ctx context.Context) ([]core.StaticPathData, error) {
	entries, err := content.LoadTimeline(s.fsys, s.timelinePath())
	if err != nil {
		return nil, err
	}

	return []core.StaticPathData{
		{Path: "/", Props: map[string]any{"entries": entries}},
	}, nil
}

func (s *Site) listingData(ctx context.Context) ([]core.StaticPathData, error) {
	posts, err := s.loader.LoadPosts(s.fsys, s.cfg.ContentDir)
	if err != nil {
		return nil, err
	}

	return []core.StaticPathData{
		{Path: "/blog", Props: map[string]any{"posts": posts}},
	}, nil
}

func (s *Site) articleData(ctx context.Context) ([]core.StaticPathData, error) {
	posts, err := s.loader.LoadPosts(s.fsys, s.cfg.ContentDir)
	if err != nil {
		return nil, err
	}

	entries := make([]core.StaticPathData, 0, len(posts))
	for _, post := range posts {
		entries = append(entries, core.StaticPathData{
			Path:  post.Permalink(),
			Props: map[string]any{"post": post},
		})
	}
	return entries, nil
}
