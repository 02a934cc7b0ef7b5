package usecase

import (
	"context"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"strings"

	"github.com/quiet-field/vellum/internal/core"
)

// ExportPage pairs a route pattern with its page configuration.
type ExportPage struct {
	Pattern string
	Config  core.PageConfig
}

type ExportInput struct {
	Pages     []ExportPage
	OutputDir string
	CSSHref   string

	// StaticFS holds the site's static assets; nil skips the copy.
	StaticFS     iofs.FS
	StaticPrefix string
}

type ExportOutput struct {
	PagesWritten  int
	AssetsWritten int
	Error         error
}

// ExportService renders every page to disk, producing the deployable
// static tree.
type ExportService struct {
	fs  FileSystem
	cli CLIOutput
}

func NewExportService(fs FileSystem, cli CLIOutput) *ExportService {
	return &ExportService{
		fs:  fs,
		cli: cli,
	}
}

func (s *ExportService) ExportSite(ctx context.Context, input ExportInput) ExportOutput {
	if err := s.fs.RemoveAll(input.OutputDir); err != nil {
		return ExportOutput{Error: fmt.Errorf("clean output dir: %w", err)}
	}
	if err := s.fs.MkdirAll(input.OutputDir, 0o755); err != nil {
		return ExportOutput{Error: fmt.Errorf("create output dir: %w", err)}
	}

	assets := 0
	if input.StaticFS != nil {
		n, err := s.copyStatic(input)
		if err != nil {
			return ExportOutput{Error: err}
		}
		assets = n
	}

	written := 0
	for _, pg := range input.Pages {
		n, err := s.exportPage(ctx, pg, input)
		if err != nil {
			return ExportOutput{PagesWritten: written, AssetsWritten: assets, Error: err}
		}
		written += n
	}

	return ExportOutput{PagesWritten: written, AssetsWritten: assets}
}

func (s *ExportService) exportPage(ctx context.Context, pg ExportPage, input ExportInput) (int, error) {
	entries, err := s.pathEntries(ctx, pg)
	if err != nil {
		return 0, err
	}

	written := 0
	for _, entry := range entries {
		page, err := pg.Config.View(entry.Props)
		if err != nil {
			return written, fmt.Errorf("render %s: %w", entry.Path, err)
		}

		fullHTML := core.RenderDocument(page.Body, page.Head, input.CSSHref)

		outPath := core.OutputPathForRoute(input.OutputDir, entry.Path)
		if err := s.fs.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return written, fmt.Errorf("create dir for %s: %w", entry.Path, err)
		}
		if err := s.fs.WriteFile(outPath, []byte(fullHTML), 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", outPath, err)
		}

		s.cli.PrintFile(outPath)
		written++
	}

	return written, nil
}

// pathEntries expands a page into the concrete paths it renders at. A
// page without a StaticDataLoader exports at its route pattern alone.
func (s *ExportService) pathEntries(ctx context.Context, pg ExportPage) ([]core.StaticPathData, error) {
	if pg.Config.StaticDataLoader != nil {
		entries, err := pg.Config.StaticDataLoader(ctx)
		if err != nil {
			return nil, fmt.Errorf("load static data for %s: %w", pg.Pattern, err)
		}
		return entries, nil
	}

	path := PathForPattern(pg.Pattern)
	if strings.Contains(path, "{") {
		return nil, fmt.Errorf("route %s has path parameters and needs a static data loader", pg.Pattern)
	}

	return []core.StaticPathData{{Path: path, Props: map[string]any{}}}, nil
}

func (s *ExportService) copyStatic(input ExportInput) (int, error) {
	prefix := input.StaticPrefix
	if prefix == "" {
		prefix = "static"
	}

	count := 0
	err := iofs.WalkDir(input.StaticFS, ".", func(p string, d iofs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		data, err := iofs.ReadFile(input.StaticFS, p)
		if err != nil {
			return err
		}

		dst := filepath.Join(input.OutputDir, prefix, filepath.FromSlash(p))
		if err := s.fs.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		if err := s.fs.WriteFile(dst, data, 0o644); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("copy static assets: %w", err)
	}

	return count, nil
}

// PathForPattern strips ServeMux matching syntax from a route pattern,
// leaving the concrete URL path ("/{$}" serves "/").
func PathForPattern(pattern string) string {
	path := strings.TrimSuffix(pattern, "{$}")
	return core.NormalizePath(path)
}
