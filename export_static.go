package vellum

import (
	"context"
	"fmt"

	"github.com/quiet-field/vellum/internal/adapters/cli"
	adapterfs "github.com/quiet-field/vellum/internal/adapters/fs"
	"github.com/quiet-field/vellum/internal/usecase"
)

// ExportStatic renders every route to outputDir, producing the
// deployable tree: one index.html per page path plus the static assets
// under static/.
func (a *App) ExportStatic(ctx context.Context, outputDir string) error {
	pages := make([]usecase.ExportPage, 0, len(a.routes))
	for _, route := range a.routes {
		pages = append(pages, usecase.ExportPage{
			Pattern: route.Pattern,
			Config:  buildPageConfig(route),
		})
	}

	output := cli.NewOutput()
	service := usecase.NewExportService(adapterfs.NewOSFileSystem(), output)

	result := service.ExportSite(ctx, usecase.ExportInput{
		Pages:     pages,
		OutputDir: outputDir,
		CSSHref:   a.stylesheet,
		StaticFS:  a.staticFS,
	})
	if result.Error != nil {
		return fmt.Errorf("export site: %w", result.Error)
	}

	output.PrintSuccess("Exported %d pages and %d assets to %s", result.PagesWritten, result.AssetsWritten, outputDir)
	return nil
}
