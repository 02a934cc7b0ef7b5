package main

import (
	"github.com/spf13/cobra"

	"github.com/quiet-field/vellum/internal/logger"
	"github.com/quiet-field/vellum/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the site as a static HTML tree",
	Long: `build renders every page of the site and writes the result to the
configured output directory, along with the static assets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logger.Init(appConfig.LogLevel)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Close() }()

		dev := isDev()
		fsys, err := siteFS(dev)
		if err != nil {
			return err
		}

		app, err := site.New(appConfig, fsys, dev)
		if err != nil {
			return err
		}

		log.Infow("exporting site", "output_dir", appConfig.OutputDir, "dev", dev)
		if err := app.ExportStatic(cmd.Context(), appConfig.OutputDir); err != nil {
			return err
		}
		log.Infow("export complete", "output_dir", appConfig.OutputDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
