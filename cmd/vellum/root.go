package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/quiet-field/vellum/internal/adapters/env"
	"github.com/quiet-field/vellum/internal/config"
	"github.com/quiet-field/vellum/internal/core"
	"github.com/quiet-field/vellum/site"
)

// siteDir is where the authored site lives in the working tree. Dev mode
// reads it from disk; everything else uses the embedded copy.
const siteDir = "site"

var (
	cfgFile   string
	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "vellum",
	Short: "vellum renders this site",
	Long: `vellum builds and serves a personal website: a timeline page and a
Markdown blog, rendered by pure view functions and exported as static HTML.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		appConfig = cfg
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./vellum.yaml)")
}

func isDev() bool {
	return env.DetectMode() == core.ModeDev
}

// siteFS picks the content source: the working tree in dev, the
// embedded copy otherwise.
func siteFS(dev bool) (fs.FS, error) {
	if dev {
		if _, err := os.Stat(siteDir); err != nil {
			return nil, fmt.Errorf("dev mode needs the %s directory in the working tree: %w", siteDir, err)
		}
		return os.DirFS(siteDir), nil
	}
	return site.FS, nil
}
