package main

import (
	"github.com/spf13/cobra"

	"github.com/quiet-field/vellum/internal/adapters/cli"
	adapterfs "github.com/quiet-field/vellum/internal/adapters/fs"
	"github.com/quiet-field/vellum/internal/usecase"
)

var initTitle string

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Scaffold a new site",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		service := usecase.NewInitService(adapterfs.NewOSFileSystem(), cli.NewOutput())
		result := service.InitSite(usecase.InitInput{
			ProjectDir: dir,
			SiteTitle:  initTitle,
		})
		return result.Error
	},
}

func init() {
	initCmd.Flags().StringVar(&initTitle, "title", "", "site title for the starter config")
	rootCmd.AddCommand(initCmd)
}
