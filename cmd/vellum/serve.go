package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quiet-field/vellum/internal/logger"
	"github.com/quiet-field/vellum/site"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site locally",
	Long: `serve runs a local web server that renders pages on every request.
In dev mode (VELLUM_DEV=1) it also watches the site directory and
re-checks the content on change, so authoring mistakes surface on save.`,
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

		if dev {
			watcher, err := watchSite(log, func() {
				if checkErr := site.Check(appConfig, fsys, dev); checkErr != nil {
					log.Warnw("content check failed", "error", checkErr)
				} else {
					log.Infow("content ok")
				}
			})
			if err != nil {
				log.Warnw("file watching disabled", "error", err)
			} else {
				defer func() { _ = watcher.Close() }()
			}
		}

		port := servePort
		if port == 0 {
			port = appConfig.Port
		}
		addr := fmt.Sprintf(":%d", port)
		log.Infow("serving site", "addr", addr, "dev", dev)

		return http.ListenAndServe(addr, app.Handler())
	},
}

// watchSite watches the authored directories and calls onChange after a
// short debounce window.
func watchSite(log *zap.SugaredLogger, onChange func()) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	go func() {
		var timer *time.Timer
		const debounce = 500 * time.Millisecond

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
					!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
					continue
				}
				log.Debugw("change detected", "file", event.Name, "op", event.Op.String())

				if event.Has(fsnotify.Create) {
					if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
						_ = watcher.Add(event.Name)
					}
				}

				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounce, onChange)
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warnw("watcher error", "error", watchErr)
			}
		}
	}()

	for _, dir := range []string{
		filepath.Join(siteDir, appConfig.ContentDir),
		filepath.Join(siteDir, appConfig.DataDir),
		filepath.Join(siteDir, appConfig.StaticDir),
	} {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		walkErr := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				_ = watcher.Add(path)
			}
			return nil
		})
		if walkErr != nil {
			log.Warnw("watch setup incomplete", "dir", dir, "error", walkErr)
		}
	}

	return watcher, nil
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to serve on (default from config)")
	rootCmd.AddCommand(serveCmd)
}
