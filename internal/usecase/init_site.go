package usecase

import (
	"fmt"
	"path/filepath"
)

type InitInput struct {
	ProjectDir string
	SiteTitle  string
}

type InitOutput struct {
	FilesWritten []string
	Error        error
}

// InitService scaffolds a fresh site: content, data, and static
// directories plus a starter config, post, and timeline.
type InitService struct {
	fs  FileSystem
	cli CLIOutput
}

func NewInitService(fs FileSystem, cli CLIOutput) *InitService {
	return &InitService{
		fs:  fs,
		cli: cli,
	}
}

func (s *InitService) InitSite(input InitInput) InitOutput {
	s.cli.PrintHeader("Vellum Init")

	if s.fs.FileExists(input.ProjectDir) {
		entries, err := s.fs.ReadDir(input.ProjectDir)
		if err != nil {
			return InitOutput{Error: fmt.Errorf("read directory: %w", err)}
		}
		if len(entries) > 0 {
			return InitOutput{Error: fmt.Errorf("directory %s is not empty", input.ProjectDir)}
		}
	}

	title := input.SiteTitle
	if title == "" {
		title = "My Site"
	}

	files := map[string]string{
		"vellum.yaml":                starterConfig(title),
		"content/blog/first-post.md": starterPost,
		"data/timeline.yaml":         starterTimeline,
		"static/css/site.css":        starterStylesheet,
	}

	var written []string
	for rel, body := range files {
		dst := filepath.Join(input.ProjectDir, filepath.FromSlash(rel))
		if err := s.fs.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return InitOutput{FilesWritten: written, Error: fmt.Errorf("create %s: %w", filepath.Dir(dst), err)}
		}
		if err := s.fs.WriteFile(dst, []byte(body), 0o644); err != nil {
			return InitOutput{FilesWritten: written, Error: fmt.Errorf("write %s: %w", dst, err)}
		}
		written = append(written, dst)
		s.cli.PrintFile(dst)
	}

	s.cli.PrintSuccess("Site initialized")
	return InitOutput{FilesWritten: written}
}

func starterConfig(title string) string {
	return fmt.Sprintf(`site_title: %q
site_description: ""
content_dir: content
data_dir: data
static_dir: static
output_dir: public
stylesheet: /static/css/site.css
log_level: info
port: 1414
`, title)
}

const starterPost = `---
title: "Hello, world"
description: "The first post."
pubDate: "2025-01-01"
---

Welcome to your new site. Edit this file to get started.
`

const starterTimeline = `entries:
  - start: "2025-01"
    title: "Your Role"
    company: "Your Company"
    description: "What you do there."
`

const starterStylesheet = `body {
  font-family: system-ui, sans-serif;
  max-width: 720px;
  margin: 2rem auto;
  padding: 0 1rem;
  line-height: 1.6;
}
`
