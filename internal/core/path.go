package core

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// NormalizePath canonicalizes a URL path for route matching: leading
// slash required, trailing slash stripped except at the root.
func NormalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if p != "/" && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

func ValidateRoutePath(p string) error {
	if p == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("path must start with /")
	}

	if strings.Contains(p, "?") {
		return fmt.Errorf("path cannot contain query string")
	}

	if strings.Contains(p, "#") {
		return fmt.Errorf("path cannot contain fragment")
	}

	if strings.Contains(p, "..") {
		return fmt.Errorf("path cannot contain parent directory references")
	}

	return nil
}

// OutputPathForRoute maps a page path to the file the static export
// writes: "/" becomes index.html at the output root, "/blog/hello"
// becomes blog/hello/index.html.
func OutputPathForRoute(outputDir, routePath string) string {
	routePath = NormalizePath(routePath)
	if routePath == "/" {
		return filepath.Join(outputDir, "index.html")
	}
	return filepath.Join(outputDir, filepath.FromSlash(strings.TrimPrefix(routePath, "/")), "index.html")
}

// SlugFromFile derives a URL slug from a content file path: the base
// name without its extension.
func SlugFromFile(file string) string {
	base := path.Base(filepath.ToSlash(file))
	return strings.TrimSuffix(base, path.Ext(base))
}
