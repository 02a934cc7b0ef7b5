package site

import "embed"

// FS carries the authored site into the binary: blog content, the
// timeline data file, and static assets.
//
//go:embed content data static
var FS embed.FS
