// Package blog holds the post model and the article and listing
// renderers. Posts are read-only presentation data: the loader builds
// them once and rendering never mutates them.
package blog

import (
	"html/template"
	"time"
)

// Post is a blog document: front-matter plus the converted body.
type Post struct {
	Slug        string
	Title       string
	Description string
	PubDate     time.Time

	// UpdatedDate is optional; when set the article shows a "last
	// updated" notice.
	UpdatedDate *time.Time

	// HeroImage is optional; when empty no image block is rendered.
	HeroImage string

	Draft bool

	// Body is the converted document content, inserted verbatim.
	Body template.HTML
}

// Permalink is the canonical path the post is served and exported at.
func (p Post) Permalink() string {
	return "/blog/" + p.Slug
}
