package core

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/", "/"},
		{"", "/"},
		{"/blog", "/blog"},
		{"/blog/", "/blog"},
		{"blog/hello", "/blog/hello"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePath(tt.in), "input %q", tt.in)
	}
}

func TestValidateRoutePath(t *testing.T) {
	assert.NoError(t, ValidateRoutePath("/blog"))

	for _, bad := range []string{"", "blog", "/a?b=1", "/a#frag", "/../etc"} {
		assert.Error(t, ValidateRoutePath(bad), "input %q", bad)
	}
}

func TestOutputPathForRoute(t *testing.T) {
	assert.Equal(t, filepath.Join("public", "index.html"), OutputPathForRoute("public", "/"))
	assert.Equal(t, filepath.Join("public", "blog", "index.html"), OutputPathForRoute("public", "/blog"))
	assert.Equal(t, filepath.Join("public", "blog", "hello", "index.html"), OutputPathForRoute("public", "/blog/hello/"))
}

func TestSlugFromFile(t *testing.T) {
	assert.Equal(t, "hello-world", SlugFromFile("content/blog/hello-world.md"))
	assert.Equal(t, "post", SlugFromFile("post.mdx"))
}
