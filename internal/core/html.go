package core

import (
	"fmt"
	"strings"
)

// RenderDocument wraps a rendered body fragment in the outer HTML
// document. headHTML comes from the view (title, meta tags) and is
// inserted verbatim; a default title is supplied only when the view did
// not emit one.
func RenderDocument(bodyHTML string, headHTML string, cssHref string) string {
	title := "Vellum"
	if headHTML != "" && strings.Contains(strings.ToLower(headHTML), "<title") {
		title = ""
	}

	head := `<meta charset="UTF-8" /><meta name="viewport" content="width=device-width, initial-scale=1.0" />`
	if title != "" {
		head += fmt.Sprintf("<title>%s</title>", title)
	}
	if headHTML != "" {
		head += headHTML
	}
	if cssHref != "" {
		head += fmt.Sprintf(`<link rel="stylesheet" href="%s" />`, cssHref)
	}

	return fmt.Sprintf(`<!doctype html>
<html lang="en">
  <head>
    %s
  </head>
  <body>
    <main id="app">%s</main>
  </body>
</html>
`, head, bodyHTML)
}
