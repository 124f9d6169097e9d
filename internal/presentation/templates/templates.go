// Package templates renders the server-side public pages from embedded
// html/template files.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed *.tmpl
var files embed.FS

var pages = template.Must(template.New("site").Funcs(template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
}).ParseFS(files, "*.tmpl"))

// Render writes a named page template with its data.
func Render(w io.Writer, name string, data any) error {
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}
