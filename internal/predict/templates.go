// internal/predict/templates.go
package predict

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// PageTemplate parses the embedded questionnaire page for the gin engine.
func PageTemplate() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))
}
