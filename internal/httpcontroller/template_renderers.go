package httpcontroller

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed views/*.html
var viewsFs embed.FS

// TemplateRenderer is a custom HTML template renderer for the Echo framework.
type TemplateRenderer struct {
	templates *template.Template
}

// Render renders a template with the given data. Output is buffered so a
// template execution error never produces a half-written response.
func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	var buf bytes.Buffer
	if err := t.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("executing template %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// setupTemplateRenderer parses the embedded views and installs the renderer.
func (s *Server) setupTemplateRenderer() {
	tmpl, err := template.New("").ParseFS(viewsFs, "views/*.html")
	if err != nil {
		s.Echo.Logger.Fatal(err)
	}
	s.Echo.Renderer = &TemplateRenderer{templates: tmpl}
}
