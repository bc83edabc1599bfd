package web

import (
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

// Renderer implements echo.Renderer over a parsed template set.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses every template matching glob, usually
// "web/templates/*.tmpl".
func NewRenderer(glob string) (*Renderer, error) {
	templates, err := template.ParseGlob(glob)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: templates}, nil
}

// Render writes the named template with the given data.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// viewData is the shape every page template receives.
type viewData struct {
	Title     string
	LoggedIn  bool
	Deals     interface{}
	Vouchers  interface{}
	Merchants interface{}
	User      interface{}
	Form      interface{}
}
