package web

import (
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
)

// Renderer adapts html/template page sets to echo's Renderer interface.
// Every page is parsed together with the shared layout and addressed as
// "<dir>/<file>", e.g. "tasks/index.html".
type Renderer struct {
	pages map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	// datetime renders an optional timestamp for display.
	"datetime": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("2006-01-02 15:04")
	},
	// inputtime renders an optional timestamp for a datetime-local input.
	"inputtime": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("2006-01-02T15:04")
	},
}

// NewRenderer parses layout.html plus every page template under dir.
func NewRenderer(dir string) (*Renderer, error) {
	layout := filepath.Join(dir, "layout.html")

	pages, err := filepath.Glob(filepath.Join(dir, "*", "*.html"))
	if err != nil {
		return nil, fmt.Errorf("glob templates: %w", err)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no page templates under %s", dir)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		name := filepath.ToSlash(filepath.Join(filepath.Base(filepath.Dir(page)), filepath.Base(page)))
		t, err := template.New("layout.html").Funcs(templateFuncs).ParseFiles(layout, page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}
