package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/MKhiriev/go-posts-client/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Page is everything the HTML page shows.
type Page struct {
	Config     models.ClientConfig
	View       View
	State      models.ViewState
	Alert      string
	SortFields []models.SortField
	Directions []models.SortDirection
}

// NewPage assembles a [Page] with the selectable sort fields and directions.
func NewPage(cfg models.ClientConfig, view View, state models.ViewState, alert string) Page {
	return Page{
		Config:     cfg,
		View:       view,
		State:      state,
		Alert:      alert,
		SortFields: models.SortFields,
		Directions: []models.SortDirection{models.SortAsc, models.SortDesc},
	}
}

var functions = template.FuncMap{
	"sortLabel": func(f models.SortField) string {
		if f == models.SortNone {
			return "No sorting"
		}
		return "Sort by " + string(f)
	},
}

// HTMLRenderer executes the embedded page template. Post titles and contents
// only ever reach the output through html/template actions, so they are
// escaped for their context.
type HTMLRenderer struct {
	tmpl *template.Template
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.New("").Funcs(functions).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}

	return &HTMLRenderer{tmpl: tmpl}, nil
}

// Render writes the page to w. Output is buffered so a failing template never
// produces a half-written page.
func (r *HTMLRenderer) Render(w io.Writer, page Page) error {
	buf := new(bytes.Buffer)
	if err := r.tmpl.ExecuteTemplate(buf, "page", page); err != nil {
		return fmt.Errorf("error executing page template: %w", err)
	}

	_, err := buf.WriteTo(w)
	return err
}

// StaticFS returns the embedded stylesheet directory.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
