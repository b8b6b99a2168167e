// Package render turns a dashboard.Result into the HTML job board page.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"jobpulse/internal/dashboard"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// DayOptions are the recency windows offered in the filter form.
var DayOptions = []int{1, 3, 7, 30}

type Page struct {
	Title      string
	Result     dashboard.Result
	DayOptions []int
	StoreSize  int
	RequestID  string
}

type Renderer struct {
	title string
	tmpl  *template.Template
}

func New(title string) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/dashboard.html")
	if err != nil {
		return nil, fmt.Errorf("parse dashboard template: %w", err)
	}
	if title == "" {
		title = "JobPulse"
	}
	return &Renderer{title: title, tmpl: tmpl}, nil
}

// Dashboard executes the page into a buffer first so a template error never
// leaves a half-written response behind.
func (r *Renderer) Dashboard(w io.Writer, res dashboard.Result, storeSize int, requestID string) error {
	page := Page{
		Title:      r.title,
		Result:     res,
		DayOptions: DayOptions,
		StoreSize:  storeSize,
		RequestID:  requestID,
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "dashboard.html", page); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Static serves the embedded CSS under whatever prefix the caller strips.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// embed guarantees the directory exists
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
