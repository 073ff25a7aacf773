package httpapi

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/sufield/prdash/internal/app"
	"github.com/sufield/prdash/internal/domain"
	"github.com/sufield/prdash/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageDashboard = "dashboard.html"
	pageLogin     = "login.html"
)

// pageData is what the HTML templates receive.
type pageData struct {
	Session domain.Session
	Pulls   []domain.PullRequest
	Error   string
	Options app.ListOptions
	Count   int
}

type pages struct {
	tmpl *template.Template
}

func loadPages() (*pages, error) {
	tmpl, err := template.New("prdash").Funcs(template.FuncMap{
		"when":      formatTimestamp,
		"sortQuery": sortQuery,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &pages{tmpl: tmpl}, nil
}

// render executes into a buffer first so a template failure still yields a
// clean 500 instead of a half-written page.
func (p *pages) render(w http.ResponseWriter, status int, name string, data pageData) {
	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		logging.Logger.Error("failed to render page", "page", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Logger.Error("failed to encode response", "error", err)
	}
}

func formatTimestamp(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.UTC().Format("2006-01-02 15:04")
}

// sortQuery builds the query string of a column header link. Clicking the
// active column flips its order; filters carry over.
func sortQuery(o app.ListOptions, field string) string {
	order := app.OrderDesc
	if string(o.SortBy) == field && o.Order != app.OrderAsc {
		order = app.OrderAsc
	}
	v := url.Values{}
	v.Set("sort", field)
	v.Set("order", string(order))
	if o.Query != "" {
		v.Set("q", o.Query)
	}
	if o.Status != "" {
		v.Set("status", string(o.Status))
	}
	if o.Review != "" {
		v.Set("review", o.Review)
	}
	if o.Draft != "" {
		v.Set("draft", string(o.Draft))
	}
	if o.Repo != "" {
		v.Set("repo", o.Repo)
	}
	return "?" + v.Encode()
}
