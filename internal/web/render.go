package web

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/hpungsan/caltrack/internal/activity"
	"github.com/hpungsan/caltrack/internal/errors"
	"github.com/hpungsan/caltrack/internal/ops"
	"github.com/hpungsan/caltrack/internal/tracker"
)

// PageData contains common fields used across all page templates.
type PageData struct {
	Title   string
	Version string
	Nav     string // active nav item: "tracker", "report"
}

// FormData is the entry form as rendered. It lives only for one request.
type FormData struct {
	Category activity.Category
	Name     string
	Calories string
}

// IndexPageData is the template data for the tracker page.
type IndexPageData struct {
	PageData
	Form       FormData
	Editing    bool
	ActiveID   string
	Items      []ops.ActivityItem
	Totals     tracker.Totals
	CanRestart bool
	Categories []activity.Category
	Error      string
}

// ReportPageData is the template data for the report page.
type ReportPageData struct {
	PageData
	RenderedHTML template.HTML
}

// ErrorPageData is the template data for the error page.
type ErrorPageData struct {
	PageData
	StatusCode int
	Message    string
}

// Renderer manages template parsing and rendering.
type Renderer struct {
	templates map[string]*template.Template
	version   string
}

// NewRenderer creates a Renderer by parsing templates from the given FS.
func NewRenderer(templateFS fs.FS, version string) *Renderer {
	funcMap := template.FuncMap{
		"formatKcal":    formatAnyKcal,
		"categoryClass": categoryClass,
		"isSelected":    func(a, b activity.Category) bool { return a == b },
	}

	// Parse layout as the base template
	layoutTmpl := template.Must(template.New("layout").Funcs(funcMap).ParseFS(templateFS, "layout.html"))

	pages := map[string]string{
		"index":  "index.html",
		"report": "report.html",
		"error":  "error.html",
	}

	templates := make(map[string]*template.Template, len(pages))
	for name, file := range pages {
		t := template.Must(layoutTmpl.Clone())
		template.Must(t.ParseFS(templateFS, file))
		templates[name] = t
	}

	return &Renderer{
		templates: templates,
		version:   version,
	}
}

// renderPage renders a named page template with the given data and HTTP 200 status.
func (r *Renderer) renderPage(w http.ResponseWriter, name string, data any) {
	r.renderPageStatus(w, http.StatusOK, name, data)
}

// renderPageStatus renders a named page template with the given data and HTTP status code.
func (r *Renderer) renderPageStatus(w http.ResponseWriter, status int, name string, data any) {
	t, ok := r.templates[name]
	if !ok {
		log.Printf("template %q not found", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Printf("template execution error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// renderError renders an error response with content negotiation.
func (r *Renderer) renderError(w http.ResponseWriter, req *http.Request, err error) {
	var cErr *errors.CaltrackError
	if !stderrors.As(err, &cErr) {
		cErr = errors.NewInternal(err)
	}

	status := cErr.Status
	message := cErr.Message
	if cErr.Code == errors.ErrInternal {
		log.Printf("internal error on %s %s: %v", req.Method, req.URL.Path, err)
		message = "internal error"
	}

	if wantsJSON(req) {
		renderJSON(w, status, map[string]any{
			"error": map[string]any{
				"code":    string(cErr.Code),
				"message": message,
				"status":  status,
			},
		})
		return
	}

	r.renderPageStatus(w, status, "error", ErrorPageData{
		PageData: PageData{
			Title:   fmt.Sprintf("Error %d", status),
			Version: r.version,
		},
		StatusCode: status,
		Message:    message,
	})
}

// wantsJSON reports whether the client asked for a JSON response.
func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// renderJSON writes a JSON response.
func renderJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// renderMarkdown converts markdown text to HTML using goldmark.
// Raw HTML in the source is not passed through.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

// formatKcal formats a calorie count with comma thousands separators.
func formatKcal(n int64) string {
	if n < 0 {
		return "-" + formatKcal(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// formatAnyKcal accepts the int and int64 counts used by templates.
func formatAnyKcal(v any) string {
	switch n := v.(type) {
	case int:
		return formatKcal(int64(n))
	case int64:
		return formatKcal(n)
	default:
		return fmt.Sprint(v)
	}
}

// categoryClass returns the CSS class that colors a list row.
func categoryClass(c activity.Category) string {
	switch c {
	case activity.Food:
		return "food"
	case activity.Exercise:
		return "exercise"
	default:
		return "unknown"
	}
}
