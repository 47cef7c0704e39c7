package web

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hpungsan/caltrack/internal/activity"
	"github.com/hpungsan/caltrack/internal/errors"
	"github.com/hpungsan/caltrack/internal/ops"
	"github.com/hpungsan/caltrack/internal/report"
	"github.com/hpungsan/caltrack/internal/session"
)

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	session  *session.Session
	renderer *Renderer
}

// HandleIndex handles GET / and renders the entry form, balance and list.
func (h *Handlers) HandleIndex(w http.ResponseWriter, r *http.Request) {
	item, editing := ops.Form(h.session)
	form := FormData{Category: item.Category, Name: item.Name}
	if editing {
		form.Calories = strconv.Itoa(item.Calories)
	}
	h.renderIndex(w, http.StatusOK, form, "")
}

// HandleSave handles POST /activities (entry form submit).
// With an activity selected this saves the edit, otherwise it adds a new entry.
func (h *Handlers) HandleSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	form := FormData{
		Name:     r.FormValue("name"),
		Calories: strings.TrimSpace(r.FormValue("calories")),
	}
	// Unparseable values fall through to the form rules as invalid.
	if c, err := activity.ParseCategory(r.FormValue("category")); err == nil {
		form.Category = c
	}
	calories, _ := strconv.Atoi(form.Calories)

	result, err := ops.Save(r.Context(), h.session, ops.SaveInput{
		Category: form.Category,
		Name:     form.Name,
		Calories: calories,
	})
	if err != nil {
		if errors.Is(err, errors.ErrInvalidActivity) && !wantsJSON(r) {
			h.renderIndex(w, http.StatusUnprocessableEntity, form, err.(*errors.CaltrackError).Message)
			return
		}
		h.renderer.renderError(w, r, err)
		return
	}

	if wantsJSON(r) {
		status := http.StatusOK
		if result.Created {
			status = http.StatusCreated
		}
		renderJSON(w, status, result)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleSelect handles POST /activities/{id}/edit by loading the activity into the form.
func (h *Handlers) HandleSelect(w http.ResponseWriter, r *http.Request) {
	result, err := ops.Select(r.Context(), h.session, ops.SelectInput{ID: r.PathValue("id")})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	h.done(w, r, result)
}

// HandleCancel handles POST /activities/cancel by leaving edit mode.
func (h *Handlers) HandleCancel(w http.ResponseWriter, r *http.Request) {
	result, err := ops.Select(r.Context(), h.session, ops.SelectInput{})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	h.done(w, r, result)
}

// HandleDelete handles POST /activities/{id}/delete.
func (h *Handlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("activity ID is required"))
		return
	}

	result, err := ops.Delete(r.Context(), h.session, ops.DeleteInput{ID: id})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	h.done(w, r, result)
}

// HandleRestart handles POST /restart by discarding every activity.
func (h *Handlers) HandleRestart(w http.ResponseWriter, r *http.Request) {
	result, err := ops.Restart(r.Context(), h.session)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	h.done(w, r, result)
}

// HandleSummary handles GET /summary with the calorie balance as JSON.
func (h *Handlers) HandleSummary(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, ops.Summary(h.session))
}

// HandleReport handles GET /report with the markdown report rendered to HTML.
func (h *Handlers) HandleReport(w http.ResponseWriter, r *http.Request) {
	md := report.Markdown(h.session.Snapshot(), time.Now())

	if r.URL.Query().Get("format") == "markdown" {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(md))
		return
	}

	h.renderer.renderPage(w, "report", ReportPageData{
		PageData: PageData{
			Title:   "Report",
			Version: h.renderer.version,
			Nav:     "report",
		},
		RenderedHTML: renderMarkdown(md),
	})
}

// done finishes a state-changing request: JSON for API clients, otherwise
// a redirect back to the tracker page.
func (h *Handlers) done(w http.ResponseWriter, r *http.Request, result any) {
	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, result)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) renderIndex(w http.ResponseWriter, status int, form FormData, errMsg string) {
	list := ops.List(h.session, ops.ListInput{})

	h.renderer.renderPageStatus(w, status, "index", IndexPageData{
		PageData: PageData{
			Title:   "Tracker",
			Version: h.renderer.version,
			Nav:     "tracker",
		},
		Form:       form,
		Editing:    list.ActiveID != "",
		ActiveID:   list.ActiveID,
		Items:      list.Items,
		Totals:     list.Totals,
		CanRestart: list.CanRestart,
		Categories: activity.Categories,
		Error:      errMsg,
	})
}
