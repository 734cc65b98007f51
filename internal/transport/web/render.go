package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gorilla/csrf"

	"github.com/heartmarshall/learning-journal/internal/domain"
	"github.com/heartmarshall/learning-journal/internal/transport/middleware"
	"github.com/heartmarshall/learning-journal/pkg/htmlsanitize"
)

//go:embed templates
var templateFS embed.FS

const excerptLength = 180

// view is the data every page template receives.
type view struct {
	Title       string
	Actor       domain.Actor
	NavSubjects []domain.Subject
	Flashes     []Flash
	CSRFField   template.HTML
	Path        string

	// Errors holds field errors of a re-rendered form.
	Errors *domain.ValidationError
	Data   any
}

// FieldError returns the message for field, or "".
func (v view) FieldError(field string) string {
	if v.Errors == nil {
		return ""
	}
	return v.Errors.Field(field)
}

type renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"content": htmlsanitize.PrepareForDisplay,
	"excerpt": func(s string) string { return htmlsanitize.Excerpt(s, excerptLength) },
	"date":    func(t time.Time) string { return t.Format("Jan 2, 2006") },
	"datetime": func(t time.Time) string {
		return t.Format("Jan 2, 2006 15:04")
	},
	"loginURL":        middleware.LoginURL,
	"roles":           domain.AllRoles,
	"difficulties":    domain.AllDifficulties,
	"projectStatuses": domain.AllProjectStatuses,
	"deref":           deref,
}

// newRenderer parses each page under templates/pages together with the
// layout and partials.
func newRenderer() (*renderer, error) {
	pages, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("web: list templates: %w", err)
	}

	r := &renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, p := range pages {
		name := strings.TrimSuffix(path.Base(p), ".html")
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/partials/*.html",
			p,
		)
		if err != nil {
			return nil, fmt.Errorf("web: parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// render executes page into a buffer and writes it with status. The common
// view fields are filled from the request.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, v view) {
	t, ok := h.views.pages[page]
	if !ok {
		h.log.ErrorContext(r.Context(), "unknown template", slog.String("page", page))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	ctx := r.Context()
	v.Actor = domain.ActorFromCtx(ctx)
	v.CSRFField = csrf.TemplateField(r)
	v.Path = r.URL.Path
	if nav, err := h.taxonomy.NavSubjects(ctx); err != nil {
		h.log.WarnContext(ctx, "load navigation", slog.String("error", err.Error()))
	} else {
		v.NavSubjects = nav
	}
	// Popping flashes rewrites the cookie, so it must precede WriteHeader.
	v.Flashes = h.sessions.Flashes(w, r)

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", v); err != nil {
		h.log.ErrorContext(ctx, "render template",
			slog.String("page", page),
			slog.String("error", err.Error()),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w) //nolint:errcheck
}
