package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/learning-journal/internal/domain"
	"github.com/heartmarshall/learning-journal/internal/transport/middleware"
)

// UnauthorizedAccessMessage is flashed when someone edits content they do
// not own.
const UnauthorizedAccessMessage = "Unauthorized access."

type errorPage struct {
	Status  int
	Heading string
	Message string
}

// fail maps a service error to a response. Validation errors that reach
// here have no form to return to and are shown as a 422 page.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.notFound(w, r)
	case errors.Is(err, domain.ErrUnauthorized):
		next := ""
		if r.Method == http.MethodGet {
			next = r.URL.RequestURI()
		}
		http.Redirect(w, r, middleware.LoginURL(next), http.StatusSeeOther)
	case errors.Is(err, domain.ErrNotOwner):
		h.sessions.AddFlash(w, r, FlashError, UnauthorizedAccessMessage)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case errors.Is(err, domain.ErrForbidden):
		h.forbidden(w, r)
	case errors.As(err, &ve):
		h.render(w, r, http.StatusUnprocessableEntity, "error", view{
			Title: "Invalid request",
			Data:  errorPage{Status: http.StatusUnprocessableEntity, Heading: "Invalid request", Message: ve.Messages()},
		})
	case errors.Is(err, domain.ErrConflict):
		h.render(w, r, http.StatusConflict, "error", view{
			Title: "Action not available",
			Data: errorPage{
				Status:  http.StatusConflict,
				Heading: "Action not available",
				Message: "This action is not available in the topic's current state.",
			},
		})
	default:
		h.log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		h.render(w, r, http.StatusInternalServerError, "error", view{
			Title: "Server error",
			Data: errorPage{
				Status:  http.StatusInternalServerError,
				Heading: "Something went wrong",
				Message: "The server hit an error. Please try again later.",
			},
		})
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "error", view{
		Title: "Page not found",
		Data: errorPage{
			Status:  http.StatusNotFound,
			Heading: "Page not found",
			Message: "The page you are looking for does not exist or is not published yet.",
		},
	})
}

func (h *Handler) forbidden(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusForbidden, "error", view{
		Title: "Access denied",
		Data: errorPage{
			Status:  http.StatusForbidden,
			Heading: "Access denied",
			Message: "Your account does not have permission to view this page.",
		},
	})
}

// idParam parses a positive integer URL parameter. Anything else is
// reported as not found.
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrNotFound
	}
	return id, nil
}

// formInt parses an optional integer form field; blanks and garbage read as
// zero and are left to input validation.
func formInt(r *http.Request, name string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(r.PostFormValue(name)), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// formBool reads a checkbox.
func formBool(r *http.Request, name string) bool {
	switch r.PostFormValue(name) {
	case "on", "true", "1":
		return true
	}
	return false
}

// safeNext returns target when it is a local path, else "/".
func safeNext(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	u, err := url.Parse(target)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/"
	}
	return target
}

func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handler) flashRedirect(w http.ResponseWriter, r *http.Request, level, message, target string) {
	h.sessions.AddFlash(w, r, level, message)
	h.redirect(w, r, target)
}
