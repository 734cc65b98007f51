package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

// Home lists published topics, newest first.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	topics, err := h.catalog.Home(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "home", view{Title: "Learning Journal", Data: topics})
}

// Search matches published topics by title or content.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalog.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "search", view{Title: "Search", Data: result})
}

// SubjectTopics lists the published topics of a subject.
func (h *Handler) SubjectTopics(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalog.SubjectTopics(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "subject", view{Title: page.Subject.Name, Data: page})
}

// TopicDetail shows a published topic with its sidebar and neighbours.
func (h *Handler) TopicDetail(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalog.TopicPage(r.Context(), chi.URLParam(r, "slug"), chi.URLParam(r, "topic"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "topic", view{Title: page.Topic.Title, Data: page})
}

// subjectChoices is the active subject list offered by the topic and
// project forms.
func (h *Handler) subjectChoices(r *http.Request) ([]domain.Subject, error) {
	return h.taxonomy.NavSubjects(r.Context())
}
