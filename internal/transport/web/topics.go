package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/heartmarshall/learning-journal/internal/domain"
	"github.com/heartmarshall/learning-journal/internal/service/topic"
)

// Flash texts of the contributor workspace.
const (
	TopicCreatedMessage = "Topic created successfully!"
	TopicUpdatedMessage = "Topic updated and resubmitted for review!"
	TopicDeletedMessage = "Topic deleted successfully."
)

const dashboardPath = "/dashboard/"

type topicFormPage struct {
	IsNew      bool
	Topic      domain.Topic
	Input      topic.TopicInput
	Subjects   []domain.Subject
	References []domain.Reference
}

type dashboardBucket struct {
	Heading string
	Topics  []domain.Topic
}

// dashboardBuckets orders the sections so work needing attention comes first.
func dashboardBuckets(d domain.Dashboard) []dashboardBucket {
	return []dashboardBucket{
		{Heading: domain.TopicStatusRejected.Label(), Topics: d.Rejected},
		{Heading: "Drafts", Topics: d.Drafts},
		{Heading: domain.TopicStatusPending.Label(), Topics: d.Pending},
		{Heading: domain.TopicStatusPublished.Label(), Topics: d.Published},
	}
}

func editTopicPath(id int64) string { return fmt.Sprintf("/topic/%d/edit/", id) }

// Dashboard shows the actor's topics grouped by status.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.topics.Dashboard(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "dashboard", view{Title: "My Dashboard", Data: dashboardBuckets(d)})
}

// NewTopicPage renders an empty topic form.
func (h *Handler) NewTopicPage(w http.ResponseWriter, r *http.Request) {
	h.renderTopicForm(w, r, http.StatusOK, topicFormPage{
		IsNew: true,
		Input: topic.TopicInput{Difficulty: domain.DifficultyBeginner.String()},
	}, nil)
}

// CreateTopic saves a new draft.
func (h *Handler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	input := topicForm(r)

	if _, err := h.topics.CreateTopic(r.Context(), input); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			h.renderTopicForm(w, r, http.StatusUnprocessableEntity, topicFormPage{IsNew: true, Input: input}, ve)
			return
		}
		h.fail(w, r, err)
		return
	}
	h.flashRedirect(w, r, FlashSuccess, TopicCreatedMessage, dashboardPath)
}

// EditTopicPage renders the form for an existing topic.
func (h *Handler) EditTopicPage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	ev, err := h.topics.GetForEdit(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	t := ev.Topic
	h.renderTopicForm(w, r, http.StatusOK, topicFormPage{
		Topic: t,
		Input: topic.TopicInput{
			Title:      t.Title,
			Slug:       t.Slug,
			SubjectID:  t.SubjectID,
			Content:    t.Content,
			Difficulty: t.Difficulty.String(),
		},
		References: ev.References,
	}, nil)
}

// UpdateTopic saves the form. A rejected topic goes back to review; a
// draft is submitted when the "submit" button was used.
func (h *Handler) UpdateTopic(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !h.parseForm(w, r) {
		return
	}
	input := topicForm(r)
	submit := r.PostFormValue("submit") != ""

	if _, err := h.topics.UpdateTopic(r.Context(), id, input, submit); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			ev, loadErr := h.topics.GetForEdit(r.Context(), id)
			if loadErr != nil {
				h.fail(w, r, loadErr)
				return
			}
			h.renderTopicForm(w, r, http.StatusUnprocessableEntity, topicFormPage{
				Topic:      ev.Topic,
				Input:      input,
				References: ev.References,
			}, ve)
			return
		}
		h.fail(w, r, err)
		return
	}
	h.flashRedirect(w, r, FlashSuccess, TopicUpdatedMessage, dashboardPath)
}

// SubmitTopic sends a topic to the moderation queue.
func (h *Handler) SubmitTopic(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	t, err := h.topics.SubmitTopic(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.flashRedirect(w, r, FlashSuccess, fmt.Sprintf("'%s' was submitted for review.", t.Title), dashboardPath)
}

// DeleteTopic removes one of the actor's own topics.
func (h *Handler) DeleteTopic(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if _, err := h.topics.DeleteTopic(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.flashRedirect(w, r, FlashSuccess, TopicDeletedMessage, dashboardPath)
}

// AddReference attaches a citation and returns to the edit form.
func (h *Handler) AddReference(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !h.parseForm(w, r) {
		return
	}

	if _, err := h.topics.AddReference(r.Context(), id, referenceForm(r)); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			h.flashRedirect(w, r, FlashError, ve.Messages(), editTopicPath(id))
			return
		}
		h.fail(w, r, err)
		return
	}
	h.flashRedirect(w, r, FlashSuccess, "Reference added.", editTopicPath(id))
}

// DeleteReference removes a citation and returns to the edit form.
func (h *Handler) DeleteReference(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	refID, err := idParam(r, "ref")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.topics.DeleteReference(r.Context(), id, refID); err != nil {
		h.fail(w, r, err)
		return
	}
	h.flashRedirect(w, r, FlashSuccess, "Reference removed.", editTopicPath(id))
}

func (h *Handler) renderTopicForm(w http.ResponseWriter, r *http.Request, status int, page topicFormPage, ve *domain.ValidationError) {
	subjects, err := h.subjectChoices(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	page.Subjects = subjects

	title := "Create Topic"
	if !page.IsNew {
		title = "Edit Topic"
	}
	h.render(w, r, status, "topic_form", view{Title: title, Errors: ve, Data: page})
}
