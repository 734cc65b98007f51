package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

const moderationPath = "/moderate/"

func reviewPath(id int64) string { return fmt.Sprintf("/moderate/review/%d/", id) }

// ModerationQueue lists topics awaiting review.
func (h *Handler) ModerationQueue(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topics.ModerationQueue(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "moderation_queue", view{Title: "Moderation Queue", Data: topics})
}

// ReviewTopic shows a pending topic in full.
func (h *Handler) ReviewTopic(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	review, err := h.topics.ReviewTopic(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "moderation_review", view{Title: "Review: " + review.Topic.Title, Data: review})
}

// ApproveTopic publishes a pending topic.
func (h *Handler) ApproveTopic(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	t, err := h.topics.ApproveTopic(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.flashRedirect(w, r, FlashSuccess, fmt.Sprintf("'%s' is now live on the platform!", t.Title), moderationPath)
}

// RejectTopic returns a pending topic to its author with feedback. Without
// feedback nothing changes and the moderator is sent back to the review.
func (h *Handler) RejectTopic(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !h.parseForm(w, r) {
		return
	}

	t, err := h.topics.RejectTopic(r.Context(), id, r.PostFormValue("feedback"))
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			h.flashRedirect(w, r, FlashError, ve.Messages(), reviewPath(id))
			return
		}
		h.fail(w, r, err)
		return
	}
	h.flashRedirect(w, r, FlashWarning, fmt.Sprintf("Changes requested for '%s'.", t.Title), moderationPath)
}
