package domain

import "strings"

// TopicAction is an operation in the topic lifecycle.
type TopicAction string

const (
	ActionCreate  TopicAction = "create"
	ActionSave    TopicAction = "save"
	ActionSubmit  TopicAction = "submit"
	ActionApprove TopicAction = "approve"
	ActionReject  TopicAction = "reject"
	ActionDelete  TopicAction = "delete"
)

func (a TopicAction) String() string { return string(a) }

// TransitionPayload carries action-specific input.
type TransitionPayload struct {
	// Feedback is required by ActionReject and becomes the rejection notes.
	Feedback string
	// Slug optionally overrides the title-derived slug on ActionCreate.
	Slug string
}

// FeedbackRequiredMessage is shown when a rejection has no feedback.
const FeedbackRequiredMessage = "Please provide feedback before requesting changes."

// Transition applies action to topic on behalf of actor and returns the
// resulting topic. The input is never modified. Rules:
//
//	(new)                   create   contributor+        -> draft
//	draft/pending/published save     author or moderator -> unchanged
//	rejected                save     author or moderator -> pending
//	draft/pending/rejected  submit   author              -> pending
//	pending                 approve  moderator+          -> published, notes cleared
//	pending                 reject   moderator+          -> rejected, notes = feedback
//	any                     delete   author              -> unchanged (caller removes it)
//
// Role failures return ErrUnauthorized or ErrForbidden, ownership failures
// ErrNotOwner, status failures *TransitionError, and an empty reject
// feedback a *ValidationError.
func Transition(topic Topic, action TopicAction, actor Actor, p TransitionPayload) (Topic, error) {
	next := topic

	switch action {
	case ActionCreate:
		if err := Authorize(actor, ContributorRoles...); err != nil {
			return topic, err
		}
		if topic.Status != "" || topic.ID != 0 {
			return topic, &TransitionError{From: topic.Status, Action: action}
		}
		next.Status = TopicStatusDraft
		next.AuthorID = actor.UserID
		next.RejectionNotes = ""
		next.Slug = AssignSlug(topic.Slug, p.Slug, topic.Title)
		if next.Difficulty == "" {
			next.Difficulty = DifficultyBeginner
		}

	case ActionSave:
		if err := canEdit(topic, actor); err != nil {
			return topic, err
		}
		if topic.Status == TopicStatusRejected {
			next.Status = TopicStatusPending
		}

	case ActionSubmit:
		if err := Authorize(actor, ContributorRoles...); err != nil {
			return topic, err
		}
		if !topic.IsAuthoredBy(actor.UserID) {
			return topic, ErrNotOwner
		}
		switch topic.Status {
		case TopicStatusDraft, TopicStatusPending, TopicStatusRejected:
			next.Status = TopicStatusPending
		default:
			return topic, &TransitionError{From: topic.Status, Action: action}
		}

	case ActionApprove:
		if err := Authorize(actor, ModeratorRoles...); err != nil {
			return topic, err
		}
		if topic.Status != TopicStatusPending {
			return topic, &TransitionError{From: topic.Status, Action: action}
		}
		next.Status = TopicStatusPublished
		next.RejectionNotes = ""

	case ActionReject:
		if err := Authorize(actor, ModeratorRoles...); err != nil {
			return topic, err
		}
		if topic.Status != TopicStatusPending {
			return topic, &TransitionError{From: topic.Status, Action: action}
		}
		feedback := strings.TrimSpace(p.Feedback)
		if feedback == "" {
			return topic, NewValidationError("feedback", FeedbackRequiredMessage)
		}
		next.Status = TopicStatusRejected
		next.RejectionNotes = feedback

	case ActionDelete:
		if !actor.IsAuthenticated() {
			return topic, ErrUnauthorized
		}
		if !topic.IsAuthoredBy(actor.UserID) {
			return topic, ErrNotOwner
		}

	default:
		return topic, &TransitionError{From: topic.Status, Action: action}
	}

	return next, nil
}

// CanEdit reports whether actor may change the topic's fields.
func CanEdit(topic Topic, actor Actor) bool {
	return canEdit(topic, actor) == nil
}

func canEdit(topic Topic, actor Actor) error {
	if err := Authorize(actor, ContributorRoles...); err != nil {
		return err
	}
	if topic.IsAuthoredBy(actor.UserID) || actor.IsModerator() {
		return nil
	}
	return ErrNotOwner
}
