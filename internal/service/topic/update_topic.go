package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

// UpdateTopic edits a topic. The author or a moderator may save; a rejected
// topic goes back to pending on save. With submit set, the author's draft is
// also submitted for review. The slug never changes.
func (s *Service) UpdateTopic(ctx context.Context, id int64, input TopicInput, submit bool) (*domain.Topic, error) {
	actor := domain.ActorFromCtx(ctx)
	if err := domain.Authorize(actor, domain.ContributorRoles...); err != nil {
		return nil, err
	}

	var updated *domain.Topic
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.topics.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if !domain.CanEdit(*current, actor) {
			return domain.ErrNotOwner
		}

		input.normalize()
		if err := input.Validate(); err != nil {
			return err
		}
		if input.SubjectID != current.SubjectID {
			if err := s.checkSubject(txCtx, input.SubjectID); err != nil {
				return err
			}
		}

		edited := *current
		edited.Title = input.Title
		edited.SubjectID = input.SubjectID
		edited.Content = input.Content
		if input.Difficulty != "" {
			edited.Difficulty = domain.Difficulty(input.Difficulty)
		}

		next, err := domain.Transition(edited, domain.ActionSave, actor, domain.TransitionPayload{})
		if err != nil {
			return err
		}
		action := domain.AuditActionUpdate
		if submit && next.Status == domain.TopicStatusDraft && next.IsAuthoredBy(actor.UserID) {
			if next, err = domain.Transition(next, domain.ActionSubmit, actor, domain.TransitionPayload{}); err != nil {
				return err
			}
			action = domain.AuditActionSubmit
		}

		updated, err = s.topics.Update(txCtx, next)
		if err != nil {
			return fmt.Errorf("update topic: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.UserID,
			EntityType: domain.EntityTypeTopic,
			EntityID:   id,
			Action:     action,
			Changes:    topicChanges(*current, *updated),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("topic.UpdateTopic: %w", err)
	}

	s.log.InfoContext(ctx, "topic updated",
		slog.Int64("user_id", actor.UserID),
		slog.Int64("topic_id", id),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}

// SubmitTopic sends the author's topic to the moderation queue.
func (s *Service) SubmitTopic(ctx context.Context, id int64) (*domain.Topic, error) {
	actor := domain.ActorFromCtx(ctx)
	if err := domain.Authorize(actor, domain.ContributorRoles...); err != nil {
		return nil, err
	}

	var submitted *domain.Topic
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.topics.FindByID(txCtx, id)
		if err != nil {
			return err
		}

		next, err := domain.Transition(*current, domain.ActionSubmit, actor, domain.TransitionPayload{})
		if err != nil {
			return err
		}

		submitted, err = s.topics.Update(txCtx, next)
		if err != nil {
			return fmt.Errorf("update topic: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.UserID,
			EntityType: domain.EntityTypeTopic,
			EntityID:   id,
			Action:     domain.AuditActionSubmit,
			Changes:    topicChanges(*current, *submitted),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("topic.SubmitTopic: %w", err)
	}

	s.log.InfoContext(ctx, "topic submitted",
		slog.Int64("user_id", actor.UserID),
		slog.Int64("topic_id", id),
	)

	return submitted, nil
}
