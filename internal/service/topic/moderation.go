package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

// Review is the moderator's view of a pending topic.
type Review struct {
	Topic      domain.Topic
	References []domain.Reference
	History    []domain.AuditRecord
}

// ModerationQueue lists pending topics, newest first.
func (s *Service) ModerationQueue(ctx context.Context) ([]domain.Topic, error) {
	if err := domain.Authorize(domain.ActorFromCtx(ctx), domain.ModeratorRoles...); err != nil {
		return nil, err
	}

	topics, err := s.topics.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("topic.ModerationQueue: %w", err)
	}
	return topics, nil
}

// ReviewTopic loads a pending topic with its references and audit history.
// Topics in any other status are not found.
func (s *Service) ReviewTopic(ctx context.Context, id int64) (*Review, error) {
	if err := domain.Authorize(domain.ActorFromCtx(ctx), domain.ModeratorRoles...); err != nil {
		return nil, err
	}

	t, err := s.topics.FindPendingByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("topic.ReviewTopic: %w", err)
	}

	refs, err := s.topics.ListReferences(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("topic.ReviewTopic references: %w", err)
	}

	history, err := s.audit.ListByEntity(ctx, domain.EntityTypeTopic, id, ReviewHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("topic.ReviewTopic history: %w", err)
	}

	return &Review{Topic: *t, References: refs, History: history}, nil
}

// ApproveTopic publishes a pending topic and clears its rejection notes.
func (s *Service) ApproveTopic(ctx context.Context, id int64) (*domain.Topic, error) {
	actor := domain.ActorFromCtx(ctx)
	if err := domain.Authorize(actor, domain.ModeratorRoles...); err != nil {
		return nil, err
	}

	published, err := s.moderate(ctx, id, actor, domain.ActionApprove, domain.TransitionPayload{})
	if err != nil {
		return nil, fmt.Errorf("topic.ApproveTopic: %w", err)
	}

	s.log.InfoContext(ctx, "topic approved",
		slog.Int64("moderator_id", actor.UserID),
		slog.Int64("topic_id", id),
	)

	return published, nil
}

// RejectTopic returns a pending topic to its author with feedback. Blank
// feedback is a validation error and nothing is written.
func (s *Service) RejectTopic(ctx context.Context, id int64, feedback string) (*domain.Topic, error) {
	actor := domain.ActorFromCtx(ctx)
	if err := domain.Authorize(actor, domain.ModeratorRoles...); err != nil {
		return nil, err
	}

	rejected, err := s.moderate(ctx, id, actor, domain.ActionReject, domain.TransitionPayload{Feedback: feedback})
	if err != nil {
		return nil, fmt.Errorf("topic.RejectTopic: %w", err)
	}

	s.log.InfoContext(ctx, "topic rejected",
		slog.Int64("moderator_id", actor.UserID),
		slog.Int64("topic_id", id),
	)

	return rejected, nil
}

func (s *Service) moderate(
	ctx context.Context,
	id int64,
	actor domain.Actor,
	action domain.TopicAction,
	payload domain.TransitionPayload,
) (*domain.Topic, error) {
	auditAction := domain.AuditActionApprove
	if action == domain.ActionReject {
		auditAction = domain.AuditActionReject
	}

	var result *domain.Topic
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.topics.FindPendingByID(txCtx, id)
		if err != nil {
			return err
		}

		next, err := domain.Transition(*current, action, actor, payload)
		if err != nil {
			return err
		}

		result, err = s.topics.Update(txCtx, next)
		if err != nil {
			return fmt.Errorf("update topic: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.UserID,
			EntityType: domain.EntityTypeTopic,
			EntityID:   id,
			Action:     auditAction,
			Changes:    topicChanges(*current, *result),
		})
	})
	return result, err
}
