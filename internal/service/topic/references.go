package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

// AddReference attaches a citation to a topic the actor may edit.
func (s *Service) AddReference(ctx context.Context, topicID int64, input ReferenceInput) (*domain.Reference, error) {
	actor := domain.ActorFromCtx(ctx)
	if err := domain.Authorize(actor, domain.ContributorRoles...); err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var ref *domain.Reference
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		t, err := s.topics.FindByID(txCtx, topicID)
		if err != nil {
			return err
		}
		if !domain.CanEdit(*t, actor) {
			return domain.ErrNotOwner
		}

		ref, err = s.topics.AddReference(txCtx, domain.Reference{
			TopicID:          topicID,
			SourceName:       input.SourceName,
			URL:              input.URL,
			ShortDescription: input.ShortDescription,
		})
		if err != nil {
			return fmt.Errorf("add reference: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.UserID,
			EntityType: domain.EntityTypeTopic,
			EntityID:   topicID,
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"reference_added": map[string]any{"id": ref.ID, "url": ref.URL}},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("topic.AddReference: %w", err)
	}

	s.log.InfoContext(ctx, "reference added",
		slog.Int64("topic_id", topicID),
		slog.Int64("reference_id", ref.ID),
	)

	return ref, nil
}

// DeleteReference removes a citation from a topic the actor may edit.
func (s *Service) DeleteReference(ctx context.Context, topicID, refID int64) error {
	actor := domain.ActorFromCtx(ctx)
	if err := domain.Authorize(actor, domain.ContributorRoles...); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		t, err := s.topics.FindByID(txCtx, topicID)
		if err != nil {
			return err
		}
		if !domain.CanEdit(*t, actor) {
			return domain.ErrNotOwner
		}

		if err := s.topics.DeleteReference(txCtx, topicID, refID); err != nil {
			return fmt.Errorf("delete reference: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.UserID,
			EntityType: domain.EntityTypeTopic,
			EntityID:   topicID,
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"reference_removed": map[string]any{"id": refID}},
		})
	})
	if err != nil {
		return fmt.Errorf("topic.DeleteReference: %w", err)
	}

	s.log.InfoContext(ctx, "reference removed",
		slog.Int64("topic_id", topicID),
		slog.Int64("reference_id", refID),
	)

	return nil
}
