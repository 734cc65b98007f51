package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

// DeleteTopic hard-deletes one of the actor's own topics. Topics of other
// users are reported as not found, moderators included.
func (s *Service) DeleteTopic(ctx context.Context, id int64) (*domain.Topic, error) {
	actor := domain.ActorFromCtx(ctx)
	if !actor.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	var deleted *domain.Topic
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.topics.FindByIDAndAuthor(txCtx, id, actor.UserID)
		if err != nil {
			return err
		}
		if _, err := domain.Transition(*current, domain.ActionDelete, actor, domain.TransitionPayload{}); err != nil {
			return err
		}

		if err := s.topics.Delete(txCtx, id, actor.UserID); err != nil {
			return fmt.Errorf("delete topic: %w", err)
		}
		deleted = current

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.UserID,
			EntityType: domain.EntityTypeTopic,
			EntityID:   id,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"title": map[string]any{"old": current.Title},
				"slug":  map[string]any{"old": current.Slug},
			},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("topic.DeleteTopic: %w", err)
	}

	s.log.InfoContext(ctx, "topic deleted",
		slog.Int64("user_id", actor.UserID),
		slog.Int64("topic_id", id),
	)

	return deleted, nil
}
