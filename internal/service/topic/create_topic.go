package topic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

// CreateTopic stores a new draft authored by the actor.
func (s *Service) CreateTopic(ctx context.Context, input TopicInput) (*domain.Topic, error) {
	actor := domain.ActorFromCtx(ctx)
	if err := domain.Authorize(actor, domain.ContributorRoles...); err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkSubject(ctx, input.SubjectID); err != nil {
		return nil, err
	}

	draft, err := domain.Transition(domain.Topic{
		Title:      input.Title,
		SubjectID:  input.SubjectID,
		Content:    input.Content,
		Difficulty: domain.Difficulty(input.Difficulty),
	}, domain.ActionCreate, actor, domain.TransitionPayload{Slug: input.Slug})
	if err != nil {
		return nil, err
	}
	if draft.Slug == "" {
		return nil, domain.NewValidationError("title", "Enter a title that contains letters or digits.")
	}

	var topic *domain.Topic
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		topic, createErr = s.topics.Create(txCtx, draft)
		if createErr != nil {
			return fmt.Errorf("create topic: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.UserID,
			EntityType: domain.EntityTypeTopic,
			EntityID:   topic.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"title": map[string]any{"new": topic.Title},
				"slug":  map[string]any{"new": topic.Slug},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			if input.Slug != "" {
				return nil, domain.NewValidationError("slug", DuplicateSlugMessage)
			}
			return nil, domain.NewValidationError("title", DuplicateTitleMessage)
		}
		return nil, fmt.Errorf("topic.CreateTopic: %w", err)
	}

	s.log.InfoContext(ctx, "topic created",
		slog.Int64("user_id", actor.UserID),
		slog.Int64("topic_id", topic.ID),
		slog.String("slug", topic.Slug),
	)

	return topic, nil
}
