package topic

import (
	"context"
	"fmt"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

// EditView is what the edit form needs.
type EditView struct {
	Topic      domain.Topic
	References []domain.Reference
}

// GetForEdit loads a topic the actor may edit.
func (s *Service) GetForEdit(ctx context.Context, id int64) (*EditView, error) {
	actor := domain.ActorFromCtx(ctx)
	if err := domain.Authorize(actor, domain.ContributorRoles...); err != nil {
		return nil, err
	}

	t, err := s.topics.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("topic.GetForEdit: %w", err)
	}
	if !domain.CanEdit(*t, actor) {
		return nil, domain.ErrNotOwner
	}

	refs, err := s.topics.ListReferences(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("topic.GetForEdit references: %w", err)
	}

	return &EditView{Topic: *t, References: refs}, nil
}

// Dashboard returns the actor's topics, most recently updated first, split
// by status.
func (s *Service) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	actor := domain.ActorFromCtx(ctx)
	if err := domain.Authorize(actor, domain.ContributorRoles...); err != nil {
		return domain.Dashboard{}, err
	}

	topics, err := s.topics.ListByAuthor(ctx, actor.UserID)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("topic.Dashboard: %w", err)
	}

	return domain.PartitionByStatus(topics), nil
}
