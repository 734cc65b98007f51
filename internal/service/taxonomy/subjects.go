package taxonomy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

// DuplicateSlugMessage is reported when a slug is already in use.
const DuplicateSlugMessage = "This slug is already in use."

// NavSubjects returns the active subjects in display order. It backs the
// navigation shown on every page and needs no actor.
func (s *Service) NavSubjects(ctx context.Context) ([]domain.Subject, error) {
	subjects, err := s.subjects.ListSubjects(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("taxonomy.NavSubjects: %w", err)
	}
	return subjects, nil
}

// ListSubjects returns every subject, active or not (admin only).
func (s *Service) ListSubjects(ctx context.Context) ([]domain.Subject, error) {
	if err := domain.Authorize(domain.ActorFromCtx(ctx), domain.AdminRoles...); err != nil {
		return nil, err
	}

	subjects, err := s.subjects.ListSubjects(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("taxonomy.ListSubjects: %w", err)
	}
	return subjects, nil
}

// GetSubject returns a subject by id (admin only).
func (s *Service) GetSubject(ctx context.Context, id int64) (*domain.Subject, error) {
	if err := domain.Authorize(domain.ActorFromCtx(ctx), domain.AdminRoles...); err != nil {
		return nil, err
	}

	subject, err := s.subjects.GetSubjectByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("taxonomy.GetSubject: %w", err)
	}
	return subject, nil
}

// CreateSubject adds a subject (admin only). The slug comes from the input or
// the name and is fixed from then on.
func (s *Service) CreateSubject(ctx context.Context, input SubjectInput) (*domain.Subject, error) {
	actor := domain.ActorFromCtx(ctx)
	if err := domain.Authorize(actor, domain.AdminRoles...); err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	slug, err := slugFor(input.Slug, input.Name)
	if err != nil {
		return nil, err
	}

	var created *domain.Subject
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		subject, err := s.subjects.CreateSubject(txCtx, domain.Subject{
			Name:         input.Name,
			Slug:         slug,
			Description:  input.Description,
			DisplayOrder: input.DisplayOrder,
			IsActive:     input.IsActive,
		})
		if err != nil {
			return fmt.Errorf("create subject: %w", err)
		}
		created = subject

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.UserID,
			EntityType: domain.EntityTypeSubject,
			EntityID:   subject.ID,
			Action:     domain.AuditActionCreate,
			Changes:    map[string]any{"name": subject.Name, "slug": subject.Slug},
		})
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewValidationError("slug", DuplicateSlugMessage)
		}
		return nil, fmt.Errorf("taxonomy.CreateSubject: %w", err)
	}

	s.log.InfoContext(ctx, "subject created",
		slog.Int64("subject_id", created.ID),
		slog.String("slug", created.Slug),
	)

	return created, nil
}

// UpdateSubject edits a subject (admin only). input.Slug is ignored.
func (s *Service) UpdateSubject(ctx context.Context, id int64, input SubjectInput) (*domain.Subject, error) {
	actor := domain.ActorFromCtx(ctx)
	if err := domain.Authorize(actor, domain.AdminRoles...); err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Subject
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.subjects.GetSubjectByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get subject: %w", err)
		}

		next := *current
		next.Name = input.Name
		next.Description = input.Description
		next.DisplayOrder = input.DisplayOrder
		next.IsActive = input.IsActive

		subject, err := s.subjects.UpdateSubject(txCtx, next)
		if err != nil {
			return fmt.Errorf("update subject: %w", err)
		}
		updated = subject

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.UserID,
			EntityType: domain.EntityTypeSubject,
			EntityID:   subject.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    subjectChanges(*current, *subject),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("taxonomy.UpdateSubject: %w", err)
	}

	s.log.InfoContext(ctx, "subject updated", slog.Int64("subject_id", updated.ID))

	return updated, nil
}

func subjectChanges(old, cur domain.Subject) map[string]any {
	changes := map[string]any{}
	if old.Name != cur.Name {
		changes["name"] = map[string]any{"old": old.Name, "new": cur.Name}
	}
	if old.Description != cur.Description {
		changes["description"] = map[string]any{"old": old.Description, "new": cur.Description}
	}
	if old.DisplayOrder != cur.DisplayOrder {
		changes["display_order"] = map[string]any{"old": old.DisplayOrder, "new": cur.DisplayOrder}
	}
	if old.IsActive != cur.IsActive {
		changes["is_active"] = map[string]any{"old": old.IsActive, "new": cur.IsActive}
	}
	return changes
}
