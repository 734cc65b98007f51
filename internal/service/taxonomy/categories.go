package taxonomy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

// ListCategories returns the categories of a subject.
func (s *Service) ListCategories(ctx context.Context, subjectID int64) ([]domain.Category, error) {
	categories, err := s.subjects.ListCategories(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("taxonomy.ListCategories: %w", err)
	}
	return categories, nil
}

// CreateCategory adds a category under subjectID (admin only). Category slugs
// are unique within their subject.
func (s *Service) CreateCategory(ctx context.Context, subjectID int64, input CategoryInput) (*domain.Category, error) {
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

	var created *domain.Category
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.subjects.GetSubjectByID(txCtx, subjectID); err != nil {
			return fmt.Errorf("get subject: %w", err)
		}

		category, err := s.subjects.CreateCategory(txCtx, domain.Category{
			SubjectID:   subjectID,
			Name:        input.Name,
			Slug:        slug,
			Description: input.Description,
			IsActive:    input.IsActive,
		})
		if err != nil {
			return fmt.Errorf("create category: %w", err)
		}
		created = category

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.UserID,
			EntityType: domain.EntityTypeCategory,
			EntityID:   category.ID,
			Action:     domain.AuditActionCreate,
			Changes:    map[string]any{"subject_id": subjectID, "name": category.Name, "slug": category.Slug},
		})
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewValidationError("slug", DuplicateSlugMessage)
		}
		return nil, fmt.Errorf("taxonomy.CreateCategory: %w", err)
	}

	s.log.InfoContext(ctx, "category created",
		slog.Int64("category_id", created.ID),
		slog.Int64("subject_id", subjectID),
	)

	return created, nil
}
