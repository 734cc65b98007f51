package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

// SubjectProjects lists the projects of one subject, newest first.
type SubjectProjects struct {
	Subject  domain.Subject
	Projects []domain.Project
}

// ListBySubject returns the subject named by slug with its projects.
func (s *Service) ListBySubject(ctx context.Context, slug string) (*SubjectProjects, error) {
	subject, err := s.subjects.GetSubjectBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("project.ListBySubject: %w", err)
	}

	projects, err := s.projects.ListBySubject(ctx, subject.ID)
	if err != nil {
		return nil, fmt.Errorf("project.ListBySubject list: %w", err)
	}

	return &SubjectProjects{Subject: *subject, Projects: projects}, nil
}

// GetProject returns a project by id.
func (s *Service) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("project.GetProject: %w", err)
	}
	return p, nil
}

// GetForEdit returns a project its owner may edit.
func (s *Service) GetForEdit(ctx context.Context, id int64) (*domain.Project, error) {
	actor := domain.ActorFromCtx(ctx)
	if !actor.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("project.GetForEdit: %w", err)
	}
	if !p.IsOwnedBy(actor.UserID) {
		return nil, domain.ErrNotOwner
	}
	return p, nil
}

// CreateProject stores a project owned by the actor (contributors only).
func (s *Service) CreateProject(ctx context.Context, input ProjectInput) (*domain.Project, error) {
	actor := domain.ActorFromCtx(ctx)
	if err := domain.Authorize(actor, domain.ContributorRoles...); err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkTaxonomy(ctx, input); err != nil {
		return nil, err
	}

	var created *domain.Project
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.projects.Create(txCtx, input.apply(domain.Project{UserID: actor.UserID}))
		if err != nil {
			return fmt.Errorf("create project: %w", err)
		}
		created = p

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.UserID,
			EntityType: domain.EntityTypeProject,
			EntityID:   p.ID,
			Action:     domain.AuditActionCreate,
			Changes:    map[string]any{"title": map[string]any{"new": p.Title}},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("project.CreateProject: %w", err)
	}

	s.log.InfoContext(ctx, "project created",
		slog.Int64("user_id", actor.UserID),
		slog.Int64("project_id", created.ID),
	)

	return created, nil
}

// UpdateProject edits a project. Only the owner may do so; anyone else gets
// domain.ErrNotOwner.
func (s *Service) UpdateProject(ctx context.Context, id int64, input ProjectInput) (*domain.Project, error) {
	actor := domain.ActorFromCtx(ctx)
	if !actor.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	var updated domain.Project
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.projects.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if !current.IsOwnedBy(actor.UserID) {
			return domain.ErrNotOwner
		}

		input.normalize()
		if err := input.Validate(); err != nil {
			return err
		}
		if err := s.checkTaxonomy(txCtx, input); err != nil {
			return err
		}

		updated = input.apply(*current)
		if err := s.projects.Update(txCtx, updated); err != nil {
			return fmt.Errorf("update project: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.UserID,
			EntityType: domain.EntityTypeProject,
			EntityID:   id,
			Action:     domain.AuditActionUpdate,
			Changes:    projectChanges(*current, updated),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("project.UpdateProject: %w", err)
	}

	s.log.InfoContext(ctx, "project updated",
		slog.Int64("user_id", actor.UserID),
		slog.Int64("project_id", id),
	)

	return &updated, nil
}

func projectChanges(old, cur domain.Project) map[string]any {
	changes := map[string]any{}
	if old.Title != cur.Title {
		changes["title"] = map[string]any{"old": old.Title, "new": cur.Title}
	}
	if old.Status != cur.Status {
		changes["status"] = map[string]any{"old": string(old.Status), "new": string(cur.Status)}
	}
	if old.SubjectID != cur.SubjectID {
		changes["subject_id"] = map[string]any{"old": old.SubjectID, "new": cur.SubjectID}
	}
	return changes
}
