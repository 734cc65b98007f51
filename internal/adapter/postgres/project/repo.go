// Package project implements the project showcase repository using PostgreSQL.
package project

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/learning-journal/internal/adapter/postgres"
	"github.com/heartmarshall/learning-journal/internal/domain"
)

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new project repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var projectColumns = []string{
	"p.id", "p.user_id", "p.title", "p.subject_id", "p.category_id", "p.description",
	"p.problem_statement", "p.solution_approach", "p.tech_stack", "p.github_url",
	"p.live_demo_url", "p.status", "p.created_at",
	"u.username AS owner_username", "s.name AS subject_name", "s.slug AS subject_slug",
	"COALESCE(c.name, '') AS category_name",
}

type projectRow struct {
	ID               int64     `db:"id"`
	UserID           int64     `db:"user_id"`
	Title            string    `db:"title"`
	SubjectID        int64     `db:"subject_id"`
	CategoryID       *int64    `db:"category_id"`
	Description      string    `db:"description"`
	ProblemStatement string    `db:"problem_statement"`
	SolutionApproach string    `db:"solution_approach"`
	TechStack        string    `db:"tech_stack"`
	GithubURL        string    `db:"github_url"`
	LiveDemoURL      string    `db:"live_demo_url"`
	Status           string    `db:"status"`
	CreatedAt        time.Time `db:"created_at"`
	OwnerUsername    string    `db:"owner_username"`
	SubjectName      string    `db:"subject_name"`
	SubjectSlug      string    `db:"subject_slug"`
	CategoryName     string    `db:"category_name"`
}

func (r projectRow) toDomain() domain.Project {
	return domain.Project{
		ID:               r.ID,
		UserID:           r.UserID,
		Title:            r.Title,
		SubjectID:        r.SubjectID,
		CategoryID:       r.CategoryID,
		Description:      r.Description,
		ProblemStatement: r.ProblemStatement,
		SolutionApproach: r.SolutionApproach,
		TechStack:        r.TechStack,
		GithubURL:        r.GithubURL,
		LiveDemoURL:      r.LiveDemoURL,
		Status:           domain.ProjectStatus(r.Status),
		CreatedAt:        r.CreatedAt,
		OwnerUsername:    r.OwnerUsername,
		SubjectName:      r.SubjectName,
		SubjectSlug:      r.SubjectSlug,
		CategoryName:     r.CategoryName,
	}
}

func selectProjects() sq.SelectBuilder {
	return postgres.Builder.
		Select(projectColumns...).
		From("projects p").
		Join("users u ON u.id = p.user_id").
		Join("subjects s ON s.id = p.subject_id").
		LeftJoin("categories c ON c.id = p.category_id")
}

// GetByID returns a project with its joined owner, subject and category names.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	var row projectRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, selectProjects().Where(sq.Eq{"p.id": id})); err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	p := row.toDomain()
	return &p, nil
}

// ListBySubject returns the projects of a subject, newest first.
func (r *Repo) ListBySubject(ctx context.Context, subjectID int64) ([]domain.Project, error) {
	query := selectProjects().
		Where(sq.Eq{"p.subject_id": subjectID}).
		OrderBy("p.created_at DESC", "p.id DESC")

	var rows []projectRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, fmt.Errorf("list projects by subject: %w", err)
	}

	projects := make([]domain.Project, len(rows))
	for i, row := range rows {
		projects[i] = row.toDomain()
	}
	return projects, nil
}

// Create inserts a project and returns it with generated id and timestamp.
func (r *Repo) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	insert := postgres.Builder.
		Insert("projects").
		Columns("user_id", "title", "subject_id", "category_id", "description", "problem_statement",
			"solution_approach", "tech_stack", "github_url", "live_demo_url", "status").
		Values(p.UserID, p.Title, p.SubjectID, p.CategoryID, p.Description, p.ProblemStatement,
			p.SolutionApproach, p.TechStack, p.GithubURL, p.LiveDemoURL, string(p.Status)).
		Suffix("RETURNING id, created_at")

	var ret struct {
		ID        int64     `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &ret, insert); err != nil {
		return nil, postgres.MapError(err, "project", p.Title)
	}

	p.ID, p.CreatedAt = ret.ID, ret.CreatedAt
	return &p, nil
}

// Update stores the editable fields of p. The owner never changes.
func (r *Repo) Update(ctx context.Context, p domain.Project) error {
	update := postgres.Builder.
		Update("projects").
		Set("title", p.Title).
		Set("subject_id", p.SubjectID).
		Set("category_id", p.CategoryID).
		Set("description", p.Description).
		Set("problem_statement", p.ProblemStatement).
		Set("solution_approach", p.SolutionApproach).
		Set("tech_stack", p.TechStack).
		Set("github_url", p.GithubURL).
		Set("live_demo_url", p.LiveDemoURL).
		Set("status", string(p.Status)).
		Where(sq.Eq{"id": p.ID})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), update)
	if err != nil {
		return postgres.MapError(err, "project", p.ID)
	}
	if n == 0 {
		return fmt.Errorf("project %d: %w", p.ID, domain.ErrNotFound)
	}
	return nil
}
