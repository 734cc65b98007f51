// Package subject implements the taxonomy repository (subjects and their
// categories) using PostgreSQL.
package subject

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/learning-journal/internal/adapter/postgres"
	"github.com/heartmarshall/learning-journal/internal/domain"
)

var (
	subjectColumns  = []string{"id", "name", "slug", "description", "display_order", "is_active", "created_at"}
	categoryColumns = []string{"id", "subject_id", "name", "slug", "description", "is_active"}
)

// Repo provides subject and category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new subject repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type subjectRow struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Slug         string    `db:"slug"`
	Description  string    `db:"description"`
	DisplayOrder int       `db:"display_order"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r subjectRow) toDomain() domain.Subject {
	return domain.Subject(r)
}

type categoryRow struct {
	ID          int64  `db:"id"`
	SubjectID   int64  `db:"subject_id"`
	Name        string `db:"name"`
	Slug        string `db:"slug"`
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
}

func (r categoryRow) toDomain() domain.Category {
	return domain.Category(r)
}

func returning(cols []string) string {
	return "RETURNING " + strings.Join(cols, ", ")
}

// ---------------------------------------------------------------------------
// Subjects
// ---------------------------------------------------------------------------

// ListSubjects returns subjects ordered by display_order, name.
func (r *Repo) ListSubjects(ctx context.Context, activeOnly bool) ([]domain.Subject, error) {
	query := postgres.Builder.Select(subjectColumns...).From("subjects").OrderBy("display_order", "name")
	if activeOnly {
		query = query.Where(sq.Eq{"is_active": true})
	}

	var rows []subjectRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}

	subjects := make([]domain.Subject, len(rows))
	for i, row := range rows {
		subjects[i] = row.toDomain()
	}
	return subjects, nil
}

// GetSubjectByID returns a subject by primary key.
func (r *Repo) GetSubjectByID(ctx context.Context, id int64) (*domain.Subject, error) {
	return r.getSubject(ctx, sq.Eq{"id": id}, id)
}

// GetSubjectBySlug returns a subject by its slug, active or not.
func (r *Repo) GetSubjectBySlug(ctx context.Context, slug string) (*domain.Subject, error) {
	return r.getSubject(ctx, sq.Eq{"slug": slug}, slug)
}

func (r *Repo) getSubject(ctx context.Context, where sq.Sqlizer, id any) (*domain.Subject, error) {
	query := postgres.Builder.Select(subjectColumns...).From("subjects").Where(where)

	var row subjectRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query); err != nil {
		return nil, postgres.MapError(err, "subject", id)
	}
	s := row.toDomain()
	return &s, nil
}

// CreateSubject inserts a subject. Returns domain.ErrAlreadyExists on a slug clash.
func (r *Repo) CreateSubject(ctx context.Context, s domain.Subject) (*domain.Subject, error) {
	insert := postgres.Builder.
		Insert("subjects").
		Columns("name", "slug", "description", "display_order", "is_active").
		Values(s.Name, s.Slug, s.Description, s.DisplayOrder, s.IsActive).
		Suffix(returning(subjectColumns))

	var row subjectRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, insert); err != nil {
		return nil, postgres.MapError(err, "subject", s.Slug)
	}
	result := row.toDomain()
	return &result, nil
}

// UpdateSubject changes everything but the slug.
func (r *Repo) UpdateSubject(ctx context.Context, s domain.Subject) (*domain.Subject, error) {
	update := postgres.Builder.
		Update("subjects").
		Set("name", s.Name).
		Set("description", s.Description).
		Set("display_order", s.DisplayOrder).
		Set("is_active", s.IsActive).
		Where(sq.Eq{"id": s.ID}).
		Suffix(returning(subjectColumns))

	var row subjectRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, update); err != nil {
		return nil, postgres.MapError(err, "subject", s.ID)
	}
	result := row.toDomain()
	return &result, nil
}

// UpsertSubject inserts a subject or, when the slug exists, refreshes its
// name, description and display order. Used by the taxonomy seeder.
func (r *Repo) UpsertSubject(ctx context.Context, s domain.Subject) (*domain.Subject, error) {
	insert := postgres.Builder.
		Insert("subjects").
		Columns("name", "slug", "description", "display_order", "is_active").
		Values(s.Name, s.Slug, s.Description, s.DisplayOrder, s.IsActive).
		Suffix("ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description, " +
			"display_order = EXCLUDED.display_order, is_active = EXCLUDED.is_active " + returning(subjectColumns))

	var row subjectRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, insert); err != nil {
		return nil, postgres.MapError(err, "subject", s.Slug)
	}
	result := row.toDomain()
	return &result, nil
}

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

// ListCategories returns the categories of a subject ordered by name.
func (r *Repo) ListCategories(ctx context.Context, subjectID int64) ([]domain.Category, error) {
	query := postgres.Builder.
		Select(categoryColumns...).
		From("categories").
		Where(sq.Eq{"subject_id": subjectID}).
		OrderBy("name")

	var rows []categoryRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	categories := make([]domain.Category, len(rows))
	for i, row := range rows {
		categories[i] = row.toDomain()
	}
	return categories, nil
}

// GetCategoryByID returns a category by primary key.
func (r *Repo) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	query := postgres.Builder.Select(categoryColumns...).From("categories").Where(sq.Eq{"id": id})

	var row categoryRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query); err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	c := row.toDomain()
	return &c, nil
}

// CreateCategory inserts a category. Returns domain.ErrAlreadyExists when the
// subject already has a category with the same slug.
func (r *Repo) CreateCategory(ctx context.Context, c domain.Category) (*domain.Category, error) {
	insert := postgres.Builder.
		Insert("categories").
		Columns("subject_id", "name", "slug", "description", "is_active").
		Values(c.SubjectID, c.Name, c.Slug, c.Description, c.IsActive).
		Suffix(returning(categoryColumns))

	var row categoryRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, insert); err != nil {
		return nil, postgres.MapError(err, "category", c.Slug)
	}
	result := row.toDomain()
	return &result, nil
}

// UpsertCategory inserts a category or refreshes an existing one with the same
// (subject, slug). Used by the taxonomy seeder.
func (r *Repo) UpsertCategory(ctx context.Context, c domain.Category) (*domain.Category, error) {
	insert := postgres.Builder.
		Insert("categories").
		Columns("subject_id", "name", "slug", "description", "is_active").
		Values(c.SubjectID, c.Name, c.Slug, c.Description, c.IsActive).
		Suffix("ON CONFLICT (subject_id, slug) DO UPDATE SET name = EXCLUDED.name, " +
			"description = EXCLUDED.description, is_active = EXCLUDED.is_active " + returning(categoryColumns))

	var row categoryRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, insert); err != nil {
		return nil, postgres.MapError(err, "category", c.Slug)
	}
	result := row.toDomain()
	return &result, nil
}
