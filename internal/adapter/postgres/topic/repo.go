// Package topic implements the topic and reference repository using PostgreSQL.
package topic

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/learning-journal/internal/adapter/postgres"
	"github.com/heartmarshall/learning-journal/internal/domain"
)

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new topic repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var topicColumns = []string{
	"t.id", "t.title", "t.slug", "t.subject_id", "t.author_id", "t.content", "t.status",
	"t.rejection_notes", "t.difficulty", "t.created_at", "t.updated_at",
	"s.name AS subject_name", "s.slug AS subject_slug", "u.username AS author_username",
}

type topicRow struct {
	ID             int64     `db:"id"`
	Title          string    `db:"title"`
	Slug           string    `db:"slug"`
	SubjectID      int64     `db:"subject_id"`
	AuthorID       int64     `db:"author_id"`
	Content        string    `db:"content"`
	Status         string    `db:"status"`
	RejectionNotes string    `db:"rejection_notes"`
	Difficulty     string    `db:"difficulty"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
	SubjectName    string    `db:"subject_name"`
	SubjectSlug    string    `db:"subject_slug"`
	AuthorUsername string    `db:"author_username"`
}

func (r topicRow) toDomain() domain.Topic {
	return domain.Topic{
		ID:             r.ID,
		Title:          r.Title,
		Slug:           r.Slug,
		SubjectID:      r.SubjectID,
		AuthorID:       r.AuthorID,
		Content:        r.Content,
		Status:         domain.TopicStatus(r.Status),
		RejectionNotes: r.RejectionNotes,
		Difficulty:     domain.Difficulty(r.Difficulty),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		SubjectName:    r.SubjectName,
		SubjectSlug:    r.SubjectSlug,
		AuthorUsername: r.AuthorUsername,
	}
}

func selectTopics() sq.SelectBuilder {
	return postgres.Builder.
		Select(topicColumns...).
		From("topics t").
		Join("subjects s ON s.id = t.subject_id").
		Join("users u ON u.id = t.author_id")
}

// ---------------------------------------------------------------------------
// Single-topic reads
// ---------------------------------------------------------------------------

// FindByID returns a topic in any status.
func (r *Repo) FindByID(ctx context.Context, id int64) (*domain.Topic, error) {
	return r.findOne(ctx, selectTopics().Where(sq.Eq{"t.id": id}), id)
}

// FindByIDAndAuthor returns the topic only when authorID wrote it, so a
// non-author gets domain.ErrNotFound.
func (r *Repo) FindByIDAndAuthor(ctx context.Context, id, authorID int64) (*domain.Topic, error) {
	return r.findOne(ctx, selectTopics().Where(sq.Eq{"t.id": id, "t.author_id": authorID}), id)
}

// FindPendingByID returns the topic only while it awaits moderation.
func (r *Repo) FindPendingByID(ctx context.Context, id int64) (*domain.Topic, error) {
	return r.findOne(ctx, selectTopics().Where(sq.Eq{"t.id": id, "t.status": string(domain.TopicStatusPending)}), id)
}

// FindPublishedBySlug returns a published topic addressed by subject and topic slug.
func (r *Repo) FindPublishedBySlug(ctx context.Context, subjectSlug, topicSlug string) (*domain.Topic, error) {
	query := selectTopics().Where(sq.Eq{
		"s.slug":   subjectSlug,
		"t.slug":   topicSlug,
		"t.status": string(domain.TopicStatusPublished),
	})
	return r.findOne(ctx, query, subjectSlug+"/"+topicSlug)
}

func (r *Repo) findOne(ctx context.Context, query sq.SelectBuilder, id any) (*domain.Topic, error) {
	var row topicRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query); err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}
	t := row.toDomain()
	return &t, nil
}

// ---------------------------------------------------------------------------
// Listings
// ---------------------------------------------------------------------------

// ListPublished returns every published topic, newest first.
func (r *Repo) ListPublished(ctx context.Context) ([]domain.Topic, error) {
	query := selectTopics().
		Where(sq.Eq{"t.status": string(domain.TopicStatusPublished)}).
		OrderBy("t.created_at DESC", "t.id DESC")
	return r.list(ctx, query, "list published topics")
}

// ListPublishedBySubject returns the published topics of a subject by ascending id.
func (r *Repo) ListPublishedBySubject(ctx context.Context, subjectID int64) ([]domain.Topic, error) {
	query := selectTopics().
		Where(sq.Eq{"t.status": string(domain.TopicStatusPublished), "t.subject_id": subjectID}).
		OrderBy("t.id ASC")
	return r.list(ctx, query, "list published topics by subject")
}

// ListByAuthor returns every topic of an author, most recently updated first.
func (r *Repo) ListByAuthor(ctx context.Context, authorID int64) ([]domain.Topic, error) {
	query := selectTopics().
		Where(sq.Eq{"t.author_id": authorID}).
		OrderBy("t.updated_at DESC", "t.id DESC")
	return r.list(ctx, query, "list topics by author")
}

// ListPending returns the moderation queue, newest first.
func (r *Repo) ListPending(ctx context.Context) ([]domain.Topic, error) {
	query := selectTopics().
		Where(sq.Eq{"t.status": string(domain.TopicStatusPending)}).
		OrderBy("t.created_at DESC", "t.id DESC")
	return r.list(ctx, query, "list pending topics")
}

// SearchPublished matches q as a case-insensitive literal substring of the
// title or content of published topics.
func (r *Repo) SearchPublished(ctx context.Context, q string) ([]domain.Topic, error) {
	pattern := "%" + escapeLike(q) + "%"
	query := selectTopics().
		Where(sq.Eq{"t.status": string(domain.TopicStatusPublished)}).
		Where(sq.Or{sq.ILike{"t.title": pattern}, sq.ILike{"t.content": pattern}}).
		OrderBy("t.created_at DESC", "t.id DESC")
	return r.list(ctx, query, "search topics")
}

func (r *Repo) list(ctx context.Context, query sq.SelectBuilder, op string) ([]domain.Topic, error) {
	var rows []topicRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	topics := make([]domain.Topic, len(rows))
	for i, row := range rows {
		topics[i] = row.toDomain()
	}
	return topics, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a topic and returns it with generated id and timestamps.
// Returns domain.ErrAlreadyExists on a slug clash.
func (r *Repo) Create(ctx context.Context, t domain.Topic) (*domain.Topic, error) {
	insert := postgres.Builder.
		Insert("topics").
		Columns("title", "slug", "subject_id", "author_id", "content", "status", "rejection_notes", "difficulty").
		Values(t.Title, t.Slug, t.SubjectID, t.AuthorID, t.Content, string(t.Status), t.RejectionNotes, string(t.Difficulty)).
		Suffix("RETURNING id, created_at, updated_at")

	var ret struct {
		ID        int64     `db:"id"`
		CreatedAt time.Time `db:"created_at"`
		UpdatedAt time.Time `db:"updated_at"`
	}
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &ret, insert); err != nil {
		return nil, postgres.MapError(err, "topic", t.Slug)
	}

	t.ID, t.CreatedAt, t.UpdatedAt = ret.ID, ret.CreatedAt, ret.UpdatedAt
	return &t, nil
}

// Update stores the mutable fields of t and bumps updated_at. The slug and
// author never change.
func (r *Repo) Update(ctx context.Context, t domain.Topic) (*domain.Topic, error) {
	update := postgres.Builder.
		Update("topics").
		Set("title", t.Title).
		Set("subject_id", t.SubjectID).
		Set("content", t.Content).
		Set("status", string(t.Status)).
		Set("rejection_notes", t.RejectionNotes).
		Set("difficulty", string(t.Difficulty)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": t.ID}).
		Suffix("RETURNING updated_at")

	var ret struct {
		UpdatedAt time.Time `db:"updated_at"`
	}
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &ret, update); err != nil {
		return nil, postgres.MapError(err, "topic", t.ID)
	}

	t.UpdatedAt = ret.UpdatedAt
	return &t, nil
}

// Delete removes a topic of authorID. Returns domain.ErrNotFound when no such
// topic exists for that author.
func (r *Repo) Delete(ctx context.Context, id, authorID int64) error {
	del := postgres.Builder.Delete("topics").Where(sq.Eq{"id": id, "author_id": authorID})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), del)
	if err != nil {
		return postgres.MapError(err, "topic", id)
	}
	if n == 0 {
		return fmt.Errorf("topic %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
