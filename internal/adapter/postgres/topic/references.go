package topic

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/learning-journal/internal/adapter/postgres"
	"github.com/heartmarshall/learning-journal/internal/domain"
)

var referenceColumns = []string{"id", "topic_id", "source_name", "url", "short_description"}

type referenceRow struct {
	ID               int64  `db:"id"`
	TopicID          int64  `db:"topic_id"`
	SourceName       string `db:"source_name"`
	URL              string `db:"url"`
	ShortDescription string `db:"short_description"`
}

// ListReferences returns the references of a topic in insertion order.
func (r *Repo) ListReferences(ctx context.Context, topicID int64) ([]domain.Reference, error) {
	query := postgres.Builder.
		Select(referenceColumns...).
		From("topic_references").
		Where(sq.Eq{"topic_id": topicID}).
		OrderBy("id")

	var rows []referenceRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, fmt.Errorf("list references: %w", err)
	}

	refs := make([]domain.Reference, len(rows))
	for i, row := range rows {
		refs[i] = domain.Reference(row)
	}
	return refs, nil
}

// AddReference attaches a reference to its topic.
func (r *Repo) AddReference(ctx context.Context, ref domain.Reference) (*domain.Reference, error) {
	insert := postgres.Builder.
		Insert("topic_references").
		Columns("topic_id", "source_name", "url", "short_description").
		Values(ref.TopicID, ref.SourceName, ref.URL, ref.ShortDescription).
		Suffix("RETURNING id")

	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &ref.ID, insert); err != nil {
		return nil, postgres.MapError(err, "topic", ref.TopicID)
	}
	return &ref, nil
}

// DeleteReference removes a reference of topicID.
func (r *Repo) DeleteReference(ctx context.Context, topicID, refID int64) error {
	del := postgres.Builder.Delete("topic_references").Where(sq.Eq{"id": refID, "topic_id": topicID})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), del)
	if err != nil {
		return postgres.MapError(err, "reference", refID)
	}
	if n == 0 {
		return fmt.Errorf("reference %d: %w", refID, domain.ErrNotFound)
	}
	return nil
}
