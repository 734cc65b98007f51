// Package audit implements the append-only audit log repository.
package audit

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/learning-journal/internal/adapter/postgres"
	"github.com/heartmarshall/learning-journal/internal/domain"
)

const table = "audit_log"

var columns = []string{"id", "user_id", "entity_type", "entity_id", "action", "changes", "created_at"}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         int64          `db:"id"`
	UserID     *int64         `db:"user_id"`
	EntityType string         `db:"entity_type"`
	EntityID   int64          `db:"entity_id"`
	Action     string         `db:"action"`
	Changes    map[string]any `db:"changes"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (r row) toDomain() domain.AuditRecord {
	rec := domain.AuditRecord{
		ID:         r.ID,
		EntityType: domain.EntityType(r.EntityType),
		EntityID:   r.EntityID,
		Action:     domain.AuditAction(r.Action),
		Changes:    r.Changes,
		CreatedAt:  r.CreatedAt,
	}
	if r.UserID != nil {
		rec.UserID = *r.UserID
	}
	return rec
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Log appends an audit record. A zero UserID is stored as NULL (system action).
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	var userID *int64
	if record.UserID > 0 {
		userID = &record.UserID
	}
	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}

	insert := postgres.Builder.
		Insert(table).
		Columns("user_id", "entity_type", "entity_id", "action", "changes").
		Values(userID, string(record.EntityType), record.EntityID, string(record.Action), changes)

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), insert); err != nil {
		return postgres.MapError(err, "audit_record", record.EntityID)
	}
	return nil
}

// DeleteOlderThan removes records created before cutoff and returns how many.
func (r *Repo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	del := postgres.Builder.Delete(table).Where(sq.Lt{"created_at": cutoff})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), del)
	if err != nil {
		return 0, fmt.Errorf("delete audit records: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByEntity returns the history of one entity, newest first, at most limit records.
func (r *Repo) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID int64, limit int) ([]domain.AuditRecord, error) {
	query := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"entity_type": string(entityType), "entity_id": entityID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, fmt.Errorf("list audit records by entity: %w", err)
	}

	records := make([]domain.AuditRecord, len(rows))
	for i, rw := range rows {
		records[i] = rw.toDomain()
	}
	return records, nil
}
