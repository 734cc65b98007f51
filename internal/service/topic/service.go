package topic

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

type topicRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.Topic, error)
	FindByIDAndAuthor(ctx context.Context, id, authorID int64) (*domain.Topic, error)
	FindPendingByID(ctx context.Context, id int64) (*domain.Topic, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]domain.Topic, error)
	ListPending(ctx context.Context) ([]domain.Topic, error)
	Create(ctx context.Context, t domain.Topic) (*domain.Topic, error)
	Update(ctx context.Context, t domain.Topic) (*domain.Topic, error)
	Delete(ctx context.Context, id, authorID int64) error

	ListReferences(ctx context.Context, topicID int64) ([]domain.Reference, error)
	AddReference(ctx context.Context, ref domain.Reference) (*domain.Reference, error)
	DeleteReference(ctx context.Context, topicID, refID int64) error
}

type subjectRepo interface {
	GetSubjectByID(ctx context.Context, id int64) (*domain.Subject, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	ListByEntity(ctx context.Context, entityType domain.EntityType, entityID int64, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReviewHistoryLimit caps the audit entries shown on the review page.
const ReviewHistoryLimit = 20

// Service runs the topic lifecycle: authoring, submission and moderation.
// Every state change goes through domain.Transition.
type Service struct {
	topics   topicRepo
	subjects subjectRepo
	audit    auditLogger
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Topic service.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	subjects subjectRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		topics:   topics,
		subjects: subjects,
		audit:    audit,
		tx:       tx,
		log:      log.With("service", "topic"),
	}
}

// topicChanges records the fields that differ between two versions of a topic.
func topicChanges(old, cur domain.Topic) map[string]any {
	changes := map[string]any{}
	diff := func(field string, a, b any) {
		if a != b {
			changes[field] = map[string]any{"old": a, "new": b}
		}
	}
	diff("title", old.Title, cur.Title)
	diff("subject_id", old.SubjectID, cur.SubjectID)
	diff("difficulty", string(old.Difficulty), string(cur.Difficulty))
	diff("status", string(old.Status), string(cur.Status))
	diff("rejection_notes", old.RejectionNotes, cur.RejectionNotes)
	if old.Content != cur.Content {
		changes["content"] = map[string]any{"old_length": len(old.Content), "new_length": len(cur.Content)}
	}
	return changes
}
