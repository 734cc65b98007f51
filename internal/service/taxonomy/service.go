package taxonomy

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

type subjectRepo interface {
	ListSubjects(ctx context.Context, activeOnly bool) ([]domain.Subject, error)
	GetSubjectByID(ctx context.Context, id int64) (*domain.Subject, error)
	CreateSubject(ctx context.Context, s domain.Subject) (*domain.Subject, error)
	UpdateSubject(ctx context.Context, s domain.Subject) (*domain.Subject, error)
	ListCategories(ctx context.Context, subjectID int64) ([]domain.Category, error)
	CreateCategory(ctx context.Context, c domain.Category) (*domain.Category, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages subjects and categories.
type Service struct {
	log      *slog.Logger
	subjects subjectRepo
	audit    auditLogger
	tx       txManager
}

func NewService(
	logger *slog.Logger,
	subjects subjectRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "taxonomy"),
		subjects: subjects,
		audit:    audit,
		tx:       tx,
	}
}
