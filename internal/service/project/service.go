package project

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

type projectRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	ListBySubject(ctx context.Context, subjectID int64) ([]domain.Project, error)
	Create(ctx context.Context, p domain.Project) (*domain.Project, error)
	Update(ctx context.Context, p domain.Project) error
}

type subjectRepo interface {
	GetSubjectByID(ctx context.Context, id int64) (*domain.Subject, error)
	GetSubjectBySlug(ctx context.Context, slug string) (*domain.Subject, error)
	GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages showcase projects. Projects have no moderation workflow;
// only their owner may change them.
type Service struct {
	log      *slog.Logger
	projects projectRepo
	subjects subjectRepo
	audit    auditLogger
	tx       txManager
}

func NewService(
	logger *slog.Logger,
	projects projectRepo,
	subjects subjectRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "project"),
		projects: projects,
		subjects: subjects,
		audit:    audit,
		tx:       tx,
	}
}
