package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetActor(ctx context.Context, userID int64) (domain.Actor, error)
	ListWithProfiles(ctx context.Context) ([]domain.UserWithProfile, error)
	UpdateRole(ctx context.Context, userID int64, role domain.Role) error
}

// auditLogger defines the audit interface needed by user service.
type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements actor resolution and role administration.
type Service struct {
	log   *slog.Logger
	users userRepo
	audit auditLogger
	tx    txManager
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		audit: audit,
		tx:    tx,
	}
}
