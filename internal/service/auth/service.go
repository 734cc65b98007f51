package auth

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/learning-journal/internal/config"
	"github.com/heartmarshall/learning-journal/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	Create(ctx context.Context, user domain.User) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateProfile(ctx context.Context, profile domain.Profile) error
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements account registration and password authentication.
type Service struct {
	log   *slog.Logger
	users userRepo
	tx    txManager
	cfg   config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tx txManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		tx:    tx,
		cfg:   cfg,
	}
}
