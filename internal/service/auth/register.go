package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

// DuplicateUsernameMessage is reported on the username field when it is taken.
const DuplicateUsernameMessage = "A user with that username already exists."

// Register creates a user together with a reader profile. The caller signs
// the new user in.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	var created *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.users.Create(txCtx, domain.User{
			Username:     input.Username,
			PasswordHash: string(hash),
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		if err := s.users.CreateProfile(txCtx, domain.Profile{UserID: user.ID, Role: domain.DefaultRole}); err != nil {
			return fmt.Errorf("create profile: %w", err)
		}

		created = user
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewValidationError("username", DuplicateUsernameMessage)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.Int64("user_id", created.ID),
		slog.String("username", created.Username),
	)

	return created, nil
}

// Authenticate checks a username and password. Unknown users and wrong
// passwords both yield domain.ErrUnauthorized.
func (s *Service) Authenticate(ctx context.Context, input LoginInput) (*domain.User, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Authenticate get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	s.log.InfoContext(ctx, "user logged in", slog.Int64("user_id", user.ID))

	return user, nil
}
