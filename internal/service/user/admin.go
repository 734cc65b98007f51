package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

// SetRoleInput holds parameters for a role change.
type SetRoleInput struct {
	UserID int64  `form:"user_id" validate:"required,gt=0"`
	Role   string `form:"role"    validate:"required,oneof=admin moderator contributor reader"`
}

// ListUsers returns every user with their profile (admin only).
func (s *Service) ListUsers(ctx context.Context) ([]domain.UserWithProfile, error) {
	if err := domain.Authorize(domain.ActorFromCtx(ctx), domain.AdminRoles...); err != nil {
		return nil, err
	}

	users, err := s.users.ListWithProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.ListUsers: %w", err)
	}
	return users, nil
}

// SetRole changes the role of a user (admin only). Admins cannot demote
// themselves.
func (s *Service) SetRole(ctx context.Context, input SetRoleInput) error {
	actor := domain.ActorFromCtx(ctx)
	if err := domain.Authorize(actor, domain.AdminRoles...); err != nil {
		return err
	}

	if err := domain.ValidateStruct(input); err != nil {
		return err
	}

	role := domain.Role(input.Role)
	if input.UserID == actor.UserID && role != domain.RoleAdmin {
		return domain.NewValidationError("role", "You cannot remove your own admin role.")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.UpdateRole(txCtx, input.UserID, role); err != nil {
			return fmt.Errorf("update role: %w", err)
		}
		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.UserID,
			EntityType: domain.EntityTypeUser,
			EntityID:   input.UserID,
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"role": role.String()},
		})
	})
	if err != nil {
		return fmt.Errorf("user.SetRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.Int64("target_user_id", input.UserID),
		slog.String("new_role", role.String()),
	)

	return nil
}

// AssignRole sets the role of the named user without an actor check. It backs
// the promote command, which runs with operator privileges.
func (s *Service) AssignRole(ctx context.Context, username string, role domain.Role) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.NewValidationError("username", "This field is required.")
	}
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "Select a valid choice.")
	}

	var target *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := s.users.GetByUsername(txCtx, username)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		if err := s.users.UpdateRole(txCtx, u.ID, role); err != nil {
			return fmt.Errorf("update role: %w", err)
		}
		target = u
		return s.audit.Log(txCtx, domain.AuditRecord{
			EntityType: domain.EntityTypeUser,
			EntityID:   u.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"role": role.String(), "source": "cli"},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("user.AssignRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role assigned",
		slog.Int64("target_user_id", target.ID),
		slog.String("new_role", role.String()),
	)

	return target, nil
}
