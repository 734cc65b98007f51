package domain

import (
	"context"

	"github.com/heartmarshall/learning-journal/pkg/ctxutil"
)

// Role sets used by route guards and services.
var (
	ContributorRoles = []Role{RoleContributor, RoleModerator, RoleAdmin}
	ModeratorRoles   = []Role{RoleModerator, RoleAdmin}
	AdminRoles       = []Role{RoleAdmin}
)

// Allowed reports whether actor is authenticated, has a profile, and holds
// one of roles. It has no side effects.
func Allowed(actor Actor, roles ...Role) bool {
	if !actor.IsAuthenticated() || !actor.HasProfile {
		return false
	}
	for _, r := range roles {
		if actor.Role == r {
			return true
		}
	}
	return false
}

// Authorize is Allowed with an error result: ErrUnauthorized for anonymous
// actors, ErrForbidden for everyone else who fails the check.
func Authorize(actor Actor, roles ...Role) error {
	if !actor.IsAuthenticated() {
		return ErrUnauthorized
	}
	if !Allowed(actor, roles...) {
		return ErrForbidden
	}
	return nil
}

// ActorFromCtx rebuilds the actor placed in the context by the session
// middleware. An empty role means the account has no profile.
func ActorFromCtx(ctx context.Context) Actor {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Actor{}
	}
	role := Role(ctxutil.UserRoleFromCtx(ctx))
	return Actor{
		UserID:     id,
		Username:   ctxutil.UsernameFromCtx(ctx),
		Role:       role,
		HasProfile: role.IsValid(),
	}
}

// WithActor stores the actor's identity in ctx.
func WithActor(ctx context.Context, actor Actor) context.Context {
	if !actor.IsAuthenticated() {
		return ctx
	}
	ctx = ctxutil.WithUserID(ctx, actor.UserID)
	ctx = ctxutil.WithUsername(ctx, actor.Username)
	if actor.HasProfile {
		ctx = ctxutil.WithUserRole(ctx, actor.Role.String())
	}
	return ctx
}
