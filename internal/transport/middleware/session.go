package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

type sessionReader interface {
	UserID(r *http.Request) (int64, bool)
}

type actorLoader interface {
	GetActor(ctx context.Context, userID int64) (domain.Actor, error)
}

// Actor resolves the signed-in user of the session and stores the actor in
// the request context. The role is read from the profile on every request.
// A session pointing at a deleted user is treated as anonymous.
func Actor(sessions sessionReader, actors actorLoader, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := sessions.UserID(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			actor, err := actors.GetActor(r.Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUnauthorized) {
					next.ServeHTTP(w, r)
					return
				}
				logger.ErrorContext(r.Context(), "resolve session actor",
					slog.Int64("user_id", userID),
					slog.String("error", err.Error()),
				)
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			recordUser(r.Context(), actor.UserID)
			next.ServeHTTP(w, r.WithContext(domain.WithActor(r.Context(), actor)))
		})
	}
}
