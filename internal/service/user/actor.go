package user

import (
	"context"
	"fmt"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

// GetActor loads the identity and current profile role of userID. It is
// called on every request so role changes apply without a new login.
func (s *Service) GetActor(ctx context.Context, userID int64) (domain.Actor, error) {
	if userID <= 0 {
		return domain.Actor{}, domain.ErrUnauthorized
	}

	actor, err := s.users.GetActor(ctx, userID)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("user.GetActor: %w", err)
	}
	return actor, nil
}
