package middleware

import "context"

type identityKey struct{}

// requestIdentity lets inner middleware report the resolved user back to
// the access log.
type requestIdentity struct {
	userID int64
}

func withIdentity(ctx context.Context, id *requestIdentity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func recordUser(ctx context.Context, userID int64) {
	if id, ok := ctx.Value(identityKey{}).(*requestIdentity); ok {
		id.userID = userID
	}
}
