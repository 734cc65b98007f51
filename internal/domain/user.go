package domain

import "time"

// User is an authenticated account holder.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile holds the role of a user. Every user has exactly one.
type Profile struct {
	UserID     int64
	Role       Role
	TrustScore int
}

// UserWithProfile is a user joined with its profile, used by admin listings.
type UserWithProfile struct {
	User
	Profile Profile
}

// Actor is the identity performing an operation. The zero value is anonymous.
type Actor struct {
	UserID   int64
	Username string
	Role     Role

	// HasProfile is false when the account exists without a profile row;
	// such an actor passes no role check.
	HasProfile bool
}

// IsAuthenticated reports whether the actor is signed in.
func (a Actor) IsAuthenticated() bool {
	return a.UserID > 0
}

// IsModerator reports whether the actor may moderate content.
func (a Actor) IsModerator() bool {
	return Allowed(a, ModeratorRoles...)
}

// IsContributor reports whether the actor may author content.
func (a Actor) IsContributor() bool {
	return Allowed(a, ContributorRoles...)
}

// IsAdmin reports whether the actor has the admin role.
func (a Actor) IsAdmin() bool {
	return Allowed(a, AdminRoles...)
}
