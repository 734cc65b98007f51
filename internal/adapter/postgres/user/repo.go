// Package user implements the user and profile repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/learning-journal/internal/adapter/postgres"
	"github.com/heartmarshall/learning-journal/internal/domain"
)

// Repo provides user and profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var userColumns = []string{"u.id", "u.username", "u.password_hash", "u.created_at", "u.updated_at"}

type userRow struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type userProfileRow struct {
	userRow
	Role       *string `db:"role"`
	TrustScore *int    `db:"trust_score"`
}

func (r userProfileRow) toDomain() domain.UserWithProfile {
	u := domain.UserWithProfile{User: r.userRow.toDomain()}
	if r.Role != nil {
		u.Profile = domain.Profile{UserID: r.ID, Role: domain.Role(*r.Role)}
		if r.TrustScore != nil {
			u.Profile.TrustScore = *r.TrustScore
		}
	}
	return u
}

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted domain.User.
// Returns domain.ErrAlreadyExists when the username is taken.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	insert := postgres.Builder.
		Insert("users").
		Columns("username", "password_hash").
		Values(u.Username, u.PasswordHash).
		Suffix("RETURNING id, username, password_hash, created_at, updated_at")

	var row userRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, insert); err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}

	result := row.toDomain()
	return &result, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"u.id": id}, id)
}

// GetByUsername returns a user by exact username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"u.username": username}, username)
}

func (r *Repo) getOne(ctx context.Context, where sq.Sqlizer, id any) (*domain.User, error) {
	query := postgres.Builder.Select(userColumns...).From("users u").Where(where)

	var row userRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := row.toDomain()
	return &u, nil
}

// ListWithProfiles returns every user joined with their profile, ordered by username.
func (r *Repo) ListWithProfiles(ctx context.Context) ([]domain.UserWithProfile, error) {
	query := postgres.Builder.
		Select(append(userColumns, "p.role", "p.trust_score")...).
		From("users u").
		LeftJoin("profiles p ON p.user_id = u.id").
		OrderBy("u.username")

	var rows []userProfileRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]domain.UserWithProfile, len(rows))
	for i, row := range rows {
		users[i] = row.toDomain()
	}
	return users, nil
}

// ---------------------------------------------------------------------------
// Profile operations
// ---------------------------------------------------------------------------

// CreateProfile inserts the profile row of a user.
func (r *Repo) CreateProfile(ctx context.Context, p domain.Profile) error {
	insert := postgres.Builder.
		Insert("profiles").
		Columns("user_id", "role", "trust_score").
		Values(p.UserID, string(p.Role), p.TrustScore)

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), insert); err != nil {
		return postgres.MapError(err, "profile", p.UserID)
	}
	return nil
}

// UpdateRole sets the role of a user, creating the profile when it is missing.
// Returns domain.ErrNotFound when the user does not exist.
func (r *Repo) UpdateRole(ctx context.Context, userID int64, role domain.Role) error {
	upsert := postgres.Builder.
		Insert("profiles").
		Columns("user_id", "role").
		Values(userID, string(role)).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role")

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), upsert); err != nil {
		return postgres.MapError(err, "profile", userID)
	}
	return nil
}

// GetActor loads the identity and current role of a user. A user without a
// profile yields an actor with HasProfile=false.
func (r *Repo) GetActor(ctx context.Context, userID int64) (domain.Actor, error) {
	query := postgres.Builder.
		Select(append(userColumns, "p.role", "p.trust_score")...).
		From("users u").
		LeftJoin("profiles p ON p.user_id = u.id").
		Where(sq.Eq{"u.id": userID})

	var row userProfileRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query); err != nil {
		return domain.Actor{}, postgres.MapError(err, "user", userID)
	}

	actor := domain.Actor{UserID: row.ID, Username: row.Username}
	if row.Role != nil {
		actor.Role = domain.Role(*row.Role)
		actor.HasProfile = true
	}
	return actor, nil
}
