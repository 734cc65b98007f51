package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a profile of the given role.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.UserWithProfile {
	t.Helper()
	ctx := context.Background()

	u := domain.UserWithProfile{
		User: domain.User{
			Username:     "user-" + UniqueSuffix(),
			PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplace",
		},
		Profile: domain.Profile{Role: role},
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (username, password_hash) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		u.Username, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	u.Profile.UserID = u.ID
	_, err = pool.Exec(ctx, `INSERT INTO profiles (user_id, role) VALUES ($1, $2)`, u.ID, string(role))
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert profile: %v", err)
	}

	return u
}

// SeedSubject creates an active subject with a unique slug.
func SeedSubject(t *testing.T, pool *pgxpool.Pool, displayOrder int) domain.Subject {
	t.Helper()
	ctx := context.Background()

	suffix := UniqueSuffix()
	s := domain.Subject{
		Name:         "Subject " + suffix,
		Slug:         "subject-" + suffix,
		Description:  "seeded",
		DisplayOrder: displayOrder,
		IsActive:     true,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO subjects (name, slug, description, display_order, is_active)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		s.Name, s.Slug, s.Description, s.DisplayOrder, s.IsActive,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedSubject: %v", err)
	}
	return s
}

// SeedTopic creates a topic in the given status.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, subjectID, authorID int64, status domain.TopicStatus) domain.Topic {
	t.Helper()
	ctx := context.Background()

	suffix := UniqueSuffix()
	tp := domain.Topic{
		Title:      "Topic " + suffix,
		Slug:       "topic-" + suffix,
		SubjectID:  subjectID,
		AuthorID:   authorID,
		Content:    "<p>content " + suffix + "</p>",
		Status:     status,
		Difficulty: domain.DifficultyBeginner,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO topics (title, slug, subject_id, author_id, content, status, difficulty)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at`,
		tp.Title, tp.Slug, tp.SubjectID, tp.AuthorID, tp.Content, string(tp.Status), string(tp.Difficulty),
	).Scan(&tp.ID, &tp.CreatedAt, &tp.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic: %v", err)
	}
	return tp
}
