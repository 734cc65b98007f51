package domain

import "time"

// Project is a showcase entry owned by a user. It has no moderation workflow.
type Project struct {
	ID               int64
	UserID           int64
	Title            string
	SubjectID        int64
	CategoryID       *int64
	Description      string
	ProblemStatement string
	SolutionApproach string
	TechStack        string
	GithubURL        string
	LiveDemoURL      string
	Status           ProjectStatus
	CreatedAt        time.Time

	// Read-only, filled by joins.
	OwnerUsername string
	SubjectName   string
	SubjectSlug   string
	CategoryName  string
}

// IsOwnedBy reports whether userID owns the project.
func (p Project) IsOwnedBy(userID int64) bool {
	return userID > 0 && p.UserID == userID
}
