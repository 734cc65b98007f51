package domain

import "time"

// Subject is a top-level grouping of topics and projects.
type Subject struct {
	ID           int64
	Name         string
	Slug         string
	Description  string
	DisplayOrder int
	IsActive     bool
	CreatedAt    time.Time
}

// Category belongs to a subject and optionally classifies projects.
type Category struct {
	ID          int64
	SubjectID   int64
	Name        string
	Slug        string
	Description string
	IsActive    bool
}
