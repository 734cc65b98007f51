package domain

import "time"

// Topic is an authored article subject to moderation.
type Topic struct {
	ID             int64
	Title          string
	Slug           string
	SubjectID      int64
	AuthorID       int64
	Content        string
	Status         TopicStatus
	RejectionNotes string
	Difficulty     Difficulty
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Read-only, filled by joins.
	SubjectName    string
	SubjectSlug    string
	AuthorUsername string
}

// IsPublished reports whether the topic is publicly visible.
func (t Topic) IsPublished() bool {
	return t.Status == TopicStatusPublished
}

// IsAuthoredBy reports whether userID wrote the topic.
func (t Topic) IsAuthoredBy(userID int64) bool {
	return userID > 0 && t.AuthorID == userID
}

// Reference is a citation attached to a topic.
type Reference struct {
	ID               int64
	TopicID          int64
	SourceName       string
	URL              string
	ShortDescription string
}

// Dashboard groups an author's topics by status.
type Dashboard struct {
	Drafts    []Topic
	Pending   []Topic
	Rejected  []Topic
	Published []Topic
}

// Total returns the number of topics across all buckets.
func (d Dashboard) Total() int {
	return len(d.Drafts) + len(d.Pending) + len(d.Rejected) + len(d.Published)
}

// PartitionByStatus splits topics into dashboard buckets, keeping input order
// within each bucket.
func PartitionByStatus(topics []Topic) Dashboard {
	var d Dashboard
	for _, t := range topics {
		switch t.Status {
		case TopicStatusDraft:
			d.Drafts = append(d.Drafts, t)
		case TopicStatusPending:
			d.Pending = append(d.Pending, t)
		case TopicStatusRejected:
			d.Rejected = append(d.Rejected, t)
		case TopicStatusPublished:
			d.Published = append(d.Published, t)
		}
	}
	return d
}

// Neighbors returns the topics immediately before and after id when ordered
// by id. siblings need not be sorted; nil means there is no neighbor.
func Neighbors(siblings []Topic, id int64) (prev, next *Topic) {
	for i := range siblings {
		s := &siblings[i]
		switch {
		case s.ID < id && (prev == nil || s.ID > prev.ID):
			prev = s
		case s.ID > id && (next == nil || s.ID < next.ID):
			next = s
		}
	}
	return prev, next
}
