package topic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

// Validation messages shown on the topic form.
const (
	DuplicateTitleMessage = "A topic with this title already exists."
	DuplicateSlugMessage  = "A topic with this slug already exists."
	InvalidSubjectMessage = "Select a valid choice. That choice is not one of the available choices."
)

// TopicInput is the topic form. Slug is only read on create; there is no
// status field because status only moves through lifecycle actions.
type TopicInput struct {
	Title      string `form:"title"      validate:"required,max=200"`
	Slug       string `form:"slug"       validate:"max=255"`
	SubjectID  int64  `form:"subject"    validate:"required,gt=0"`
	Content    string `form:"content"    validate:"required"`
	Difficulty string `form:"difficulty" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
}

func (i *TopicInput) normalize() {
	i.Title = strings.TrimSpace(i.Title)
	i.Slug = strings.TrimSpace(i.Slug)
}

// Validate checks the form. Content is stored byte-for-byte, so blank
// content is rejected here rather than trimmed.
func (i TopicInput) Validate() error {
	var blank error
	if i.Content != "" && strings.TrimSpace(i.Content) == "" {
		blank = domain.NewValidationError("content", "This field is required.")
	}
	return domain.MergeValidation(domain.ValidateStruct(i), blank)
}

// ReferenceInput is the form for attaching a citation to a topic.
type ReferenceInput struct {
	SourceName       string `form:"source_name"       validate:"required,max=100"`
	URL              string `form:"url"               validate:"required,http_url,max=500"`
	ShortDescription string `form:"short_description" validate:"max=255"`
}

func (i *ReferenceInput) normalize() {
	i.SourceName = strings.TrimSpace(i.SourceName)
	i.URL = strings.TrimSpace(i.URL)
	i.ShortDescription = strings.TrimSpace(i.ShortDescription)
}

func (i ReferenceInput) Validate() error {
	return domain.ValidateStruct(i)
}

// checkSubject turns an unknown subject into a field error.
func (s *Service) checkSubject(ctx context.Context, subjectID int64) error {
	if _, err := s.subjects.GetSubjectByID(ctx, subjectID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("subject", InvalidSubjectMessage)
		}
		return fmt.Errorf("get subject: %w", err)
	}
	return nil
}
