package taxonomy

import (
	"strings"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

// SubjectInput is the admin form for a subject. Slug is only read on create.
type SubjectInput struct {
	Name         string `form:"name"          validate:"required,max=100"`
	Slug         string `form:"slug"          validate:"max=255"`
	Description  string `form:"description"`
	DisplayOrder int    `form:"display_order" validate:"gte=0"`
	IsActive     bool   `form:"is_active"`
}

func (i *SubjectInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Slug = strings.TrimSpace(i.Slug)
	i.Description = strings.TrimSpace(i.Description)
}

func (i SubjectInput) Validate() error {
	return domain.ValidateStruct(i)
}

// CategoryInput is the admin form for a category of a subject.
type CategoryInput struct {
	Name        string `form:"name"        validate:"required,max=100"`
	Slug        string `form:"slug"        validate:"max=255"`
	Description string `form:"description"`
	IsActive    bool   `form:"is_active"`
}

func (i *CategoryInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Slug = strings.TrimSpace(i.Slug)
	i.Description = strings.TrimSpace(i.Description)
}

func (i CategoryInput) Validate() error {
	return domain.ValidateStruct(i)
}

// slugFor derives a slug and reports a validation error when nothing
// URL-safe remains.
func slugFor(explicit, name string) (string, error) {
	s := domain.AssignSlug("", explicit, name)
	if s == "" {
		return "", domain.NewValidationError("slug", "Enter a name that contains letters or digits.")
	}
	return s, nil
}
