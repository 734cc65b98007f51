package seeder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

// Taxonomy is the parsed seed file:
//
//	subjects:
//	  - name: Python
//	    description: The language
//	    display_order: 1
//	    categories:
//	      - name: Web Apps
//	      - name: Scripts
//	        active: false
type Taxonomy struct {
	Subjects []SubjectSeed `yaml:"subjects"`
}

// SubjectSeed is one subject entry. Slug defaults to the slugified name and
// Active to true.
type SubjectSeed struct {
	Name         string         `yaml:"name"`
	Slug         string         `yaml:"slug"`
	Description  string         `yaml:"description"`
	DisplayOrder int            `yaml:"display_order"`
	Active       *bool          `yaml:"active"`
	Categories   []CategorySeed `yaml:"categories"`
}

// CategorySeed is one category of a subject.
type CategorySeed struct {
	Name        string `yaml:"name"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
	Active      *bool  `yaml:"active"`
}

// LoadTaxonomy reads and validates the taxonomy file at path.
func LoadTaxonomy(path string) (*Taxonomy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open taxonomy: %w", err)
	}
	defer f.Close()

	return ParseTaxonomy(f)
}

// ParseTaxonomy decodes a taxonomy document. Unknown keys are rejected so a
// typo does not silently drop data.
func ParseTaxonomy(r io.Reader) (*Taxonomy, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var t Taxonomy
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("taxonomy: file is empty")
		}
		return nil, fmt.Errorf("taxonomy: decode: %w", err)
	}
	if err := t.normalize(); err != nil {
		return nil, err
	}
	return &t, nil
}

// normalize trims names, fills default slugs and rejects duplicates.
func (t *Taxonomy) normalize() error {
	if len(t.Subjects) == 0 {
		return errors.New("taxonomy: no subjects")
	}

	subjectSlugs := make(map[string]bool, len(t.Subjects))
	for i := range t.Subjects {
		s := &t.Subjects[i]
		s.Name = strings.TrimSpace(s.Name)
		if s.Name == "" {
			return fmt.Errorf("taxonomy: subject #%d has no name", i+1)
		}
		s.Slug = domain.AssignSlug("", s.Slug, s.Name)
		if s.Slug == "" {
			return fmt.Errorf("taxonomy: subject %q has an empty slug", s.Name)
		}
		if subjectSlugs[s.Slug] {
			return fmt.Errorf("taxonomy: duplicate subject slug %q", s.Slug)
		}
		subjectSlugs[s.Slug] = true

		categorySlugs := make(map[string]bool, len(s.Categories))
		for j := range s.Categories {
			c := &s.Categories[j]
			c.Name = strings.TrimSpace(c.Name)
			if c.Name == "" {
				return fmt.Errorf("taxonomy: category #%d of %q has no name", j+1, s.Name)
			}
			c.Slug = domain.AssignSlug("", c.Slug, c.Name)
			if categorySlugs[c.Slug] {
				return fmt.Errorf("taxonomy: duplicate category slug %q in %q", c.Slug, s.Name)
			}
			categorySlugs[c.Slug] = true
		}
	}
	return nil
}

// CategoryCount returns the number of categories across all subjects.
func (t *Taxonomy) CategoryCount() int {
	n := 0
	for _, s := range t.Subjects {
		n += len(s.Categories)
	}
	return n
}

func (s SubjectSeed) toDomain() domain.Subject {
	return domain.Subject{
		Name:         s.Name,
		Slug:         s.Slug,
		Description:  s.Description,
		DisplayOrder: s.DisplayOrder,
		IsActive:     active(s.Active),
	}
}

func (c CategorySeed) toDomain(subjectID int64) domain.Category {
	return domain.Category{
		SubjectID:   subjectID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		IsActive:    active(c.Active),
	}
}

func active(b *bool) bool { return b == nil || *b }
