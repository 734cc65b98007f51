package project

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

const (
	invalidChoiceMessage   = "Select a valid choice. That choice is not one of the available choices."
	foreignCategoryMessage = "Select a category of the chosen subject."
)

// ProjectInput is the project form. CategoryID zero means no category.
type ProjectInput struct {
	Title            string `form:"title"             validate:"required,max=200"`
	SubjectID        int64  `form:"subject"           validate:"required,gt=0"`
	CategoryID       int64  `form:"category"          validate:"gte=0"`
	Description      string `form:"description"`
	ProblemStatement string `form:"problem_statement"`
	SolutionApproach string `form:"solution_approach"`
	TechStack        string `form:"tech_stack"        validate:"max=255"`
	GithubURL        string `form:"github_url"        validate:"omitempty,http_url,max=500"`
	LiveDemoURL      string `form:"live_demo_url"     validate:"omitempty,http_url,max=500"`
	Status           string `form:"status"            validate:"required,oneof='In Progress' Completed"`
}

func (i *ProjectInput) normalize() {
	i.Title = strings.TrimSpace(i.Title)
	i.TechStack = strings.TrimSpace(i.TechStack)
	i.GithubURL = strings.TrimSpace(i.GithubURL)
	i.LiveDemoURL = strings.TrimSpace(i.LiveDemoURL)
}

func (i ProjectInput) Validate() error {
	return domain.ValidateStruct(i)
}

// apply copies the form onto p, leaving owner and timestamps alone.
func (i ProjectInput) apply(p domain.Project) domain.Project {
	p.Title = i.Title
	p.SubjectID = i.SubjectID
	p.CategoryID = nil
	if i.CategoryID > 0 {
		id := i.CategoryID
		p.CategoryID = &id
	}
	p.Description = i.Description
	p.ProblemStatement = i.ProblemStatement
	p.SolutionApproach = i.SolutionApproach
	p.TechStack = i.TechStack
	p.GithubURL = i.GithubURL
	p.LiveDemoURL = i.LiveDemoURL
	p.Status = domain.ProjectStatus(i.Status)
	return p
}

// checkTaxonomy verifies the subject exists and the category, if any,
// belongs to it.
func (s *Service) checkTaxonomy(ctx context.Context, input ProjectInput) error {
	if _, err := s.subjects.GetSubjectByID(ctx, input.SubjectID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("subject", invalidChoiceMessage)
		}
		return fmt.Errorf("get subject: %w", err)
	}

	if input.CategoryID == 0 {
		return nil
	}
	category, err := s.subjects.GetCategoryByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("category", invalidChoiceMessage)
		}
		return fmt.Errorf("get category: %w", err)
	}
	if category.SubjectID != input.SubjectID {
		return domain.NewValidationError("category", foreignCategoryMessage)
	}
	return nil
}
