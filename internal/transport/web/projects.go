package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/learning-journal/internal/domain"
	"github.com/heartmarshall/learning-journal/internal/service/project"
)

type subjectOption struct {
	Subject    domain.Subject
	Categories []domain.Category
}

type projectFormPage struct {
	IsNew   bool
	Project domain.Project
	Input   project.ProjectInput
	Options []subjectOption
}

func projectPath(id int64) string { return fmt.Sprintf("/projects/%d/", id) }

// SubjectProjects lists a subject's showcase projects.
func (h *Handler) SubjectProjects(w http.ResponseWriter, r *http.Request) {
	page, err := h.projects.ListBySubject(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "subject_projects", view{Title: page.Subject.Name + " Projects", Data: page})
}

// ProjectDetail shows one project.
func (h *Handler) ProjectDetail(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	p, err := h.projects.GetProject(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "project", view{Title: p.Title, Data: p})
}

// NewProjectPage renders an empty project form.
func (h *Handler) NewProjectPage(w http.ResponseWriter, r *http.Request) {
	h.renderProjectForm(w, r, http.StatusOK, projectFormPage{
		IsNew: true,
		Input: project.ProjectInput{Status: domain.ProjectStatusInProgress.String()},
	}, nil)
}

// CreateProject saves a new project owned by the actor.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	input := projectForm(r)

	p, err := h.projects.CreateProject(r.Context(), input)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			h.renderProjectForm(w, r, http.StatusUnprocessableEntity, projectFormPage{IsNew: true, Input: input}, ve)
			return
		}
		h.fail(w, r, err)
		return
	}
	h.flashRedirect(w, r, FlashSuccess, "Project created successfully!", projectPath(p.ID))
}

// EditProjectPage renders the owner's edit form.
func (h *Handler) EditProjectPage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	p, err := h.projects.GetForEdit(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.renderProjectForm(w, r, http.StatusOK, projectFormPage{
		Project: *p,
		Input: project.ProjectInput{
			Title:            p.Title,
			SubjectID:        p.SubjectID,
			CategoryID:       deref(p.CategoryID),
			Description:      p.Description,
			ProblemStatement: p.ProblemStatement,
			SolutionApproach: p.SolutionApproach,
			TechStack:        p.TechStack,
			GithubURL:        p.GithubURL,
			LiveDemoURL:      p.LiveDemoURL,
			Status:           p.Status.String(),
		},
	}, nil)
}

// UpdateProject saves the owner's changes.
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !h.parseForm(w, r) {
		return
	}
	input := projectForm(r)

	if _, err := h.projects.UpdateProject(r.Context(), id, input); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			h.renderProjectForm(w, r, http.StatusUnprocessableEntity, projectFormPage{
				Project: domain.Project{ID: id},
				Input:   input,
			}, ve)
			return
		}
		h.fail(w, r, err)
		return
	}
	h.flashRedirect(w, r, FlashSuccess, "Project updated successfully!", projectPath(id))
}

func (h *Handler) renderProjectForm(w http.ResponseWriter, r *http.Request, status int, page projectFormPage, ve *domain.ValidationError) {
	subjects, err := h.subjectChoices(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	page.Options = make([]subjectOption, 0, len(subjects))
	for _, s := range subjects {
		categories, err := h.taxonomy.ListCategories(r.Context(), s.ID)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		page.Options = append(page.Options, subjectOption{Subject: s, Categories: categories})
	}

	title := "New Project"
	if !page.IsNew {
		title = "Edit Project"
	}
	h.render(w, r, status, "project_form", view{Title: title, Errors: ve, Data: page})
}

func deref(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}
