package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/heartmarshall/learning-journal/internal/domain"
	"github.com/heartmarshall/learning-journal/internal/service/taxonomy"
)

const (
	adminSubjectsPath = "/admin/subjects/"
	adminUsersPath    = "/admin/users/"
)

type subjectFormPage struct {
	IsNew   bool
	Subject domain.Subject
	Input   taxonomy.SubjectInput
}

type categoriesPage struct {
	Subject    domain.Subject
	Categories []domain.Category
	Input      taxonomy.CategoryInput
}

func categoriesPath(subjectID int64) string {
	return fmt.Sprintf("/admin/subjects/%d/categories/", subjectID)
}

// AdminSubjects lists every subject.
func (h *Handler) AdminSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.taxonomy.ListSubjects(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "admin_subjects", view{Title: "Subjects", Data: subjects})
}

// NewSubjectPage renders an empty subject form.
func (h *Handler) NewSubjectPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "admin_subject_form", view{
		Title: "New Subject",
		Data:  subjectFormPage{IsNew: true, Input: taxonomy.SubjectInput{IsActive: true}},
	})
}

// CreateSubject adds a subject.
func (h *Handler) CreateSubject(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	input := subjectForm(r)

	s, err := h.taxonomy.CreateSubject(r.Context(), input)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			h.render(w, r, http.StatusUnprocessableEntity, "admin_subject_form", view{
				Title:  "New Subject",
				Errors: ve,
				Data:   subjectFormPage{IsNew: true, Input: input},
			})
			return
		}
		h.fail(w, r, err)
		return
	}
	h.flashRedirect(w, r, FlashSuccess, fmt.Sprintf("Subject '%s' created.", s.Name), adminSubjectsPath)
}

// EditSubjectPage renders the form for an existing subject.
func (h *Handler) EditSubjectPage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	s, err := h.taxonomy.GetSubject(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "admin_subject_form", view{
		Title: "Edit Subject",
		Data: subjectFormPage{
			Subject: *s,
			Input: taxonomy.SubjectInput{
				Name:         s.Name,
				Slug:         s.Slug,
				Description:  s.Description,
				DisplayOrder: s.DisplayOrder,
				IsActive:     s.IsActive,
			},
		},
	})
}

// UpdateSubject saves a subject. Its slug never changes.
func (h *Handler) UpdateSubject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !h.parseForm(w, r) {
		return
	}
	input := subjectForm(r)

	s, err := h.taxonomy.UpdateSubject(r.Context(), id, input)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			h.render(w, r, http.StatusUnprocessableEntity, "admin_subject_form", view{
				Title:  "Edit Subject",
				Errors: ve,
				Data:   subjectFormPage{Subject: domain.Subject{ID: id}, Input: input},
			})
			return
		}
		h.fail(w, r, err)
		return
	}
	h.flashRedirect(w, r, FlashSuccess, fmt.Sprintf("Subject '%s' updated.", s.Name), adminSubjectsPath)
}

// SubjectCategories lists a subject's categories with an add form.
func (h *Handler) SubjectCategories(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.renderCategories(w, r, http.StatusOK, id, taxonomy.CategoryInput{IsActive: true}, nil)
}

// CreateCategory adds a category to a subject.
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !h.parseForm(w, r) {
		return
	}
	input := categoryForm(r)

	c, err := h.taxonomy.CreateCategory(r.Context(), id, input)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			h.renderCategories(w, r, http.StatusUnprocessableEntity, id, input, ve)
			return
		}
		h.fail(w, r, err)
		return
	}
	h.flashRedirect(w, r, FlashSuccess, fmt.Sprintf("Category '%s' added.", c.Name), categoriesPath(id))
}

func (h *Handler) renderCategories(w http.ResponseWriter, r *http.Request, status int, subjectID int64, input taxonomy.CategoryInput, ve *domain.ValidationError) {
	s, err := h.taxonomy.GetSubject(r.Context(), subjectID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	categories, err := h.taxonomy.ListCategories(r.Context(), subjectID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, status, "admin_categories", view{
		Title:  s.Name + " Categories",
		Errors: ve,
		Data:   categoriesPage{Subject: *s, Categories: categories, Input: input},
	})
}

// AdminUsers lists accounts with their roles.
func (h *Handler) AdminUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "admin_users", view{Title: "Users", Data: users})
}

// SetRole changes a user's role.
func (h *Handler) SetRole(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	if err := h.users.SetRole(r.Context(), setRoleForm(r)); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			h.flashRedirect(w, r, FlashError, ve.Messages(), adminUsersPath)
			return
		}
		h.fail(w, r, err)
		return
	}
	h.flashRedirect(w, r, FlashSuccess, "Role updated.", adminUsersPath)
}
