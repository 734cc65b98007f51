package web

import (
	"net/http"

	"github.com/heartmarshall/learning-journal/internal/service/auth"
	"github.com/heartmarshall/learning-journal/internal/service/project"
	"github.com/heartmarshall/learning-journal/internal/service/taxonomy"
	"github.com/heartmarshall/learning-journal/internal/service/topic"
	"github.com/heartmarshall/learning-journal/internal/service/user"
)

// Form readers expect r.ParseForm to have succeeded. Trimming and
// validation happen in the services.

func loginForm(r *http.Request) auth.LoginInput {
	return auth.LoginInput{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
}

func registerForm(r *http.Request) auth.RegisterInput {
	return auth.RegisterInput{
		Username:        r.PostFormValue("username"),
		Password:        r.PostFormValue("password1"),
		PasswordConfirm: r.PostFormValue("password2"),
	}
}

func topicForm(r *http.Request) topic.TopicInput {
	return topic.TopicInput{
		Title:      r.PostFormValue("title"),
		Slug:       r.PostFormValue("slug"),
		SubjectID:  formInt(r, "subject"),
		Content:    r.PostFormValue("content"),
		Difficulty: r.PostFormValue("difficulty"),
	}
}

func referenceForm(r *http.Request) topic.ReferenceInput {
	return topic.ReferenceInput{
		SourceName:       r.PostFormValue("source_name"),
		URL:              r.PostFormValue("url"),
		ShortDescription: r.PostFormValue("short_description"),
	}
}

func projectForm(r *http.Request) project.ProjectInput {
	return project.ProjectInput{
		Title:            r.PostFormValue("title"),
		SubjectID:        formInt(r, "subject"),
		CategoryID:       formInt(r, "category"),
		Description:      r.PostFormValue("description"),
		ProblemStatement: r.PostFormValue("problem_statement"),
		SolutionApproach: r.PostFormValue("solution_approach"),
		TechStack:        r.PostFormValue("tech_stack"),
		GithubURL:        r.PostFormValue("github_url"),
		LiveDemoURL:      r.PostFormValue("live_demo_url"),
		Status:           r.PostFormValue("status"),
	}
}

func subjectForm(r *http.Request) taxonomy.SubjectInput {
	return taxonomy.SubjectInput{
		Name:         r.PostFormValue("name"),
		Slug:         r.PostFormValue("slug"),
		Description:  r.PostFormValue("description"),
		DisplayOrder: int(formInt(r, "display_order")),
		IsActive:     formBool(r, "is_active"),
	}
}

func categoryForm(r *http.Request) taxonomy.CategoryInput {
	return taxonomy.CategoryInput{
		Name:        r.PostFormValue("name"),
		Slug:        r.PostFormValue("slug"),
		Description: r.PostFormValue("description"),
		IsActive:    formBool(r, "is_active"),
	}
}

func setRoleForm(r *http.Request) user.SetRoleInput {
	return user.SetRoleInput{
		UserID: formInt(r, "user_id"),
		Role:   r.PostFormValue("role"),
	}
}

// parseForm reads the request body and answers 400 when it is malformed.
func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data.", http.StatusBadRequest)
		return false
	}
	return true
}
