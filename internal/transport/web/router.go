package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/learning-journal/internal/domain"
	"github.com/heartmarshall/learning-journal/internal/transport/middleware"
)

// Routes returns the page routes. throttle guards the credential forms;
// the caller supplies request-wide middleware (session actor, CSRF).
func (h *Handler) Routes(throttle middleware.Middleware) chi.Router {
	r := chi.NewRouter()
	r.NotFound(h.notFound)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	forbidden := http.HandlerFunc(h.forbidden)
	guard := func(roles ...domain.Role) middleware.Middleware {
		return middleware.Chain(middleware.NoCache, middleware.RequireRoles(forbidden, roles...))
	}

	// Public catalog.
	r.Group(func(r chi.Router) {
		r.Use(middleware.NoCache)
		r.Get("/", h.Home)
		r.Get("/search/", h.Search)
		r.Get("/subject/{slug}/", h.SubjectTopics)
		r.Get("/subject/{slug}/projects/", h.SubjectProjects)
		r.Get("/subject/{slug}/{topic}/", h.TopicDetail)
		r.Get("/projects/{id}/", h.ProjectDetail)
	})

	// Credentials.
	r.Group(func(r chi.Router) {
		r.Use(middleware.NoCache)
		r.Get("/login/", h.LoginPage)
		r.With(throttle).Post("/login/", h.Login)
		r.Get("/signup/", h.SignupPage)
		r.With(throttle).Post("/signup/", h.Signup)
		r.Get("/logout/", h.Logout)
		r.Post("/logout/", h.Logout)
	})

	// Any signed-in user may delete their own topics.
	r.With(guard(domain.AllRoles()...)).Post("/topic/{id}/delete/", h.DeleteTopic)

	r.Group(func(r chi.Router) {
		r.Use(guard(domain.ContributorRoles...))
		r.Get("/dashboard/", h.Dashboard)
		r.Get("/topic/new/", h.NewTopicPage)
		r.Post("/topic/new/", h.CreateTopic)
		r.Get("/topic/{id}/edit/", h.EditTopicPage)
		r.Post("/topic/{id}/edit/", h.UpdateTopic)
		r.Post("/topic/{id}/submit/", h.SubmitTopic)
		r.Post("/topic/{id}/references/", h.AddReference)
		r.Post("/topic/{id}/references/{ref}/delete/", h.DeleteReference)
		r.Get("/projects/new/", h.NewProjectPage)
		r.Post("/projects/new/", h.CreateProject)
		r.Get("/projects/{id}/edit/", h.EditProjectPage)
		r.Post("/projects/{id}/edit/", h.UpdateProject)
	})

	r.Group(func(r chi.Router) {
		r.Use(guard(domain.ModeratorRoles...))
		r.Get("/moderate/", h.ModerationQueue)
		r.Get("/moderate/review/{id}/", h.ReviewTopic)
		r.Post("/moderate/approve/{id}/", h.ApproveTopic)
		r.Post("/moderate/reject/{id}/", h.RejectTopic)
	})

	r.Group(func(r chi.Router) {
		r.Use(guard(domain.AdminRoles...))
		r.Get("/admin/subjects/", h.AdminSubjects)
		r.Get("/admin/subjects/new/", h.NewSubjectPage)
		r.Post("/admin/subjects/new/", h.CreateSubject)
		r.Get("/admin/subjects/{id}/edit/", h.EditSubjectPage)
		r.Post("/admin/subjects/{id}/edit/", h.UpdateSubject)
		r.Get("/admin/subjects/{id}/categories/", h.SubjectCategories)
		r.Post("/admin/subjects/{id}/categories/", h.CreateCategory)
		r.Get("/admin/users/", h.AdminUsers)
		r.Post("/admin/users/", h.SetRole)
	})

	return r
}
