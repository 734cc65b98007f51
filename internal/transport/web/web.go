// Package web serves the server-rendered HTML interface: public catalog
// pages, the contributor workspace, the moderation queue and the admin
// screens. Handlers translate forms into service inputs and service errors
// into redirects, flashes and error pages.
package web

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/learning-journal/internal/domain"
	"github.com/heartmarshall/learning-journal/internal/service/auth"
	"github.com/heartmarshall/learning-journal/internal/service/catalog"
	"github.com/heartmarshall/learning-journal/internal/service/project"
	"github.com/heartmarshall/learning-journal/internal/service/taxonomy"
	"github.com/heartmarshall/learning-journal/internal/service/topic"
	"github.com/heartmarshall/learning-journal/internal/service/user"
)

type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, input auth.LoginInput) (*domain.User, error)
}

type userService interface {
	ListUsers(ctx context.Context) ([]domain.UserWithProfile, error)
	SetRole(ctx context.Context, input user.SetRoleInput) error
}

type taxonomyService interface {
	NavSubjects(ctx context.Context) ([]domain.Subject, error)
	ListSubjects(ctx context.Context) ([]domain.Subject, error)
	GetSubject(ctx context.Context, id int64) (*domain.Subject, error)
	CreateSubject(ctx context.Context, input taxonomy.SubjectInput) (*domain.Subject, error)
	UpdateSubject(ctx context.Context, id int64, input taxonomy.SubjectInput) (*domain.Subject, error)
	ListCategories(ctx context.Context, subjectID int64) ([]domain.Category, error)
	CreateCategory(ctx context.Context, subjectID int64, input taxonomy.CategoryInput) (*domain.Category, error)
}

type topicService interface {
	CreateTopic(ctx context.Context, input topic.TopicInput) (*domain.Topic, error)
	UpdateTopic(ctx context.Context, id int64, input topic.TopicInput, submit bool) (*domain.Topic, error)
	SubmitTopic(ctx context.Context, id int64) (*domain.Topic, error)
	DeleteTopic(ctx context.Context, id int64) (*domain.Topic, error)
	GetForEdit(ctx context.Context, id int64) (*topic.EditView, error)
	Dashboard(ctx context.Context) (domain.Dashboard, error)
	ModerationQueue(ctx context.Context) ([]domain.Topic, error)
	ReviewTopic(ctx context.Context, id int64) (*topic.Review, error)
	ApproveTopic(ctx context.Context, id int64) (*domain.Topic, error)
	RejectTopic(ctx context.Context, id int64, feedback string) (*domain.Topic, error)
	AddReference(ctx context.Context, topicID int64, input topic.ReferenceInput) (*domain.Reference, error)
	DeleteReference(ctx context.Context, topicID, refID int64) error
}

type catalogService interface {
	Home(ctx context.Context) ([]domain.Topic, error)
	SubjectTopics(ctx context.Context, slug string) (*catalog.SubjectPage, error)
	TopicPage(ctx context.Context, subjectSlug, topicSlug string) (*catalog.TopicPage, error)
	Search(ctx context.Context, q string) (*catalog.SearchResult, error)
}

type projectService interface {
	ListBySubject(ctx context.Context, slug string) (*project.SubjectProjects, error)
	GetProject(ctx context.Context, id int64) (*domain.Project, error)
	GetForEdit(ctx context.Context, id int64) (*domain.Project, error)
	CreateProject(ctx context.Context, input project.ProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, id int64, input project.ProjectInput) (*domain.Project, error)
}

// Services bundles the business operations the pages call.
type Services struct {
	Auth     authService
	Users    userService
	Taxonomy taxonomyService
	Topics   topicService
	Catalog  catalogService
	Projects projectService
}

// Handler holds the HTML page handlers.
type Handler struct {
	auth     authService
	users    userService
	taxonomy taxonomyService
	topics   topicService
	catalog  catalogService
	projects projectService

	sessions *SessionStore
	views    *renderer
	log      *slog.Logger
}

// NewHandler parses the embedded templates and returns a Handler.
func NewHandler(logger *slog.Logger, svc Services, sessions *SessionStore) (*Handler, error) {
	views, err := newRenderer()
	if err != nil {
		return nil, err
	}
	return &Handler{
		auth:     svc.Auth,
		users:    svc.Users,
		taxonomy: svc.Taxonomy,
		topics:   svc.Topics,
		catalog:  svc.Catalog,
		projects: svc.Projects,
		sessions: sessions,
		views:    views,
		log:      logger.With("component", "web"),
	}, nil
}
