package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/learning-journal/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/learning-journal/internal/adapter/postgres/audit"
	projectrepo "github.com/heartmarshall/learning-journal/internal/adapter/postgres/project"
	subjectrepo "github.com/heartmarshall/learning-journal/internal/adapter/postgres/subject"
	topicrepo "github.com/heartmarshall/learning-journal/internal/adapter/postgres/topic"
	userrepo "github.com/heartmarshall/learning-journal/internal/adapter/postgres/user"
	"github.com/heartmarshall/learning-journal/internal/config"
	"github.com/heartmarshall/learning-journal/internal/service/auth"
	"github.com/heartmarshall/learning-journal/internal/service/catalog"
	"github.com/heartmarshall/learning-journal/internal/service/project"
	"github.com/heartmarshall/learning-journal/internal/service/taxonomy"
	"github.com/heartmarshall/learning-journal/internal/service/topic"
	"github.com/heartmarshall/learning-journal/internal/service/user"
	"github.com/heartmarshall/learning-journal/internal/transport/middleware"
	"github.com/heartmarshall/learning-journal/internal/transport/rest"
	"github.com/heartmarshall/learning-journal/internal/transport/web"
)

type container struct {
	pages web.Services
	users *user.Service
}

// newServices builds every business service over pool.
func newServices(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) container {
	tx := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	subjects := subjectrepo.New(pool)
	topics := topicrepo.New(pool)
	projects := projectrepo.New(pool)
	audit := auditrepo.New(pool)

	userSvc := user.NewService(logger, users, audit, tx)
	return container{
		users: userSvc,
		pages: web.Services{
			Auth:     auth.NewService(logger, users, tx, cfg.Auth),
			Users:    userSvc,
			Taxonomy: taxonomy.NewService(logger, subjects, audit, tx),
			Topics:   topic.NewService(logger, topics, subjects, audit, tx),
			Catalog:  catalog.NewService(logger, topics, subjects),
			Projects: project.NewService(logger, projects, subjects, audit, tx),
		},
	}
}

// NewHTTPHandler assembles the full HTTP stack. The returned cleanup stops
// background workers.
func NewHTTPHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (http.Handler, func(), error) {
	svc := newServices(cfg, pool, logger)

	sessions := web.NewSessionStore(cfg.Session, cfg.SecureCookies(), logger)
	pages, err := web.NewHandler(logger, svc.pages, sessions)
	if err != nil {
		return nil, nil, fmt.Errorf("app: templates: %w", err)
	}

	protect, err := csrfProtect(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	health := rest.NewHealthHandler(BuildVersion(),
		rest.Check{Name: "database", Probe: func(ctx context.Context) (string, error) {
			return "", pool.Ping(ctx)
		}},
		rest.Check{Name: "schema", Probe: func(ctx context.Context) (string, error) {
			current, latest, err := postgres.SchemaVersion(ctx, pool)
			if err != nil {
				return "", err
			}
			if current < latest {
				return "", fmt.Errorf("schema at version %d, binary expects %d", current, latest)
			}
			return fmt.Sprintf("version %d", current), nil
		}},
	)

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID(),
		clientAddr(cfg.Server.TrustProxy),
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)
	health.Routes(r)
	r.Group(func(r chi.Router) {
		r.Use(protect, middleware.Actor(sessions, svc.users, logger))
		r.Mount("/", pages.Routes(limiter.Limit(cfg.Auth.LoginRatePerMinute)))
	})

	return r, limiter.Stop, nil
}

// clientAddr honours X-Forwarded-For and X-Real-IP only behind a trusted
// proxy. Otherwise clients could pick their own login throttle bucket.
func clientAddr(trustProxy bool) middleware.Middleware {
	if trustProxy {
		return chimw.RealIP
	}
	return func(next http.Handler) http.Handler { return next }
}
