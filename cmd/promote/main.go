// Command promote sets a user's role by username. It is used to bootstrap
// the first admin account.
//
// Usage:
//
//	promote --username=alice --role=admin
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/learning-journal/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/learning-journal/internal/adapter/postgres/audit"
	userrepo "github.com/heartmarshall/learning-journal/internal/adapter/postgres/user"
	"github.com/heartmarshall/learning-journal/internal/app"
	"github.com/heartmarshall/learning-journal/internal/config"
	"github.com/heartmarshall/learning-journal/internal/domain"
	"github.com/heartmarshall/learning-journal/internal/service/user"
)

func main() {
	username := flag.String("username", "", "username of the account to change")
	role := flag.String("role", string(domain.RoleAdmin), "new role: admin, moderator, contributor or reader")
	flag.Parse()

	if *username == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --username=alice [--role=admin]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log, os.Stderr)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := user.NewService(logger, userrepo.New(pool), auditrepo.New(pool), postgres.NewTxManager(pool))

	u, err := svc.AssignRole(ctx, *username, domain.Role(*role))
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			fmt.Fprintln(os.Stderr, ve.Messages())
		case errors.Is(err, domain.ErrNotFound):
			fmt.Fprintf(os.Stderr, "No user named %q.\n", *username)
		default:
			logger.Error("assign role", slog.String("error", err.Error()))
		}
		os.Exit(1)
	}

	fmt.Printf("User %q is now %s.\n", u.Username, domain.Role(*role).Label())
}
