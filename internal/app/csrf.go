package app

import (
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"
	"golang.org/x/crypto/hkdf"

	"github.com/heartmarshall/learning-journal/internal/config"
	"github.com/heartmarshall/learning-journal/internal/transport/middleware"
)

const (
	csrfCookieName = "journal_csrf"
	csrfFieldName  = "csrfmiddlewaretoken"
)

// csrfKey derives the 32-byte CSRF authentication key from the session
// secret so the two never share key material.
func csrfKey(secret string) ([]byte, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte("learning-journal csrf")), key); err != nil {
		return nil, fmt.Errorf("app: derive csrf key: %w", err)
	}
	return key, nil
}

// csrfProtect rejects unsafe requests without a valid token. Without
// secure cookies (local development over plain HTTP) requests are marked as
// plaintext so the referer check does not demand HTTPS.
func csrfProtect(cfg *config.Config, logger *slog.Logger) (middleware.Middleware, error) {
	key, err := csrfKey(cfg.Session.Secret)
	if err != nil {
		return nil, err
	}

	secure := cfg.SecureCookies()
	opts := []csrf.Option{
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.HttpOnly(true),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.CookieName(csrfCookieName),
		csrf.FieldName(csrfFieldName),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reason := "unknown"
			if err := csrf.FailureReason(r); err != nil {
				reason = err.Error()
			}
			logger.WarnContext(r.Context(), "csrf check failed",
				slog.String("path", r.URL.Path),
				slog.String("reason", reason),
			)
			http.Error(w, "Forbidden (CSRF token missing or incorrect).", http.StatusForbidden)
		})),
	}
	if cfg.Session.Domain != "" {
		opts = append(opts, csrf.Domain(cfg.Session.Domain))
	}
	protect := csrf.Protect(key, opts...)

	return func(next http.Handler) http.Handler {
		h := protect(next)
		if secure {
			return h
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}, nil
}
