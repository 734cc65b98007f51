//go:build e2e

package e2e_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/learning-journal/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/learning-journal/internal/app"
	"github.com/heartmarshall/learning-journal/internal/config"
	"github.com/heartmarshall/learning-journal/internal/domain"
)

const testPassword = "correct-horse-battery"

var csrfInput = regexp.MustCompile(`name="csrfmiddlewaretoken" value="([^"]+)"`)

type testServer struct {
	URL  string
	Pool *pgxpool.Pool
}

// setupTestServer runs the full HTTP stack against a migrated test database.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	cfg := &config.Config{
		Server:  config.ServerConfig{Debug: true},
		Session: config.SessionConfig{Secret: "e2e-session-secret-e2e-session-secret", CookieName: "journal_session"},
		Auth:    config.AuthConfig{PasswordHashCost: 4, LoginRatePerMinute: 1000},
		Audit:   config.AuditConfig{RetentionDays: 30},
		Log:     config.LogConfig{Level: "error", Format: "text"},
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	handler, cleanup, err := app.NewHTTPHandler(cfg, pool, logger)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Pool: pool}
}

// browser is a cookie-keeping client that does not follow redirects.
type browser struct {
	t      *testing.T
	ts     *testServer
	client *http.Client
}

func (ts *testServer) newBrowser(t *testing.T) *browser {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &browser{
		t:  t,
		ts: ts,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// get fetches path and returns the status, Location header and body.
func (b *browser) get(path string) (int, string, string) {
	b.t.Helper()
	resp, err := b.client.Get(b.ts.URL + path)
	require.NoError(b.t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(b.t, err)
	return resp.StatusCode, resp.Header.Get("Location"), string(body)
}

// csrfToken loads formPath and extracts the token from its form.
func (b *browser) csrfToken(formPath string) string {
	b.t.Helper()
	status, _, body := b.get(formPath)
	require.Equal(b.t, http.StatusOK, status, "GET %s", formPath)
	m := csrfInput.FindStringSubmatch(body)
	require.NotNil(b.t, m, "no csrf field on %s", formPath)
	return m[1]
}

// post submits form to path with a token taken from tokenPage.
func (b *browser) post(tokenPage, path string, form url.Values) (int, string, string) {
	b.t.Helper()
	if form == nil {
		form = url.Values{}
	}
	if tokenPage != "" {
		form.Set("csrfmiddlewaretoken", b.csrfToken(tokenPage))
	}
	resp, err := b.client.PostForm(b.ts.URL+path, form)
	require.NoError(b.t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(b.t, err)
	return resp.StatusCode, resp.Header.Get("Location"), string(body)
}

// signup registers username through the form and leaves the browser signed in.
func (b *browser) signup(username string) {
	b.t.Helper()
	status, loc, body := b.post("/signup/", "/signup/", url.Values{
		"username":  {username},
		"password1": {testPassword},
		"password2": {testPassword},
	})
	require.Equal(b.t, http.StatusSeeOther, status, body)
	require.Equal(b.t, "/", loc)
}

// setRole changes a user's role directly in the database.
func (ts *testServer) setRole(t *testing.T, username string, role domain.Role) {
	t.Helper()
	tag, err := ts.Pool.Exec(context.Background(),
		`UPDATE profiles SET role = $1 WHERE user_id = (SELECT id FROM users WHERE username = $2)`,
		string(role), username)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
}

func uniqueName(prefix string) string {
	return prefix + "-" + strings.ToLower(testhelper.UniqueSuffix())
}
