package middleware

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

// LoginPath is where anonymous visitors of guarded pages are sent.
const LoginPath = "/login/"

// RequireRoles guards a route group. Anonymous visitors are redirected to
// LoginPath, with a next parameter only for GET requests since a form post
// cannot be replayed after login. Signed-in users without one of roles get
// the forbidden handler.
func RequireRoles(forbidden http.Handler, roles ...domain.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			err := domain.Authorize(domain.ActorFromCtx(r.Context()), roles...)
			switch {
			case err == nil:
				next.ServeHTTP(w, r)
			case errors.Is(err, domain.ErrUnauthorized):
				back := ""
				if r.Method == http.MethodGet {
					back = r.URL.RequestURI()
				}
				http.Redirect(w, r, LoginURL(back), http.StatusSeeOther)
			default:
				forbidden.ServeHTTP(w, r)
			}
		})
	}
}

// LoginURL returns the login page address that returns to next afterwards.
func LoginURL(next string) string {
	if next == "" || next == "/" {
		return LoginPath
	}
	return LoginPath + "?" + url.Values{"next": {next}}.Encode()
}
