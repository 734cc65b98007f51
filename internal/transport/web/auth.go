package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/learning-journal/internal/domain"
)

// Messages shown by the sign-in and sign-up pages.
const (
	InvalidLoginMessage = "Please enter a correct username and password. Note that both fields may be case-sensitive."
	SignupWelcome       = "Account created! Welcome to the Contributor Portal."
)

type loginPage struct {
	Username string
	Next     string
	Error    string
}

type signupPage struct {
	Username string
}

// LoginPage renders the sign-in form. Signed-in users go home.
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if domain.ActorFromCtx(r.Context()).IsAuthenticated() {
		h.redirect(w, r, "/")
		return
	}
	h.render(w, r, http.StatusOK, "login", view{
		Title: "Log in",
		Data:  loginPage{Next: r.URL.Query().Get("next")},
	})
}

// Login authenticates the form and starts a session.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if domain.ActorFromCtx(r.Context()).IsAuthenticated() {
		h.redirect(w, r, "/")
		return
	}
	if !h.parseForm(w, r) {
		return
	}

	input := loginForm(r)
	next := r.PostFormValue("next")

	u, err := h.auth.Authenticate(r.Context(), input)
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			h.render(w, r, http.StatusUnprocessableEntity, "login", view{
				Title:  "Log in",
				Errors: ve,
				Data:   loginPage{Username: input.Username, Next: next},
			})
		case errors.Is(err, domain.ErrUnauthorized):
			h.render(w, r, http.StatusUnprocessableEntity, "login", view{
				Title: "Log in",
				Data:  loginPage{Username: input.Username, Next: next, Error: InvalidLoginMessage},
			})
		default:
			h.fail(w, r, err)
		}
		return
	}

	if err := h.sessions.Login(w, r, u.ID); err != nil {
		h.fail(w, r, fmt.Errorf("save session: %w", err))
		return
	}
	h.log.InfoContext(r.Context(), "user logged in", slog.Int64("user_id", u.ID))
	h.flashRedirect(w, r, FlashSuccess, fmt.Sprintf("Welcome back, %s!", u.Username), safeNext(next))
}

// Logout ends the session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(w, r); err != nil {
		h.fail(w, r, fmt.Errorf("clear session: %w", err))
		return
	}
	h.redirect(w, r, "/")
}

// SignupPage renders the registration form. Signed-in users go home.
func (h *Handler) SignupPage(w http.ResponseWriter, r *http.Request) {
	if domain.ActorFromCtx(r.Context()).IsAuthenticated() {
		h.redirect(w, r, "/")
		return
	}
	h.render(w, r, http.StatusOK, "signup", view{Title: "Sign up", Data: signupPage{}})
}

// Signup registers an account and signs it in.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	if domain.ActorFromCtx(r.Context()).IsAuthenticated() {
		h.redirect(w, r, "/")
		return
	}
	if !h.parseForm(w, r) {
		return
	}

	input := registerForm(r)
	u, err := h.auth.Register(r.Context(), input)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			h.render(w, r, http.StatusUnprocessableEntity, "signup", view{
				Title:  "Sign up",
				Errors: ve,
				Data:   signupPage{Username: input.Username},
			})
			return
		}
		h.fail(w, r, err)
		return
	}

	if err := h.sessions.Login(w, r, u.ID); err != nil {
		h.fail(w, r, fmt.Errorf("save session: %w", err))
		return
	}
	h.flashRedirect(w, r, FlashSuccess, SignupWelcome, "/")
}
