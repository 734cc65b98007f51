package web

import (
	"encoding/gob"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"

	"github.com/heartmarshall/learning-journal/internal/config"
)

// Flash levels map to alert styles in the layout.
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashError   = "error"
)

const (
	userIDKey = "user_id"
	flashKey  = "_flash"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Level   string
	Message string
}

func init() {
	gob.Register(Flash{})
}

// SessionStore keeps the signed-in user id and pending flashes in a signed
// cookie. The cookie has no Max-Age, so it ends with the browser session.
type SessionStore struct {
	store *sessions.CookieStore
	name  string
	log   *slog.Logger
}

// NewSessionStore creates the cookie store. secure sets the Secure flag.
func NewSessionStore(cfg config.SessionConfig, secure bool, logger *slog.Logger) *SessionStore {
	store := sessions.NewCookieStore([]byte(cfg.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		Domain:   cfg.Domain,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionStore{store: store, name: cfg.CookieName, log: logger}
}

// session returns the request's session. A cookie that no longer decodes
// (for example after a secret rotation) yields a fresh, empty session.
func (s *SessionStore) session(r *http.Request) *sessions.Session {
	sess, err := s.store.Get(r, s.name)
	if err != nil {
		var cerr securecookie.Error
		if errors.As(err, &cerr) && cerr.IsDecode() {
			s.log.DebugContext(r.Context(), "discarding undecodable session cookie")
		} else {
			s.log.WarnContext(r.Context(), "load session", slog.String("error", err.Error()))
		}
	}
	return sess
}

// UserID returns the signed-in user id, if any.
func (s *SessionStore) UserID(r *http.Request) (int64, bool) {
	id, ok := s.session(r).Values[userIDKey].(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

// Login records userID as signed in.
func (s *SessionStore) Login(w http.ResponseWriter, r *http.Request, userID int64) error {
	sess := s.session(r)
	sess.Values[userIDKey] = userID
	return sess.Save(r, w)
}

// Logout forgets the signed-in user. Pending flashes survive.
func (s *SessionStore) Logout(w http.ResponseWriter, r *http.Request) error {
	sess := s.session(r)
	delete(sess.Values, userIDKey)
	return sess.Save(r, w)
}

// AddFlash queues a message for the next page.
func (s *SessionStore) AddFlash(w http.ResponseWriter, r *http.Request, level, message string) {
	sess := s.session(r)
	sess.AddFlash(Flash{Level: level, Message: message}, flashKey)
	if err := sess.Save(r, w); err != nil {
		s.log.WarnContext(r.Context(), "save flash", slog.String("error", err.Error()))
	}
}

// Flashes pops the queued messages.
func (s *SessionStore) Flashes(w http.ResponseWriter, r *http.Request) []Flash {
	sess := s.session(r)
	raw := sess.Flashes(flashKey)
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(r, w); err != nil {
		s.log.WarnContext(r.Context(), "clear flashes", slog.String("error", err.Error()))
	}

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}
