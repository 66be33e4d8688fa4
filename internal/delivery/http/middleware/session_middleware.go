package middleware

import (
	"context"
	"errors"
	"net/http"

	"hospital-portal/config"
	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/domain/repository"
	"hospital-portal/pkg/jwt"
	"hospital-portal/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKey string

const SessionKey contextKey = "session"

// MsgSessionExpired is flashed after an authenticated role lost its token.
const MsgSessionExpired = "Session expired or invalid login. Please log in again."

type SessionMiddleware struct {
	log      *logrus.Logger
	repo     repository.SessionRepository
	tokens   *jwt.TokenInspector
	settings config.SessionConfig
}

func NewSessionMiddleware(
	log *logrus.Logger,
	repo repository.SessionRepository,
	tokens *jwt.TokenInspector,
	settings config.SessionConfig,
) *SessionMiddleware {
	return &SessionMiddleware{
		log:      log,
		repo:     repo,
		tokens:   tokens,
		settings: settings,
	}
}

// Load attaches the visitor's session to the request context and persists it
// once the handler returns. A session whose role requires a token but has
// none (or an expired JWT) is cleared and the visitor is sent to the landing page.
func (m *SessionMiddleware) Load(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := m.find(r)
		m.setCookie(w, sess.ID)

		if token, ok := sess.GetToken(); ok && m.tokens.Expired(token) {
			m.log.WithField("session_id", sess.ID).Info("Session token expired")
			sess.Token = ""
		}

		if err := sess.Validate(); err != nil {
			sess.Clear()
			sess.Flash = MsgSessionExpired
			m.save(r.Context(), sess)

			if r.Method == http.MethodGet && r.URL.Path == LandingPath && !IsScripted(r) {
				next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
				m.persist(r.Context(), sess)
				return
			}
			redirectToLanding(w, r, MsgSessionExpired)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		m.persist(r.Context(), sess)
	})
}

func (m *SessionMiddleware) find(r *http.Request) *entity.Session {
	cookie, err := r.Cookie(m.settings.CookieName)
	if err != nil || cookie.Value == "" {
		return entity.NewSession(uuid.NewString())
	}

	sess, err := m.repo.Find(r.Context(), cookie.Value)
	if err != nil {
		if !errors.Is(err, entity.ErrSessionNotFound) {
			m.log.WithError(err).Warn("Failed to load session")
		}
		return entity.NewSession(cookie.Value)
	}
	return sess
}

// persist stores the session after the handler ran, or removes it when the handler ended it.
func (m *SessionMiddleware) persist(ctx context.Context, sess *entity.Session) {
	if !sess.Ended() {
		m.save(ctx, sess)
		return
	}
	if err := m.repo.Delete(context.WithoutCancel(ctx), sess.ID); err != nil {
		m.log.WithError(err).WithField("session_id", sess.ID).Error("Failed to delete session")
	}
}

func (m *SessionMiddleware) save(ctx context.Context, sess *entity.Session) {
	if err := m.repo.Save(context.WithoutCancel(ctx), sess); err != nil {
		m.log.WithError(err).WithField("session_id", sess.ID).Error("Failed to save session")
	}
}

func (m *SessionMiddleware) setCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.settings.CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(m.settings.TTL.Seconds()),
		HttpOnly: true,
		Secure:   m.settings.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// LandingPath is where visitors without a usable session end up
const LandingPath = "/"

// Headers the page script sets on every fetch
const (
	HeaderRequestSeq    = "X-Request-Seq"
	HeaderRequestedWith = "X-Requested-With"
	scriptedRequest     = "XMLHttpRequest"
)

// IsScripted reports whether r came from the page script rather than a
// browser navigation. Scripted calls never get a 303, since fetch would follow
// it and inject the target page.
func IsScripted(r *http.Request) bool {
	return r.Method != http.MethodGet ||
		r.Header.Get(HeaderRequestSeq) != "" ||
		r.Header.Get(HeaderRequestedWith) == scriptedRequest
}

// redirectToLanding sends page loads to the landing page and answers
// scripted calls with a JSON redirect the page script follows.
func redirectToLanding(w http.ResponseWriter, r *http.Request, message string) {
	if !IsScripted(r) {
		http.Redirect(w, r, LandingPath, http.StatusSeeOther)
		return
	}
	response.ErrorRedirect(w, http.StatusUnauthorized, message, LandingPath)
}

func WithSession(ctx context.Context, sess *entity.Session) context.Context {
	return context.WithValue(ctx, SessionKey, sess)
}

// GetSessionFromContext extracts the session set by SessionMiddleware
func GetSessionFromContext(ctx context.Context) (*entity.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(*entity.Session)
	return sess, ok
}
