// Package session keeps per-client key/value data in a signed cookie.
//
// The cookie value is an HS256 JWT whose claims carry the session map. A cookie
// with a bad signature, wrong algorithm or past expiry is treated as no session.
package session

import (
	"errors"
	"time"

	"crud-tutorials/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const localsKey = "session"

type claims struct {
	Data map[string]string `json:"data"`
	jwt.RegisteredClaims
}

// Session is the mutable view of one request's session data.
type Session struct {
	values   map[string]string
	modified bool
}

func newSession() *Session {
	return &Session{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (s *Session) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key.
func (s *Session) Set(key, value string) {
	s.values[key] = value
	s.modified = true
}

// Delete removes key if present.
func (s *Session) Delete(key string) {
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	s.modified = true
}

// Clear drops every key.
func (s *Session) Clear() {
	if len(s.values) == 0 {
		return
	}
	s.values = make(map[string]string)
	s.modified = true
}

// Values returns a copy of the session data.
func (s *Session) Values() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Len returns the number of stored keys.
func (s *Session) Len() int { return len(s.values) }

// Manager signs, verifies and persists sessions.
type Manager struct {
	log        *zap.SugaredLogger
	secret     []byte
	cookieName string
	maxAge     time.Duration
	secure     bool
	now        func() time.Time
}

// NewManager builds a session manager from configuration.
func NewManager(log *zap.SugaredLogger, cfg config.SessionConfig) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, errors.New("session secret is empty")
	}
	name := cfg.CookieName
	if name == "" {
		name = "session"
	}
	return &Manager{
		log:        log.Named("session"),
		secret:     []byte(cfg.Secret),
		cookieName: name,
		maxAge:     cfg.MaxAge,
		secure:     cfg.Secure,
		now:        time.Now,
	}, nil
}

// CookieName returns the name of the session cookie.
func (m *Manager) CookieName() string { return m.cookieName }

// Middleware loads the session before the handler runs and writes it back
// only when the handler changed it.
func (m *Manager) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := m.Decode(c.Cookies(m.cookieName))
		c.Locals(localsKey, s)

		err := c.Next()
		if !s.modified {
			return err
		}
		if saveErr := m.save(c, s); saveErr != nil {
			m.log.Errorw("failed to save session", "error", saveErr)
			if err == nil {
				err = saveErr
			}
		}
		return err
	}
}

// Decode verifies a cookie value and returns its session. Any failure yields an empty session.
func (m *Manager) Decode(raw string) *Session {
	s := newSession()
	if raw == "" {
		return s
	}

	var cl claims
	_, err := jwt.ParseWithClaims(raw, &cl, m.key,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		m.log.Debugw("session cookie rejected", "error", err)
		return s
	}
	for k, v := range cl.Data {
		s.values[k] = v
	}
	return s
}

func (m *Manager) key(*jwt.Token) (any, error) { return m.secret, nil }

// Encode signs the given data into a cookie value.
func (m *Manager) Encode(values map[string]string) (string, error) {
	now := m.now()
	cl := claims{
		Data: values,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if m.maxAge > 0 {
		cl.ExpiresAt = jwt.NewNumericDate(now.Add(m.maxAge))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString(m.secret)
}

func (m *Manager) save(c *fiber.Ctx, s *Session) error {
	if len(s.values) == 0 {
		c.Cookie(&fiber.Cookie{
			Name:     m.cookieName,
			Path:     "/",
			Expires:  time.Unix(0, 0),
			HTTPOnly: true,
			Secure:   m.secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		return nil
	}

	token, err := m.Encode(s.values)
	if err != nil {
		return err
	}
	cookie := &fiber.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if m.maxAge > 0 {
		cookie.Expires = m.now().Add(m.maxAge)
	}
	c.Cookie(cookie)
	return nil
}

// FromCtx returns the request session. Outside the middleware it returns a
// detached empty session whose changes are discarded.
func FromCtx(c *fiber.Ctx) *Session {
	if s, ok := c.Locals(localsKey).(*Session); ok {
		return s
	}
	return newSession()
}
