package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"compass-backend/pkg/token"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const (
	// CookieName carries the session token.
	CookieName = "compass_session"

	sessionCtxKey = "session"
	keyPrefix     = "session:"
)

var ErrNoSession = errors.New("session not found")

// Session is the identity carried by a logged-in request. Handlers read
// it from the echo context, never from ambient state.
type Session struct {
	UserID uint64 `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func (s Session) IsAdmin() bool { return s.Role == "ADMIN" }

// Store keeps session records in redis under session:<token> with a TTL.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Issue creates a new session record and returns its token.
func (s *Store) Issue(ctx context.Context, sess Session) (string, error) {
	tok := token.New()
	raw, err := json.Marshal(sess)
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, keyPrefix+tok, raw, s.ttl).Err(); err != nil {
		return "", err
	}
	return tok, nil
}

func (s *Store) Get(ctx context.Context, token string) (*Session, error) {
	raw, err := s.rdb.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *Store) Destroy(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}

// TTL is the cookie lifetime matching the redis expiry.
func (s *Store) TTL() time.Duration { return s.ttl }

// Cookie builds the session cookie; an empty token expires it.
func Cookie(token string, ttl time.Duration) *http.Cookie {
	c := &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl / time.Second),
	}
	if token == "" {
		c.MaxAge = -1
	}
	return c
}

// LoadSession resolves the session cookie into a Session on the echo
// context. Missing or expired sessions are not an error here; guards
// decide below.
func LoadSession(store *Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			sess, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				// Expired token: clear the stale cookie and continue
				// anonymous.
				if errors.Is(err, ErrNoSession) {
					c.SetCookie(Cookie("", 0))
					return next(c)
				}
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "session store unavailable"})
			}
			c.Set(sessionCtxKey, sess)
			return next(c)
		}
	}
}

// CurrentSession returns the request's session, or nil when anonymous.
func CurrentSession(c echo.Context) *Session {
	if s, ok := c.Get(sessionCtxKey).(*Session); ok {
		return s
	}
	return nil
}

func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentSession(c) == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
		}
		return next(c)
	}
}

func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := CurrentSession(c)
		if sess == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
		}
		if !sess.IsAdmin() {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "admin only"})
		}
		return next(c)
	}
}
