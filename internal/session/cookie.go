package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CookieStore binds a Store to one request/response pair. Reads come from the
// request cookie; writes go to Set-Cookie on the response. A write within a
// request is visible to later reads in the same request.
type CookieStore struct {
	c       *gin.Context
	secure  bool
	pending string
	cleared bool
}

// NewCookieStore wraps the given request context. secure controls the Secure
// cookie attribute and should be true in release builds.
func NewCookieStore(c *gin.Context, secure bool) *CookieStore {
	return &CookieStore{c: c, secure: secure}
}

func (s *CookieStore) Token() (string, bool) {
	if s.cleared {
		return "", false
	}
	if s.pending != "" {
		return s.pending, true
	}
	token, err := s.c.Cookie(CookieName)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

func (s *CookieStore) SetToken(token string, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s.pending = token
	s.cleared = false
	s.c.SetSameSite(http.SameSiteStrictMode)
	s.c.SetCookie(CookieName, token, int(ttl/time.Second), "/", "", s.secure, true)
}

func (s *CookieStore) Clear() {
	s.pending = ""
	s.cleared = true
	s.c.SetSameSite(http.SameSiteStrictMode)
	s.c.SetCookie(CookieName, "", -1, "/", "", s.secure, true)
}
