package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	if _, ok := s.Token(); ok {
		t.Fatal("fresh store must be empty")
	}

	s.SetToken("tok123", time.Minute)
	token, ok := s.Token()
	if !ok || token != "tok123" {
		t.Fatalf("got %q (ok=%v), want tok123", token, ok)
	}

	s.Clear()
	if _, ok := s.Token(); ok {
		t.Fatal("cleared store must be empty")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore()
	s.SetToken("tok", -time.Second)
	if _, ok := s.Token(); ok {
		t.Fatal("expired token must not be returned")
	}
}

func newTestContext(t *testing.T, cookie string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		c.Request.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
	}
	return c, w
}

func TestCookieStoreReadsRequestCookie(t *testing.T) {
	c, _ := newTestContext(t, "tok123")
	s := NewCookieStore(c, false)

	token, ok := s.Token()
	if !ok || token != "tok123" {
		t.Fatalf("got %q (ok=%v), want tok123", token, ok)
	}
}

func TestCookieStoreSetToken(t *testing.T) {
	c, w := newTestContext(t, "")
	s := NewCookieStore(c, true)

	s.SetToken("tok456", DefaultTTL)

	// write is visible within the same request
	token, ok := s.Token()
	if !ok || token != "tok456" {
		t.Fatalf("pending token not visible: %q (ok=%v)", token, ok)
	}

	setCookie := w.Header().Get("Set-Cookie")
	switch {
	case !strings.Contains(setCookie, CookieName+"=tok456"):
		t.Errorf("missing token in Set-Cookie: %q", setCookie)
	case !strings.Contains(setCookie, "SameSite=Strict"):
		t.Errorf("missing SameSite=Strict: %q", setCookie)
	case !strings.Contains(setCookie, "Secure"):
		t.Errorf("missing Secure flag: %q", setCookie)
	case !strings.Contains(setCookie, "HttpOnly"):
		t.Errorf("missing HttpOnly flag: %q", setCookie)
	case !strings.Contains(setCookie, "Max-Age=604800"):
		t.Errorf("expected a 7-day Max-Age: %q", setCookie)
	}
}

func TestCookieStoreSecureOffInDevelopment(t *testing.T) {
	c, w := newTestContext(t, "")
	s := NewCookieStore(c, false)

	s.SetToken("tok", DefaultTTL)

	if strings.Contains(w.Header().Get("Set-Cookie"), "Secure") {
		t.Errorf("development cookie must not be Secure: %q", w.Header().Get("Set-Cookie"))
	}
}

func TestCookieStoreClear(t *testing.T) {
	c, w := newTestContext(t, "tok123")
	s := NewCookieStore(c, false)

	s.Clear()

	if _, ok := s.Token(); ok {
		t.Fatal("cleared store must not return the request cookie")
	}
	setCookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, CookieName+"=") || !strings.Contains(setCookie, "Max-Age=0") {
		t.Errorf("expected expiring Set-Cookie, got %q", setCookie)
	}
}
