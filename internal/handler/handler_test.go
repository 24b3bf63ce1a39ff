package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"tmsdash/internal/config"
	"tmsdash/internal/guard"
	"tmsdash/internal/model"
	"tmsdash/internal/session"

	"github.com/gin-gonic/gin"
)

// fakeTMS is a minimal upstream API: login, profile and a drivers collection
type fakeTMS struct {
	meCalls int32
	drivers []model.Driver
}

func (f *fakeTMS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/v1/auth/login-json/" && r.Method == http.MethodPost:
		var creds map[string]string
		json.NewDecoder(r.Body).Decode(&creds)
		if creds["password"] != "secret1" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"detail": "Incorrect email or password"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok123",
			"token_type":   "bearer",
			"user": map[string]any{
				"id": 1, "email": creds["username_or_email"], "role": "dispatcher",
				"permissions": map[string]bool{"can_view_drivers": true, "can_manage_drivers": true},
			},
		})

	case r.URL.Path == "/v1/users/me/":
		atomic.AddInt32(&f.meCalls, 1)
		if r.Header.Get("Authorization") != "Bearer tok123" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"detail": "Could not validate credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id": 1, "email": "d@b.com", "role": "dispatcher",
			"permissions": map[string]bool{"can_view_drivers": true, "can_manage_drivers": true},
		})

	case r.URL.Path == "/v1/drivers/" && r.Method == http.MethodGet:
		json.NewEncoder(w).Encode(f.drivers)

	case r.URL.Path == "/v1/drivers/" && r.Method == http.MethodPost:
		var d model.Driver
		json.NewDecoder(r.Body).Decode(&d)
		d.ID = len(f.drivers) + 1
		f.drivers = append(f.drivers, d)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(d)

	default:
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"detail": "Not Found"})
	}
}

func newDashboard(t *testing.T, tms *fakeTMS) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(tms)
	t.Cleanup(srv.Close)

	deps := NewDeps(config.Config{UpstreamOrigin: srv.URL, APIBasePath: ""})
	g := guard.New(func(c *gin.Context) *model.User {
		return deps.Scope(c).Auth.CurrentUser(c.Request.Context())
	})

	router := gin.New()
	api := router.Group("/api/v1")
	NewAuthHandler(deps).RegisterRoutes(api)
	NewNavHandler().RegisterRoutes(api, g)
	RegisterResources(api, deps, g)
	return router
}

func do(router *gin.Engine, method, path, body, cookie string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	}
	router.ServeHTTP(w, req)
	return w
}

func TestLoginSetsSessionCookie(t *testing.T) {
	router := newDashboard(t, &fakeTMS{})

	w := do(router, http.MethodPost, "/api/v1/auth/login", `{"email":"a@b.com","password":"secret1"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	setCookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, session.CookieName+"=tok123") {
		t.Fatalf("expected session cookie, got %q", setCookie)
	}
	if !strings.Contains(setCookie, "SameSite=Strict") {
		t.Errorf("expected SameSite=Strict, got %q", setCookie)
	}
}

func TestLoginFailureSurfacesDetail(t *testing.T) {
	router := newDashboard(t, &fakeTMS{})

	w := do(router, http.MethodPost, "/api/v1/auth/login", `{"email":"a@b.com","password":"wrong"}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Incorrect email or password") {
		t.Errorf("expected verbatim upstream detail, got %s", w.Body.String())
	}
}

func TestMeAnonymousReturnsNullWithoutNetwork(t *testing.T) {
	tms := &fakeTMS{}
	router := newDashboard(t, tms)

	w := do(router, http.MethodGet, "/api/v1/auth/me", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"data":null`) {
		t.Errorf("expected explicit null data, got %s", w.Body.String())
	}
	if n := atomic.LoadInt32(&tms.meCalls); n != 0 {
		t.Fatalf("anonymous me must not call upstream, got %d calls", n)
	}
}

func TestGuardedResourceRequiresSession(t *testing.T) {
	router := newDashboard(t, &fakeTMS{})

	if w := do(router, http.MethodGet, "/api/v1/drivers", "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous list: status = %d", w.Code)
	}
	if w := do(router, http.MethodGet, "/api/v1/drivers", "", "bogus"); w.Code != http.StatusUnauthorized {
		t.Fatalf("stale token list: status = %d", w.Code)
	}
}

func TestResourceCRUDThroughShell(t *testing.T) {
	tms := &fakeTMS{}
	router := newDashboard(t, tms)

	w := do(router, http.MethodPost, "/api/v1/drivers", `{"name":"Ana","license_number":"CDL-1"}`, "tok123")
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Driver created successfully") {
		t.Errorf("expected toast message in envelope, got %s", w.Body.String())
	}

	w = do(router, http.MethodGet, "/api/v1/drivers?page=1&limit=10", "", "tok123")
	if w.Code != http.StatusOK {
		t.Fatalf("list: status = %d, body = %s", w.Code, w.Body.String())
	}
	var envelope struct {
		Data struct {
			Items []model.Driver `json:"items"`
			Total int            `json:"total"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(envelope.Data.Items) != 1 || envelope.Data.Items[0].Name != "Ana" {
		t.Fatalf("created driver missing from list: %+v", envelope.Data)
	}
}

func TestForbiddenResourceForLimitedRole(t *testing.T) {
	// upstream profile grants driver-management perms only; customers must 403
	router := newDashboard(t, &fakeTMS{})

	w := do(router, http.MethodGet, "/api/v1/customers", "", "tok123")
	if w.Code != http.StatusForbidden {
		t.Fatalf("customers list: status = %d, want 403", w.Code)
	}
}

func TestNavFilteredByPermissions(t *testing.T) {
	router := newDashboard(t, &fakeTMS{})

	w := do(router, http.MethodGet, "/api/v1/nav", "", "tok123")
	if w.Code != http.StatusOK {
		t.Fatalf("nav: status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Drivers") {
		t.Errorf("expected Drivers entry, got %s", body)
	}
	if strings.Contains(body, "Invoices") {
		t.Errorf("Invoices must be filtered out for this user, got %s", body)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	router := newDashboard(t, &fakeTMS{})

	w := do(router, http.MethodPost, "/api/v1/auth/logout", "", "tok123")
	if w.Code != http.StatusOK {
		t.Fatalf("logout: status = %d", w.Code)
	}
	setCookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, session.CookieName+"=") || !strings.Contains(setCookie, "Max-Age=0") {
		t.Errorf("expected expiring session cookie, got %q", setCookie)
	}
}
