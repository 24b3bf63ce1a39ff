package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tmsdash/internal/session"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.MemoryStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store := session.NewMemoryStore()
	return New(srv.URL, store), store
}

func TestBearerInjection(t *testing.T) {
	var gotAuth, gotCustom string
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotCustom = r.Header.Get("X-Auth-Token")
		w.Write([]byte(`{}`))
	}))
	store.SetToken("tok123", 0)

	var out map[string]any
	if err := client.Get(context.Background(), "/v1/drivers", &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q, want Bearer tok123", gotAuth)
	}
	if gotCustom != "tok123" {
		t.Errorf("X-Auth-Token = %q, want tok123", gotCustom)
	}
}

func TestNoTokenNoAuthHeader(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))

	var out map[string]any
	if err := client.Get(context.Background(), "/v1/drivers", &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("unexpected Authorization header %q", gotAuth)
	}
}

func TestRequestIDHeader(t *testing.T) {
	var gotID string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}))

	var out map[string]any
	if err := client.Get(context.Background(), "/v1/drivers", &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotID == "" {
		t.Error("expected an X-Request-ID on every outbound request")
	}
}

func TestUnauthorizedClearsSession(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"detail": "Could not validate credentials"})
	}))
	store.SetToken("stale", 0)

	err := client.Get(context.Background(), "/v1/drivers", &struct{}{})
	if err == nil {
		t.Fatal("expected error for 401")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 APIError, got %v", err)
	}
	if _, ok := store.Token(); ok {
		t.Fatal("401 must clear the session store")
	}
}

func TestOtherErrorsKeepSession(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]any{"detail": "Not enough permissions"})
	}))
	store.SetToken("tok", 0)

	err := client.Get(context.Background(), "/v1/drivers", &struct{}{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusForbidden {
		t.Fatalf("expected 403 APIError, got %v", err)
	}
	if _, ok := store.Token(); !ok {
		t.Fatal("non-401 errors must not clear the session")
	}
}

func TestErrorDetailString(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "Driver already exists"}`))
	}))

	err := client.Post(context.Background(), "/v1/drivers", map[string]string{}, nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if got := apiErr.Message("fallback"); got != "Driver already exists" {
		t.Errorf("Message = %q, want server detail verbatim", got)
	}
}

func TestErrorDetailFieldErrors(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail": [
			{"loc": ["body", "license_number"], "msg": "field required"},
			{"loc": ["body", "email"], "msg": "value is not a valid email address"}
		]}`))
	}))

	err := client.Post(context.Background(), "/v1/drivers", map[string]string{}, nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	want := "body.license_number: field required, body.email: value is not a valid email address"
	if got := apiErr.Message("fallback"); got != want {
		t.Errorf("Message = %q, want %q", got, want)
	}
}

func TestErrorDetailUnknownShapeFallsBack(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": {"weird": true}}`))
	}))

	err := client.Post(context.Background(), "/v1/drivers", map[string]string{}, nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if got := apiErr.Message("Failed to create driver"); got != "Failed to create driver" {
		t.Errorf("Message = %q, want generic fallback", got)
	}
}

func TestNormalizePath(t *testing.T) {
	cases := []struct{ in, want string }{
		{"/v1/drivers", "/v1/drivers/"},
		{"/v1/drivers/", "/v1/drivers/"},
		{"/v1/drivers?skip=0&limit=10", "/v1/drivers/?skip=0&limit=10"},
		{"/v1/drivers/?skip=0", "/v1/drivers/?skip=0"},
		{"v1/drivers", "/v1/drivers/"},
		{"", "/"},
	}
	for _, tc := range cases {
		if got := normalizePath(tc.in); got != tc.want {
			t.Errorf("normalizePath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
