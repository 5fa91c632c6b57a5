package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"zahab/internal/domain"
)

func TestAdminGuardRedirectsAnonymous(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	env := newApp(t, srv.URL)

	resp, err := env.app.Test(httptest.NewRequest("GET", "/admin/", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/admin/login" {
		t.Fatalf("expected /admin/login, got %q", loc)
	}
}

func TestAdminGuardAcceptsStoredSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	env := newApp(t, srv.URL)
	if err := env.store.Save("sid-admin", "tok-1", domain.AdminUser{Username: "amira", Role: "ADMIN"}); err != nil {
		t.Fatal(err)
	}

	// No backend round-trip: the stored token alone authenticates.
	req := httptest.NewRequest("GET", "/admin/", nil)
	withSID(req, "sid-admin")
	resp, err := env.app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for stored session, got %d", resp.StatusCode)
	}
}

func TestLoginScreenRedirectsWhenAuthed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	env := newApp(t, srv.URL)
	if err := env.store.Save("sid-in", "tok-2", domain.AdminUser{Username: "amira", Role: "ADMIN"}); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("GET", "/admin/login", nil)
	withSID(req, "sid-in")
	resp, err := env.app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/admin" {
		t.Fatalf("expected /admin, got %q", loc)
	}
}

func TestLoginFailureRendersBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/api/v1/admin/login" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"status":{"description":"Invalid username or password"}}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	env := newApp(t, srv.URL)

	req := httptest.NewRequest("POST", "/admin/login", strings.NewReader("username=amira&password=wrong"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	withSID(req, "sid-try")

	resp, err := env.app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	page, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(page), "Invalid username or password") {
		t.Fatalf("backend message missing from login page:\n%s", page)
	}
	if u, _ := env.sess.Current("sid-try"); u != nil {
		t.Fatal("failed login must not create a session")
	}
}
