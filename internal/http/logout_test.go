package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"zahab/internal/domain"
)

// Logging out must clear the stored session even when the backend refuses
// the token revocation.
func TestLogoutClearsSessionDespiteBackendFailure(t *testing.T) {
	var gotAuth atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete && r.URL.Path == "/api/v1/admin/logout" {
			gotAuth.Store(r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	env := newApp(t, srv.URL)
	if err := env.store.Save("sid-out", "tok-abc", domain.AdminUser{Username: "amira", Role: "ADMIN"}); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("POST", "/admin/logout", nil)
	withSID(req, "sid-out")
	resp, err := env.app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/admin/login" {
		t.Fatalf("expected redirect to /admin/login, got %q", loc)
	}

	if got, _ := gotAuth.Load().(string); got != "Bearer tok-abc" {
		t.Fatalf("revocation attempt should carry the token, got %q", got)
	}

	rec, err := env.store.Load("sid-out")
	if err != nil {
		t.Fatal(err)
	}
	if rec != nil {
		t.Fatal("session row should be gone after logout")
	}
	if u, _ := env.sess.Current("sid-out"); u != nil {
		t.Fatal("session should resolve unauthenticated after logout")
	}
}
