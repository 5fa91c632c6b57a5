package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestSuggestReturnsMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/items/search" {
			if got := r.URL.Query().Get("name"); got != "ring" {
				t.Errorf("expected name=ring, got %q", got)
			}
			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, `{
				"content": [{"id":1,"code":"RING-001","name":"Gold Ring","nameAr":"خاتم ذهب","priceBeforeDiscount":250.000,"stock":3,"active":true}],
				"page": {"size":8,"number":0,"totalElements":1,"totalPages":1}
			}`)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	env := newApp(t, srv.URL)

	req := httptest.NewRequest("GET", "/api/suggest?q=ring", nil)
	withSID(req, "sid-suggest")
	resp, err := env.app.Test(req, 2000)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `"code":"RING-001"`) {
		t.Fatalf("suggestion missing: %s", body)
	}
	if !strings.Contains(string(body), `"price":"250"}`) {
		t.Fatalf("price should be the effective price string: %s", body)
	}
}

// A superseded request's handler returns while the replaced query may still
// be running; the stale run must finish quietly on its own context and only
// the newest query's result may come back with content.
func TestSuggestBurstSupersedesOlderRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/items/search" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		time.Sleep(150 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"content": [{"id":1,"code":"RING-001","name":"Gold Ring","priceBeforeDiscount":250,"stock":3,"active":true}],
			"page": {"size":8,"number":0,"totalElements":1,"totalPages":1}
		}`)
	}))
	defer srv.Close()

	env := newApp(t, srv.URL)

	first := make(chan int, 1)
	go func() {
		req := httptest.NewRequest("GET", "/api/suggest?q=gold", nil)
		withSID(req, "sid-burst")
		resp, err := env.app.Test(req, 5000)
		if err != nil {
			first <- -1
			return
		}
		first <- resp.StatusCode
	}()

	// Let the first query's delay elapse so its remote call is in flight.
	time.Sleep(50 * time.Millisecond)

	req := httptest.NewRequest("GET", "/api/suggest?q=golden", nil)
	withSID(req, "sid-burst")
	resp, err := env.app.Test(req, 5000)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("newest query should answer 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `"code":"RING-001"`) {
		t.Fatalf("newest query lost its result: %s", body)
	}

	if got := <-first; got != http.StatusNoContent {
		t.Fatalf("superseded request should answer 204, got %d", got)
	}
}

func TestSuggestShortQueryIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("short queries must not reach the backend")
	}))
	defer srv.Close()

	env := newApp(t, srv.URL)

	req := httptest.NewRequest("GET", "/api/suggest?q=r", nil)
	withSID(req, "sid-short")
	resp, err := env.app.Test(req, 2000)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if strings.TrimSpace(string(body)) != "[]" {
		t.Fatalf("expected empty suggestions, got %s", body)
	}
}
