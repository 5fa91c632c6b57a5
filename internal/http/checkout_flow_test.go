package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"

	"zahab/internal/cart"
)

func seedCart(env *testEnv, sid string) {
	env.carts.With(sid, func(c *cart.Cart) {
		c.Add(cart.Item{
			ID:    1,
			Code:  "RING-001",
			Name:  "Gold Ring",
			Price: decimal.RequireFromString("50.000"),
		}, 2)
	})
}

func TestCheckoutPlacesReservationAndClearsCart(t *testing.T) {
	var gotBody atomic.Pointer[[]byte]
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/api/v1/reservations" {
			b, _ := io.ReadAll(r.Body)
			gotBody.Store(&b)
			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, `{"id":7,"username":"Lina Haddad","status":"CONFIRMED"}`)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	env := newApp(t, srv.URL)
	seedCart(env, "sid-checkout")

	form := "username=Lina+Haddad&phoneNumber=%2B96170123456"
	req := httptest.NewRequest("POST", "/checkout", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	withSID(req, "sid-checkout")

	resp, err := env.app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	page, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(page), "Reservation placed") {
		t.Fatalf("success notice missing from response:\n%s", page)
	}

	bp := gotBody.Load()
	if bp == nil {
		t.Fatal("backend never received the reservation")
	}
	body := string(*bp)
	// Amounts travel as unquoted JSON numbers; decimal normalizes trailing
	// zeros, so 50.000 x 2 marshals as 100.
	if !strings.Contains(body, `"totalPrice":100,`) {
		t.Fatalf("totalPrice not a plain number: %s", body)
	}
	if !strings.Contains(body, `"itemCode":"RING-001"`) || !strings.Contains(body, `"quantity":2`) {
		t.Fatalf("reservation lines wrong: %s", body)
	}
	if !strings.Contains(body, `"username":"Lina Haddad"`) {
		t.Fatalf("username missing: %s", body)
	}

	if _, count, _ := env.carts.Snapshot("sid-checkout"); count != 0 {
		t.Fatalf("cart not cleared after checkout, %d items left", count)
	}
}

func TestCheckoutValidationFailsBeforeNetwork(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	env := newApp(t, srv.URL)
	seedCart(env, "sid-badform")

	form := "username=Lina&phoneNumber=abc"
	req := httptest.NewRequest("POST", "/checkout", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	withSID(req, "sid-badform")

	resp, err := env.app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	page, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(page), "valid phone number") {
		t.Fatalf("field error missing:\n%s", page)
	}
	if calls.Load() != 0 {
		t.Fatalf("backend called %d times on a client-side validation failure", calls.Load())
	}
	if _, count, _ := env.carts.Snapshot("sid-badform"); count == 0 {
		t.Fatal("cart should survive a rejected checkout")
	}
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend should not be called for an empty cart")
	}))
	defer srv.Close()

	env := newApp(t, srv.URL)
	form := "username=Lina+Haddad&phoneNumber=%2B96170123456"
	req := httptest.NewRequest("POST", "/checkout", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	withSID(req, "sid-empty")

	resp, err := env.app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
