package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"zahab/internal/backend"
	"zahab/internal/cart"
	"zahab/internal/config"
	"zahab/internal/http/handlers"
	"zahab/internal/i18n"
	"zahab/internal/session"
)

type testEnv struct {
	app   *fiber.App
	carts *cart.Store
	store *session.Store
	sess  *session.Service
}

// Minimal app wired against a fake backend URL. CSRF stays off here; the
// middleware chain has its own tests and these exercise handler behavior.
func newApp(t *testing.T, backendURL string) *testEnv {
	t.Helper()

	api := backend.New(backendURL)
	store, err := session.OpenStore(":memory:")
	if err != nil {
		t.Fatalf("open session store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	sess := session.NewService(api, store)
	carts := cart.NewStore()
	cfg := config.Config{BackendURL: backendURL, SearchDebounce: 5 * time.Millisecond}
	deps := handlers.NewDeps(api, carts, sess, cfg)

	engine := html.New("../../web/templates", ".html")
	engine.AddFunc("tr", i18n.T)
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())
	app.Use(handlers.LangMiddleware())

	app.Get("/", deps.Storefront.Home)
	app.Get("/api/suggest", deps.Suggest.Storefront)
	app.Get("/cart", deps.Cart.View)
	app.Get("/checkout", deps.Checkout.Form)
	app.Post("/checkout", deps.Checkout.Place)

	app.Get("/admin/login", handlers.RedirectIfAuthed(sess), deps.Auth.LoginForm)
	app.Post("/admin/login", deps.Auth.Login)
	app.Post("/admin/logout", deps.Auth.Logout)

	admin := app.Group("/admin", handlers.RequireAdmin(sess))
	admin.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	admin.Get("/items", deps.Items.List)

	return &testEnv{app: app, carts: carts, store: store, sess: sess}
}

func withSID(req *http.Request, sid string) *http.Request {
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	return req
}
