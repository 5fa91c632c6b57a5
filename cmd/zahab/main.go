package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"zahab/internal/backend"
	"zahab/internal/cart"
	"zahab/internal/config"
	"zahab/internal/http/handlers"
	"zahab/internal/i18n"
	applog "zahab/internal/log"
	"zahab/internal/session"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	store, err := session.OpenStore(cfg.SessionDB)
	if err != nil {
		log.Fatal(err)
	}

	api := backend.New(cfg.BackendURL)
	sessions := session.NewService(api, store)
	carts := cart.NewStore()

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.AddFunc("tr", i18n.T)
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals; best-effort render
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(handlers.LangMiddleware())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			p := string(c.Request().URI().Path())
			return strings.HasPrefix(p, "/static/") || strings.HasPrefix(p, "/api/suggest")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		Next: func(c *fiber.Ctx) bool {
			// The suggest endpoint is read-only JSON
			return strings.HasPrefix(c.Path(), "/api/suggest")
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", map[string]any{"form": c.FormValue("csrf")})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	app.Static("/static", "./web/static")

	// ---------- App handlers ----------
	deps := handlers.NewDeps(api, carts, sessions, cfg)

	// Storefront
	app.Get("/", deps.Storefront.Home)
	app.Get("/item/:code", deps.Storefront.Detail)
	app.Get("/lang/:code", handlers.SetLang)
	app.Get("/api/suggest", limiter.New(limiter.Config{Max: 120, Expiration: time.Minute}), deps.Suggest.Storefront)

	// Cart & checkout
	app.Get("/cart", deps.Cart.View)
	app.Post("/cart", deps.Cart.Add)
	app.Post("/cart/update", deps.Cart.Update)
	app.Post("/cart/remove", deps.Cart.Remove)
	app.Post("/cart/clear", deps.Cart.Clear)
	app.Get("/checkout", deps.Checkout.Form)
	app.Post("/checkout", deps.Checkout.Place)

	// Admin auth (login throttled; these stay outside the guarded group)
	app.Get("/admin/login", handlers.RedirectIfAuthed(sessions), deps.Auth.LoginForm)
	app.Post("/admin/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Too many attempts. Please try again later."})
		},
	}), deps.Auth.Login)
	app.Get("/admin/register", handlers.RedirectIfAuthed(sessions), deps.Auth.RegisterForm)
	app.Post("/admin/register", deps.Auth.Register)
	app.Post("/admin/logout", deps.Auth.Logout)

	// Admin back-office
	admin := app.Group("/admin", handlers.RequireAdmin(sessions))
	admin.Get("/", deps.Dashboard.Dashboard)
	admin.Get("/api/item-lookup", deps.Suggest.ItemLookup)

	admin.Get("/items", deps.Items.List)
	admin.Post("/items", deps.Items.Create)
	admin.Post("/items/delete", deps.Items.Delete)
	admin.Post("/items/:id", deps.Items.Update)

	admin.Get("/categories", deps.Categories.List)
	admin.Post("/categories", deps.Categories.Create)
	admin.Post("/categories/:id/delete", deps.Categories.Delete)
	admin.Post("/categories/:id", deps.Categories.Update)

	admin.Get("/karats", deps.Karats.List)
	admin.Post("/karats", deps.Karats.Create)
	admin.Post("/karats/:id/delete", deps.Karats.Delete)
	admin.Post("/karats/:id", deps.Karats.Update)

	admin.Get("/gold-prices", deps.GoldPrices.List)
	admin.Post("/gold-prices", deps.GoldPrices.Create)
	admin.Post("/gold-prices/:id/delete", deps.GoldPrices.Delete)
	admin.Post("/gold-prices/:id", deps.GoldPrices.Update)

	admin.Get("/discounts", deps.Discounts.List)
	admin.Post("/discounts", deps.Discounts.Create)
	admin.Post("/discounts/:id/delete", deps.Discounts.Delete)
	admin.Post("/discounts/:id/items/add", deps.Discounts.AddItems)
	admin.Post("/discounts/:id/items/remove", deps.Discounts.RemoveItems)
	admin.Post("/discounts/:id", deps.Discounts.Update)

	admin.Get("/reservations", deps.Reservations.List)
	admin.Post("/reservations/:id/status", deps.Reservations.UpdateStatus)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
