package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"zahab/internal/i18n"
)

// render injects the cross-cutting template data: language and direction,
// the logged-in admin if any, and the CSRF token for forms.
func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	lang := Lang(c)
	data["Lang"] = lang
	data["Dir"] = i18n.Dir(lang)
	if u := c.Locals("user"); u != nil {
		data["User"] = u
	}
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		data["CSRFToken"] = tok
	} else if cookTok := c.Cookies("csrf_"); cookTok != "" {
		data["CSRFToken"] = cookTok
	}
	return c.Render(tmpl, data)
}

// Lang reads the request language resolved by the language middleware.
func Lang(c *fiber.Ctx) i18n.Lang {
	if l, ok := c.Locals("lang").(i18n.Lang); ok {
		return l
	}
	return i18n.En
}

// ensureSID guarantees a session cookie; the sid keys the cart, the search
// debouncer and the admin session row.
func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false, // enable behind TLS
		})
	}
	return sid
}
