package handlers

import (
	"github.com/gofiber/fiber/v2"

	"zahab/internal/i18n"
)

// LangMiddleware resolves the persisted language once per request; views
// read it through Lang(c) and mirror it onto <html lang dir>.
func LangMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("lang", i18n.Parse(c.Cookies("lang")))
		return c.Next()
	}
}

// SetLang switches the UI language and bounces back to the referring page.
func SetLang(c *fiber.Ctx) error {
	lang := i18n.Parse(c.Params("code"))
	c.Cookie(&fiber.Cookie{
		Name:     "lang",
		Value:    string(lang),
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	back := c.Get("Referer")
	if back == "" {
		back = "/"
	}
	return c.Redirect(back)
}
