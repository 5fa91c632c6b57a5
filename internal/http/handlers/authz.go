package handlers

import (
	applog "zahab/internal/log"
	"zahab/internal/session"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin gates the admin area on the persisted session: a stored
// token+user counts as authenticated without a backend round-trip.
func RequireAdmin(sess *session.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		u, tok := sess.Current(sid)
		if u == nil {
			applog.Security(c, "access.denied.admin", nil)
			return c.Redirect("/admin/login")
		}
		c.Locals("user", u)
		c.Locals("token", tok)
		return c.Next()
	}
}

// RedirectIfAuthed keeps logged-in admins out of the login/register screens.
func RedirectIfAuthed(sess *session.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if u, _ := sess.Current(c.Cookies("sid")); u != nil {
			return c.Redirect("/admin")
		}
		return c.Next()
	}
}

// Token returns the bearer token RequireAdmin put on the context.
func Token(c *fiber.Ctx) string {
	tok, _ := c.Locals("token").(string)
	return tok
}
