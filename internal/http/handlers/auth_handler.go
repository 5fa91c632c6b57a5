package handlers

import (
	applog "zahab/internal/log"
	"zahab/internal/session"
	"zahab/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Sessions *session.Service
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	username, ok := validate.Username(c.FormValue("username"))
	pass := c.FormValue("password")
	if !ok || pass == "" {
		applog.Security(c, "auth.login.fail", map[string]any{"reason": "bad_format"})
		c.Status(fiber.StatusUnauthorized)
		return render(c, "login", fiber.Map{"Err": "Invalid username or password"})
	}

	res := h.Sessions.Login(c.Context(), sid, username, pass)
	if !res.OK {
		applog.Security(c, "auth.login.fail", map[string]any{"username": username})
		c.Status(fiber.StatusUnauthorized)
		return render(c, "login", fiber.Map{"Err": res.Message, "Username": username})
	}

	applog.Audit(c, "auth.login.success", map[string]any{"username": username})
	return c.Redirect("/admin")
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	username, ok := validate.Username(c.FormValue("username"))
	pass := c.FormValue("password")
	role := c.FormValue("role")
	if role != "ADMIN" {
		role = "ADMIN" // the back-office only registers admins
	}
	if !ok || pass == "" {
		c.Status(fiber.StatusBadRequest)
		return render(c, "register", fiber.Map{"Err": "Username and password are required"})
	}

	res := h.Sessions.Register(c.Context(), username, pass, role)
	if !res.OK {
		applog.Security(c, "auth.register.fail", map[string]any{"username": username})
		c.Status(fiber.StatusBadRequest)
		return render(c, "register", fiber.Map{"Err": res.Message, "Username": username})
	}

	applog.Audit(c, "auth.register.success", map[string]any{"username": username})
	return render(c, "login", fiber.Map{"Notice": res.Message})
}

// Logout clears the persisted session no matter what the backend says, then
// lands on the login screen.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	h.Sessions.Logout(c.Context(), sid)
	applog.Audit(c, "auth.logout", nil)
	return c.Redirect("/admin/login")
}
