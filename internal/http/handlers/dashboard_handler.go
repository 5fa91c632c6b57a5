package handlers

import (
	"github.com/gofiber/fiber/v2"

	"zahab/internal/backend"
	"zahab/internal/session"
)

type DashboardHandler struct {
	API *backend.Client
}

// Dashboard shows quick totals and the token's expiry. Count fetches are
// best-effort; a dead backend still renders the page.
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	api := h.API.WithToken(Token(c))
	data := fiber.Map{}

	if p, err := api.ListItems(c.Context(), 0, 1, ""); err == nil {
		data["ItemCount"] = p.Page.TotalElements
	}
	if p, err := api.ListReservations(c.Context(), 0, 1); err == nil {
		data["ReservationCount"] = p.Page.TotalElements
	}
	if exp, ok := session.TokenExpiry(Token(c)); ok {
		data["TokenExpiry"] = exp.Format("2006-01-02 15:04 MST")
	}
	return render(c, "admin_dashboard", data)
}
