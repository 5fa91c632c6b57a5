package handlers

import (
	"github.com/gofiber/fiber/v2"

	"zahab/internal/backend"
	"zahab/internal/domain"
	applog "zahab/internal/log"
	"zahab/internal/pagination"
	"zahab/internal/validate"
)

type AdminReservationsHandler struct {
	API *backend.Client
}

func (h *AdminReservationsHandler) List(c *fiber.Ctx) error {
	return h.list(c, nil)
}

func (h *AdminReservationsHandler) list(c *fiber.Ctx, extra fiber.Map) error {
	api := h.API.WithToken(Token(c))
	page := validate.Page(c.Query("page"))

	data := fiber.Map{"Statuses": []string{
		domain.ReservationConfirmed, domain.ReservationCancelled, domain.ReservationClosed,
	}}
	for k, v := range extra {
		data[k] = v
	}

	p, err := api.ListReservations(c.Context(), page, adminPageSize)
	if err != nil {
		applog.Error(c, "admin.reservations.list.fail", err, nil)
		data["Err"] = backend.Display(err)
		data["Pager"] = pagination.Control{}
		return render(c, "admin_reservations", data)
	}
	data["Reservations"] = p.Content
	data["Pager"] = pagination.NewControl(p.Page.Number, p.Page.TotalPages)
	return render(c, "admin_reservations", data)
}

// UpdateStatus is the only reservation mutation the back-office has.
func (h *AdminReservationsHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	status := c.FormValue("status")
	if !domain.ValidReservationStatus(status) {
		applog.Security(c, "validation.fail", map[string]any{"field": "status", "value": status})
		return c.Status(fiber.StatusBadRequest).SendString("invalid status")
	}
	api := h.API.WithToken(Token(c))
	if err := api.UpdateReservationStatus(c.Context(), id, status); err != nil {
		applog.Error(c, "admin.reservations.status.fail", err, map[string]any{"id": id})
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": backend.Display(err)})
	}
	applog.Audit(c, "admin.reservations.status", map[string]any{"id": id, "status": status})
	return c.Redirect("/admin/reservations")
}
