package handlers

import (
	"github.com/gofiber/fiber/v2"

	"zahab/internal/backend"
	applog "zahab/internal/log"
	"zahab/internal/pagination"
	"zahab/internal/validate"
)

type AdminKaratsHandler struct {
	API *backend.Client
}

func (h *AdminKaratsHandler) List(c *fiber.Ctx) error {
	return h.list(c, nil)
}

func (h *AdminKaratsHandler) list(c *fiber.Ctx, extra fiber.Map) error {
	api := h.API.WithToken(Token(c))
	page := validate.Page(c.Query("page"))

	data := fiber.Map{}
	for k, v := range extra {
		data[k] = v
	}

	p, err := api.ListKarats(c.Context(), page, adminPageSize)
	if err != nil {
		applog.Error(c, "admin.karats.list.fail", err, nil)
		data["Err"] = backend.Display(err)
		data["Pager"] = pagination.Control{}
		return render(c, "admin_karats", data)
	}
	data["Karats"] = p.Content
	data["Pager"] = pagination.NewControl(p.Page.Number, p.Page.TotalPages)
	return render(c, "admin_karats", data)
}

func (h *AdminKaratsHandler) Create(c *fiber.Ctx) error {
	req := backend.KaratRequest{Name: c.FormValue("name"), Label: c.FormValue("label")}
	if req.Name == "" || req.Label == "" {
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": "Name and label are required.", "Form": req})
	}
	api := h.API.WithToken(Token(c))
	if _, err := api.CreateKarat(c.Context(), req); err != nil {
		applog.Error(c, "admin.karats.create.fail", err, map[string]any{"name": req.Name})
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": backend.Display(err), "Form": req})
	}
	applog.Audit(c, "admin.karats.create", map[string]any{"name": req.Name})
	return c.Redirect("/admin/karats")
}

func (h *AdminKaratsHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	req := backend.KaratRequest{Name: c.FormValue("name"), Label: c.FormValue("label")}
	if req.Name == "" || req.Label == "" {
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": "Name and label are required.", "Form": req})
	}
	api := h.API.WithToken(Token(c))
	if _, err := api.UpdateKarat(c.Context(), id, req); err != nil {
		applog.Error(c, "admin.karats.update.fail", err, map[string]any{"id": id})
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": backend.Display(err), "Form": req})
	}
	applog.Audit(c, "admin.karats.update", map[string]any{"id": id})
	return c.Redirect("/admin/karats")
}

func (h *AdminKaratsHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	api := h.API.WithToken(Token(c))
	if err := api.DeleteKarat(c.Context(), id); err != nil {
		applog.Error(c, "admin.karats.delete.fail", err, map[string]any{"id": id})
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": backend.Display(err)})
	}
	applog.Audit(c, "admin.karats.delete", map[string]any{"id": id})
	return c.Redirect("/admin/karats")
}
