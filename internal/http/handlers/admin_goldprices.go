package handlers

import (
	"github.com/gofiber/fiber/v2"

	"zahab/internal/backend"
	applog "zahab/internal/log"
	"zahab/internal/pagination"
	"zahab/internal/validate"
)

type AdminGoldPricesHandler struct {
	API *backend.Client
}

func (h *AdminGoldPricesHandler) List(c *fiber.Ctx) error {
	return h.list(c, nil)
}

func (h *AdminGoldPricesHandler) list(c *fiber.Ctx, extra fiber.Map) error {
	api := h.API.WithToken(Token(c))
	page := validate.Page(c.Query("page"))

	data := fiber.Map{}
	for k, v := range extra {
		data[k] = v
	}
	if karats, err := api.AllKarats(c.Context()); err == nil {
		data["Karats"] = karats
	}

	p, err := api.ListGoldPrices(c.Context(), page, adminPageSize)
	if err != nil {
		applog.Error(c, "admin.goldprices.list.fail", err, nil)
		data["Err"] = backend.Display(err)
		data["Pager"] = pagination.Control{}
		return render(c, "admin_goldprices", data)
	}
	data["Prices"] = p.Content
	data["Pager"] = pagination.NewControl(p.Page.Number, p.Page.TotalPages)
	return render(c, "admin_goldprices", data)
}

func goldPriceRequestFromForm(c *fiber.Ctx) (backend.GoldPriceRequest, string) {
	var req backend.GoldPriceRequest
	req.KaratName = c.FormValue("karatName")
	if req.KaratName == "" {
		return req, "Karat is required."
	}
	price, ok := validate.Amount(c.FormValue("pricePerGram"))
	if !ok {
		return req, "Price per gram must be a non-negative amount."
	}
	req.PricePerGram = price
	req.EffectiveDate = c.FormValue("effectiveDate")
	if req.EffectiveDate == "" {
		return req, "Effective date is required."
	}
	req.Active = c.FormValue("active") != ""
	return req, ""
}

func (h *AdminGoldPricesHandler) Create(c *fiber.Ctx) error {
	req, formErr := goldPriceRequestFromForm(c)
	if formErr != "" {
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": formErr, "Form": req})
	}
	api := h.API.WithToken(Token(c))
	if _, err := api.CreateGoldPrice(c.Context(), req); err != nil {
		applog.Error(c, "admin.goldprices.create.fail", err, map[string]any{"karat": req.KaratName})
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": backend.Display(err), "Form": req})
	}
	applog.Audit(c, "admin.goldprices.create", map[string]any{"karat": req.KaratName})
	return c.Redirect("/admin/gold-prices")
}

func (h *AdminGoldPricesHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	req, formErr := goldPriceRequestFromForm(c)
	if formErr != "" {
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": formErr, "Form": req})
	}
	api := h.API.WithToken(Token(c))
	if _, err := api.UpdateGoldPrice(c.Context(), id, req); err != nil {
		applog.Error(c, "admin.goldprices.update.fail", err, map[string]any{"id": id})
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": backend.Display(err), "Form": req})
	}
	applog.Audit(c, "admin.goldprices.update", map[string]any{"id": id})
	return c.Redirect("/admin/gold-prices")
}

func (h *AdminGoldPricesHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	api := h.API.WithToken(Token(c))
	if err := api.DeleteGoldPrice(c.Context(), id); err != nil {
		applog.Error(c, "admin.goldprices.delete.fail", err, map[string]any{"id": id})
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": backend.Display(err)})
	}
	applog.Audit(c, "admin.goldprices.delete", map[string]any{"id": id})
	return c.Redirect("/admin/gold-prices")
}
