package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"zahab/internal/backend"
	applog "zahab/internal/log"
	"zahab/internal/pagination"
	"zahab/internal/validate"
)

type AdminDiscountsHandler struct {
	API *backend.Client
}

func (h *AdminDiscountsHandler) List(c *fiber.Ctx) error {
	return h.list(c, nil)
}

func (h *AdminDiscountsHandler) list(c *fiber.Ctx, extra fiber.Map) error {
	api := h.API.WithToken(Token(c))
	page := validate.Page(c.Query("page"))

	data := fiber.Map{}
	for k, v := range extra {
		data[k] = v
	}

	p, err := api.ListDiscounts(c.Context(), page, adminPageSize)
	if err != nil {
		applog.Error(c, "admin.discounts.list.fail", err, nil)
		data["Err"] = backend.Display(err)
		data["Pager"] = pagination.Control{}
		return render(c, "admin_discounts", data)
	}
	data["Discounts"] = p.Content
	data["Pager"] = pagination.NewControl(p.Page.Number, p.Page.TotalPages)
	return render(c, "admin_discounts", data)
}

func discountRequestFromForm(c *fiber.Ctx) (backend.DiscountRequest, string) {
	var req backend.DiscountRequest
	pct, ok := validate.Percentage(c.FormValue("percentage"))
	if !ok {
		return req, "Percentage must be between 0 and 100."
	}
	req.Percentage = pct
	req.StartDate = c.FormValue("startDate")
	req.EndDate = c.FormValue("endDate")
	if req.StartDate == "" || req.EndDate == "" {
		return req, "Start and end dates are required."
	}
	req.Active = c.FormValue("active") != ""
	return req, ""
}

func (h *AdminDiscountsHandler) Create(c *fiber.Ctx) error {
	req, formErr := discountRequestFromForm(c)
	if formErr != "" {
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": formErr, "Form": req})
	}
	api := h.API.WithToken(Token(c))
	if _, err := api.CreateDiscount(c.Context(), req); err != nil {
		applog.Error(c, "admin.discounts.create.fail", err, nil)
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": backend.Display(err), "Form": req})
	}
	applog.Audit(c, "admin.discounts.create", map[string]any{"percentage": req.Percentage.String()})
	return c.Redirect("/admin/discounts")
}

func (h *AdminDiscountsHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	req, formErr := discountRequestFromForm(c)
	if formErr != "" {
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": formErr, "Form": req})
	}
	api := h.API.WithToken(Token(c))
	if _, err := api.UpdateDiscount(c.Context(), id, req); err != nil {
		applog.Error(c, "admin.discounts.update.fail", err, map[string]any{"id": id})
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": backend.Display(err), "Form": req})
	}
	applog.Audit(c, "admin.discounts.update", map[string]any{"id": id})
	return c.Redirect("/admin/discounts")
}

func (h *AdminDiscountsHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	api := h.API.WithToken(Token(c))
	if err := api.DeleteDiscount(c.Context(), id); err != nil {
		applog.Error(c, "admin.discounts.delete.fail", err, map[string]any{"id": id})
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": backend.Display(err)})
	}
	applog.Audit(c, "admin.discounts.delete", map[string]any{"id": id})
	return c.Redirect("/admin/discounts")
}

// AddItems associates item codes with a discount; the form takes codes
// separated by commas or whitespace.
func (h *AdminDiscountsHandler) AddItems(c *fiber.Ctx) error {
	return h.mutateItems(c, true)
}

func (h *AdminDiscountsHandler) RemoveItems(c *fiber.Ctx) error {
	return h.mutateItems(c, false)
}

func (h *AdminDiscountsHandler) mutateItems(c *fiber.Ctx, add bool) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	codes := splitCodes(c.FormValue("codes"))
	if len(codes) == 0 {
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": "Enter at least one item code."})
	}

	api := h.API.WithToken(Token(c))
	var err error
	action := "admin.discounts.items.add"
	if add {
		err = api.AddDiscountItems(c.Context(), id, codes)
	} else {
		err = api.RemoveDiscountItems(c.Context(), id, codes)
		action = "admin.discounts.items.remove"
	}
	if err != nil {
		applog.Error(c, action+".fail", err, map[string]any{"id": id, "codes": codes})
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": backend.Display(err)})
	}
	applog.Audit(c, action, map[string]any{"id": id, "codes": codes})
	return c.Redirect("/admin/discounts")
}

func splitCodes(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\r' || r == '\t'
	})
	var codes []string
	for _, f := range fields {
		if code, ok := validate.Code(f); ok {
			codes = append(codes, code)
		}
	}
	return codes
}
