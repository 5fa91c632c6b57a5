package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"zahab/internal/backend"
	applog "zahab/internal/log"
	"zahab/internal/pagination"
	"zahab/internal/validate"
)

const adminPageSize = 10

type AdminItemsHandler struct {
	API *backend.Client
}

// List renders the item table plus the create/edit form. Form failures are
// re-rendered through here so the table never goes blank under a bad submit.
func (h *AdminItemsHandler) List(c *fiber.Ctx) error {
	return h.list(c, nil)
}

func (h *AdminItemsHandler) list(c *fiber.Ctx, extra fiber.Map) error {
	api := h.API.WithToken(Token(c))
	page := validate.Page(c.Query("page"))
	category := c.Query("category")

	data := fiber.Map{"Category": category}
	for k, v := range extra {
		data[k] = v
	}

	if cats, err := api.AllCategories(c.Context()); err == nil {
		data["Categories"] = cats
	}
	if karats, err := api.AllKarats(c.Context()); err == nil {
		data["Karats"] = karats
	}
	if editCode, ok := validate.Code(c.Query("edit")); ok {
		if it, err := api.GetItem(c.Context(), editCode); err == nil {
			data["Edit"] = it
		}
	}

	p, err := api.ListItems(c.Context(), page, adminPageSize, category)
	if err != nil {
		applog.Error(c, "admin.items.list.fail", err, nil)
		data["Err"] = backend.Display(err)
		data["Pager"] = pagination.Control{}
		return render(c, "admin_items", data)
	}
	data["Items"] = p.Content
	data["Pager"] = pagination.NewControl(p.Page.Number, p.Page.TotalPages).
		WithFilter("category", category)
	return render(c, "admin_items", data)
}

func (h *AdminItemsHandler) Create(c *fiber.Ctx) error {
	req, formErr := itemRequestFromForm(c)
	if formErr != "" {
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": formErr, "Form": req})
	}
	api := h.API.WithToken(Token(c))
	if _, err := api.CreateItem(c.Context(), req); err != nil {
		applog.Error(c, "admin.items.create.fail", err, map[string]any{"code": req.Code})
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": backend.Display(err), "Form": req})
	}
	applog.Audit(c, "admin.items.create", map[string]any{"code": req.Code})
	return c.Redirect("/admin/items")
}

func (h *AdminItemsHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	req, formErr := itemRequestFromForm(c)
	if formErr != "" {
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": formErr, "Form": req})
	}
	api := h.API.WithToken(Token(c))
	if _, err := api.UpdateItem(c.Context(), id, req); err != nil {
		applog.Error(c, "admin.items.update.fail", err, map[string]any{"id": id})
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": backend.Display(err), "Form": req})
	}
	applog.Audit(c, "admin.items.update", map[string]any{"id": id, "code": req.Code})
	return c.Redirect("/admin/items")
}

// Delete removes by code; that is the backend's delete contract for items.
func (h *AdminItemsHandler) Delete(c *fiber.Ctx) error {
	code, ok := validate.Code(c.FormValue("code"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing code")
	}
	api := h.API.WithToken(Token(c))
	if err := api.DeleteItem(c.Context(), code); err != nil {
		applog.Error(c, "admin.items.delete.fail", err, map[string]any{"code": code})
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": backend.Display(err)})
	}
	applog.Audit(c, "admin.items.delete", map[string]any{"code": code})
	return c.Redirect("/admin/items")
}

func itemRequestFromForm(c *fiber.Ctx) (backend.ItemRequest, string) {
	var req backend.ItemRequest
	var ok bool

	req.Code, ok = validate.Code(c.FormValue("code"))
	if !ok {
		return req, "Item code is required (letters, digits, - or _)."
	}
	req.Name = c.FormValue("name")
	if req.Name == "" {
		return req, "English name is required."
	}
	req.NameAr = c.FormValue("nameAr")
	req.Description = c.FormValue("description")
	req.DescriptionAr = c.FormValue("descriptionAr")
	req.CategoryName = c.FormValue("categoryName")
	if req.CategoryName == "" {
		return req, "Category is required."
	}
	req.KaratName = c.FormValue("karatName")
	if req.KaratName == "" {
		return req, "Karat is required."
	}
	req.Weight, ok = validate.Amount(c.FormValue("weight"))
	if !ok {
		return req, "Weight must be a non-negative number of grams."
	}
	req.FactoryPrice, ok = validate.Amount(c.FormValue("factoryPrice"))
	if !ok {
		return req, "Factory price must be a non-negative amount."
	}
	req.ImageURL = c.FormValue("imageUrl")
	stock, err := strconv.Atoi(c.FormValue("stock"))
	if err != nil || stock < 0 {
		return req, "Stock must be a non-negative integer."
	}
	req.Stock = stock
	req.Active = c.FormValue("active") != ""
	return req, ""
}
