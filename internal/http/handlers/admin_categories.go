package handlers

import (
	"github.com/gofiber/fiber/v2"

	"zahab/internal/backend"
	applog "zahab/internal/log"
	"zahab/internal/pagination"
	"zahab/internal/validate"
)

type AdminCategoriesHandler struct {
	API *backend.Client
}

func (h *AdminCategoriesHandler) List(c *fiber.Ctx) error {
	return h.list(c, nil)
}

func (h *AdminCategoriesHandler) list(c *fiber.Ctx, extra fiber.Map) error {
	api := h.API.WithToken(Token(c))
	page := validate.Page(c.Query("page"))

	data := fiber.Map{}
	for k, v := range extra {
		data[k] = v
	}

	p, err := api.ListCategories(c.Context(), page, adminPageSize)
	if err != nil {
		applog.Error(c, "admin.categories.list.fail", err, nil)
		data["Err"] = backend.Display(err)
		data["Pager"] = pagination.Control{}
		return render(c, "admin_categories", data)
	}
	data["Categories"] = p.Content
	data["Pager"] = pagination.NewControl(p.Page.Number, p.Page.TotalPages)
	return render(c, "admin_categories", data)
}

func (h *AdminCategoriesHandler) Create(c *fiber.Ctx) error {
	req, formErr := categoryRequestFromForm(c)
	if formErr != "" {
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": formErr, "Form": req})
	}
	api := h.API.WithToken(Token(c))
	if _, err := api.CreateCategory(c.Context(), req); err != nil {
		applog.Error(c, "admin.categories.create.fail", err, map[string]any{"name": req.Name})
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": backend.Display(err), "Form": req})
	}
	applog.Audit(c, "admin.categories.create", map[string]any{"name": req.Name})
	return c.Redirect("/admin/categories")
}

func (h *AdminCategoriesHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	req, formErr := categoryRequestFromForm(c)
	if formErr != "" {
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": formErr, "Form": req})
	}
	api := h.API.WithToken(Token(c))
	if _, err := api.UpdateCategory(c.Context(), id, req); err != nil {
		applog.Error(c, "admin.categories.update.fail", err, map[string]any{"id": id})
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": backend.Display(err), "Form": req})
	}
	applog.Audit(c, "admin.categories.update", map[string]any{"id": id})
	return c.Redirect("/admin/categories")
}

func (h *AdminCategoriesHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	api := h.API.WithToken(Token(c))
	if err := api.DeleteCategory(c.Context(), id); err != nil {
		applog.Error(c, "admin.categories.delete.fail", err, map[string]any{"id": id})
		c.Status(fiber.StatusBadRequest)
		return h.list(c, fiber.Map{"FormErr": backend.Display(err)})
	}
	applog.Audit(c, "admin.categories.delete", map[string]any{"id": id})
	return c.Redirect("/admin/categories")
}

func categoryRequestFromForm(c *fiber.Ctx) (backend.CategoryRequest, string) {
	req := backend.CategoryRequest{
		Name:          c.FormValue("name"),
		NameAr:        c.FormValue("nameAr"),
		Description:   c.FormValue("description"),
		DescriptionAr: c.FormValue("descriptionAr"),
	}
	if req.Name == "" {
		return req, "English name is required."
	}
	return req, ""
}
