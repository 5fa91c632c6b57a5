package handlers

import (
	"github.com/gofiber/fiber/v2"

	"zahab/internal/backend"
	applog "zahab/internal/log"
	"zahab/internal/pagination"
	"zahab/internal/validate"
)

const catalogPageSize = 12

type StorefrontHandler struct {
	API *backend.Client
}

// Home renders the paginated catalog with the category filter. A failed
// list load becomes a page-scoped banner over an empty grid.
func (h *StorefrontHandler) Home(c *fiber.Ctx) error {
	page := validate.Page(c.Query("page"))
	category := c.Query("category")

	data := fiber.Map{"Category": category}

	cats, err := h.API.AllCategories(c.Context())
	if err != nil {
		applog.Error(c, "catalog.categories.fail", err, nil)
	}
	data["Categories"] = cats

	p, err := h.API.SearchItems(c.Context(), backend.ItemFilter{
		CategoryName: category, Page: page, Size: catalogPageSize,
	})
	if err != nil {
		applog.Error(c, "catalog.list.fail", err, nil)
		data["Err"] = backend.Display(err)
		data["Items"] = nil
		data["Pager"] = pagination.Control{}
		return render(c, "home", data)
	}

	data["Items"] = p.Content
	data["Pager"] = pagination.NewControl(p.Page.Number, p.Page.TotalPages).
		WithFilter("category", category)
	return render(c, "home", data)
}

// Detail shows a single item by its public code.
func (h *StorefrontHandler) Detail(c *fiber.Ctx) error {
	code, ok := validate.Code(c.Params("code"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "code"})
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	it, err := h.API.GetItem(c.Context(), code)
	if err != nil || it.Code == "" {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	return render(c, "item", fiber.Map{"Item": it})
}
