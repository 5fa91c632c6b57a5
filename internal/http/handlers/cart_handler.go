package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"zahab/internal/backend"
	"zahab/internal/cart"
	applog "zahab/internal/log"
	"zahab/internal/validate"
)

type CartHandler struct {
	API   *backend.Client
	Carts *cart.Store
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	items, count, total := h.Carts.Snapshot(sid)
	return render(c, "cart", fiber.Map{"Items": items, "Count": count, "Total": total})
}

// Add resolves the item against the backend so the cart line carries the
// effective price at add time, then merges by item id.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	code, ok := validate.Code(c.FormValue("itemCode"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing item code")
	}
	qty := validate.Qty(c.FormValue("qty"))

	it, err := h.API.GetItem(c.Context(), code)
	if err != nil {
		applog.Error(c, "cart.add.fail", err, map[string]any{"code": code})
		items, count, total := h.Carts.Snapshot(sid)
		return render(c, "cart", fiber.Map{
			"Items": items, "Count": count, "Total": total,
			"Err": backend.Display(err),
		})
	}

	line := cart.Item{
		ID:       it.ID,
		Code:     it.Code,
		Name:     it.DisplayName(Lang(c)),
		ImageURL: it.ImageURL,
		Price:    it.EffectivePrice(),
	}
	h.Carts.With(sid, func(cc *cart.Cart) { cc.Add(line, qty) })
	applog.Info(c, "cart.add", map[string]any{"code": code, "qty": qty})
	return c.Redirect("/cart")
}

// Update sets a line's quantity; zero or below removes the line.
func (h *CartHandler) Update(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, err := strconv.ParseInt(c.FormValue("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	qty, err := strconv.Atoi(c.FormValue("qty"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("missing qty")
	}
	h.Carts.With(sid, func(cc *cart.Cart) { cc.SetQuantity(id, qty) })
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, err := strconv.ParseInt(c.FormValue("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	h.Carts.With(sid, func(cc *cart.Cart) { cc.Remove(id) })
	return c.Redirect("/cart")
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	sid := ensureSID(c)
	h.Carts.With(sid, func(cc *cart.Cart) { cc.Clear() })
	return c.Redirect("/cart")
}
