package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"zahab/internal/backend"
	"zahab/internal/cart"
	applog "zahab/internal/log"
	"zahab/internal/validate"
)

type CheckoutHandler struct {
	API   *backend.Client
	Carts *cart.Store
}

func (h *CheckoutHandler) Form(c *fiber.Ctx) error {
	sid := ensureSID(c)
	items, count, total := h.Carts.Snapshot(sid)
	return render(c, "checkout", fiber.Map{"Items": items, "Count": count, "Total": total})
}

// Place converts the cart into a reservation request. Client-side
// validation failures render inline and never reach the network; backend
// rejections render next to the form with the cart untouched.
func (h *CheckoutHandler) Place(c *fiber.Ctx) error {
	sid := ensureSID(c)
	items, count, total := h.Carts.Snapshot(sid)
	data := fiber.Map{"Items": items, "Count": count, "Total": total}

	if count == 0 {
		data["Err"] = "Your cart is empty."
		c.Status(fiber.StatusBadRequest)
		return render(c, "checkout", data)
	}

	fieldErrs := map[string][]string{}
	username, ok := validate.Username(c.FormValue("username"))
	if !ok {
		fieldErrs["username"] = []string{"Enter your full name (up to 50 characters)."}
	}
	phone, ok := validate.Phone(c.FormValue("phoneNumber"))
	if !ok {
		fieldErrs["phoneNumber"] = []string{"Enter a valid phone number."}
	}
	if len(fieldErrs) > 0 {
		data["FieldErrs"] = fieldErrs
		data["Username"] = c.FormValue("username")
		data["PhoneNumber"] = c.FormValue("phoneNumber")
		c.Status(fiber.StatusBadRequest)
		return render(c, "checkout", data)
	}

	req := backend.ReservationRequest{
		Username:    username,
		PhoneNumber: phone,
		TotalPrice:  cartTotal(items),
	}
	for _, it := range items {
		req.Items = append(req.Items, backend.ReservationLineRequest{ItemCode: it.Code, Quantity: it.Qty})
	}

	res, err := h.API.CreateReservation(c.Context(), req)
	if err != nil {
		applog.Error(c, "checkout.place.fail", err, map[string]any{"lines": len(req.Items)})
		if apiErr, okErr := err.(*backend.APIError); okErr && len(apiErr.Fields) > 0 {
			data["FieldErrs"] = apiErr.Fields
		} else {
			data["Err"] = backend.Display(err)
		}
		data["Username"] = username
		data["PhoneNumber"] = phone
		c.Status(fiber.StatusBadRequest)
		return render(c, "checkout", data)
	}

	h.Carts.With(sid, func(cc *cart.Cart) { cc.Clear() })
	applog.Audit(c, "checkout.place", map[string]any{
		"reservation_id": res.ID,
		"total":          req.TotalPrice.String(),
		"lines":          len(req.Items),
	})
	return render(c, "checkout", fiber.Map{"Placed": true})
}

func cartTotal(items []cart.Item) decimal.Decimal {
	t := decimal.Zero
	for _, it := range items {
		t = t.Add(it.Subtotal())
	}
	return t
}
