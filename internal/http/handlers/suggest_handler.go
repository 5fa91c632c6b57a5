package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"zahab/internal/domain"
	applog "zahab/internal/log"
	"zahab/internal/search"
	"zahab/internal/validate"
)

// SuggestHandler serves the debounced type-ahead. Keystroke requests from
// the same session coalesce: superseded ones answer 204 and only the newest
// query's result reaches the dropdown.
type SuggestHandler struct {
	ByName *search.Registry[[]domain.Item]
	ByCode *search.Registry[[]domain.Item]
}

type suggestion struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

func (h *SuggestHandler) Storefront(c *fiber.Ctx) error {
	return h.serve(c, h.ByName)
}

// ItemLookup is the admin variant; it matches stable item codes.
func (h *SuggestHandler) ItemLookup(c *fiber.Ctx) error {
	return h.serve(c, h.ByCode)
}

func (h *SuggestHandler) serve(c *fiber.Ctx, reg *search.Registry[[]domain.Item]) error {
	sid := ensureSID(c)
	q, ok := validate.Q(c.Query("q"))
	if !ok {
		q = "" // below min length; debouncer resolves it empty
	}

	// fasthttp recycles the request ctx the moment this handler returns,
	// and a superseded run can still be in flight then.
	ctx := context.WithoutCancel(c.UserContext())
	out := <-reg.For(sid).Submit(ctx, q)
	if out.Superseded {
		return c.SendStatus(fiber.StatusNoContent)
	}
	if out.Err != nil {
		// Best-effort: a failed search hides the dropdown, no banner.
		applog.Error(c, "search.suggest.fail", out.Err, map[string]any{"q": q})
		return c.JSON([]suggestion{})
	}

	lang := Lang(c)
	suggestions := make([]suggestion, 0, len(out.Value))
	for _, it := range out.Value {
		suggestions = append(suggestions, suggestion{
			Code:  it.Code,
			Name:  it.DisplayName(lang),
			Price: it.EffectivePrice().String(),
		})
	}
	return c.JSON(suggestions)
}
