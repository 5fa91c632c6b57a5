package handlers

import (
	"context"

	"zahab/internal/backend"
	"zahab/internal/cart"
	"zahab/internal/config"
	"zahab/internal/domain"
	"zahab/internal/search"
	"zahab/internal/session"
)

type Deps struct {
	Storefront   *StorefrontHandler
	Suggest      *SuggestHandler
	Cart         *CartHandler
	Checkout     *CheckoutHandler
	Auth         *AuthHandler
	Dashboard    *DashboardHandler
	Items        *AdminItemsHandler
	Categories   *AdminCategoriesHandler
	Karats       *AdminKaratsHandler
	GoldPrices   *AdminGoldPricesHandler
	Discounts    *AdminDiscountsHandler
	Reservations *AdminReservationsHandler
}

func NewDeps(api *backend.Client, carts *cart.Store, sess *session.Service, cfg config.Config) *Deps {
	// One debouncer registry per lookup flavor: the storefront navbar
	// matches names, the admin item lookup matches codes.
	nameSuggest := search.NewRegistry(cfg.SearchDebounce, 2, func(ctx context.Context, q string) ([]domain.Item, error) {
		p, err := api.SearchItems(ctx, backend.ItemFilter{Name: q, Page: 0, Size: 8})
		return p.Content, err
	})
	codeSuggest := search.NewRegistry(cfg.SearchDebounce, 2, func(ctx context.Context, q string) ([]domain.Item, error) {
		p, err := api.SearchItems(ctx, backend.ItemFilter{Code: q, Page: 0, Size: 8})
		return p.Content, err
	})

	return &Deps{
		Storefront:   &StorefrontHandler{API: api},
		Suggest:      &SuggestHandler{ByName: nameSuggest, ByCode: codeSuggest},
		Cart:         &CartHandler{API: api, Carts: carts},
		Checkout:     &CheckoutHandler{API: api, Carts: carts},
		Auth:         &AuthHandler{Sessions: sess},
		Dashboard:    &DashboardHandler{API: api},
		Items:        &AdminItemsHandler{API: api},
		Categories:   &AdminCategoriesHandler{API: api},
		Karats:       &AdminKaratsHandler{API: api},
		GoldPrices:   &AdminGoldPricesHandler{API: api},
		Discounts:    &AdminDiscountsHandler{API: api},
		Reservations: &AdminReservationsHandler{API: api},
	}
}
