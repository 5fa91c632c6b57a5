package backend

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"zahab/internal/domain"
)

func (c *Client) ListGoldPrices(ctx context.Context, page, size int) (Page[domain.GoldPrice], error) {
	var p Page[domain.GoldPrice]
	err := c.do(ctx, "GET", "/gold-price", pageQuery(page, size), nil, &p)
	return p, err
}

type GoldPriceRequest struct {
	KaratName     string          `json:"karatName"`
	PricePerGram  decimal.Decimal `json:"pricePerGram"`
	EffectiveDate string          `json:"effectiveDate"`
	Active        bool            `json:"active"`
}

func (c *Client) CreateGoldPrice(ctx context.Context, r GoldPriceRequest) (domain.GoldPrice, error) {
	var out domain.GoldPrice
	err := c.do(ctx, "POST", "/gold-price", nil, r, &out)
	return out, err
}

func (c *Client) UpdateGoldPrice(ctx context.Context, id int64, r GoldPriceRequest) (domain.GoldPrice, error) {
	var out domain.GoldPrice
	err := c.do(ctx, "PUT", fmt.Sprintf("/gold-price/%d", id), nil, r, &out)
	return out, err
}

func (c *Client) DeleteGoldPrice(ctx context.Context, id int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/gold-price/%d", id), nil, nil, nil)
}
