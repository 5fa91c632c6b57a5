package backend

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"zahab/internal/domain"
)

func (c *Client) ListDiscounts(ctx context.Context, page, size int) (Page[domain.Discount], error) {
	var p Page[domain.Discount]
	err := c.do(ctx, "GET", "/discounts", pageQuery(page, size), nil, &p)
	return p, err
}

func (c *Client) GetDiscount(ctx context.Context, id int64) (domain.Discount, error) {
	var out domain.Discount
	err := c.do(ctx, "GET", fmt.Sprintf("/discounts/%d", id), nil, nil, &out)
	return out, err
}

type DiscountRequest struct {
	Percentage decimal.Decimal `json:"percentage"`
	StartDate  string          `json:"startDate"`
	EndDate    string          `json:"endDate"`
	Active     bool            `json:"active"`
}

func (c *Client) CreateDiscount(ctx context.Context, r DiscountRequest) (domain.Discount, error) {
	var out domain.Discount
	err := c.do(ctx, "POST", "/discounts", nil, r, &out)
	return out, err
}

func (c *Client) UpdateDiscount(ctx context.Context, id int64, r DiscountRequest) (domain.Discount, error) {
	var out domain.Discount
	err := c.do(ctx, "PUT", fmt.Sprintf("/discounts/%d", id), nil, r, &out)
	return out, err
}

func (c *Client) DeleteDiscount(ctx context.Context, id int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/discounts/%d", id), nil, nil, nil)
}

// AddDiscountItems associates items by code; the body is a bare code array.
func (c *Client) AddDiscountItems(ctx context.Context, id int64, codes []string) error {
	return c.do(ctx, "POST", fmt.Sprintf("/discounts/%d/items", id), nil, codes, nil)
}

func (c *Client) RemoveDiscountItems(ctx context.Context, id int64, codes []string) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/discounts/%d/items", id), nil, codes, nil)
}
