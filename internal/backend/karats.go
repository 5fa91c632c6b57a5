package backend

import (
	"context"
	"fmt"

	"zahab/internal/domain"
)

func (c *Client) ListKarats(ctx context.Context, page, size int) (Page[domain.Karat], error) {
	var p Page[domain.Karat]
	err := c.do(ctx, "GET", "/karat", pageQuery(page, size), nil, &p)
	return p, err
}

func (c *Client) AllKarats(ctx context.Context) ([]domain.Karat, error) {
	p, err := c.ListKarats(ctx, 0, 100)
	return p.Content, err
}

type KaratRequest struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

func (c *Client) CreateKarat(ctx context.Context, r KaratRequest) (domain.Karat, error) {
	var out domain.Karat
	err := c.do(ctx, "POST", "/karat", nil, r, &out)
	return out, err
}

func (c *Client) UpdateKarat(ctx context.Context, id int64, r KaratRequest) (domain.Karat, error) {
	var out domain.Karat
	err := c.do(ctx, "PUT", fmt.Sprintf("/karat/%d", id), nil, r, &out)
	return out, err
}

func (c *Client) DeleteKarat(ctx context.Context, id int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/karat/%d", id), nil, nil, nil)
}
