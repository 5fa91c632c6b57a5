package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"zahab/internal/domain"
)

// ItemFilter narrows the public catalog search. Category is matched by name,
// which is the backend's contract for item filters.
type ItemFilter struct {
	Name         string
	Code         string
	CategoryName string
	Page         int
	Size         int
}

// SearchItems hits the public catalog search; empty filters list everything.
func (c *Client) SearchItems(ctx context.Context, f ItemFilter) (Page[domain.Item], error) {
	q := pageQuery(f.Page, f.Size)
	if f.Name != "" {
		q.Set("name", f.Name)
	}
	if f.Code != "" {
		q.Set("code", f.Code)
	}
	if f.CategoryName != "" {
		q.Set("categoryName", f.CategoryName)
	}
	var p Page[domain.Item]
	err := c.do(ctx, "GET", "/items/search", q, nil, &p)
	return p, err
}

// ListItems is the admin listing.
func (c *Client) ListItems(ctx context.Context, page, size int, categoryName string) (Page[domain.Item], error) {
	q := pageQuery(page, size)
	if categoryName != "" {
		q.Set("categoryName", categoryName)
	}
	var p Page[domain.Item]
	err := c.do(ctx, "GET", "/items", q, nil, &p)
	return p, err
}

func (c *Client) GetItem(ctx context.Context, code string) (domain.Item, error) {
	var it domain.Item
	err := c.do(ctx, "GET", "/items/"+url.PathEscape(code), nil, nil, &it)
	return it, err
}

type ItemRequest struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	NameAr        string          `json:"nameAr"`
	Description   string          `json:"description"`
	DescriptionAr string          `json:"descriptionAr"`
	CategoryName  string          `json:"categoryName"`
	KaratName     string          `json:"karatName"`
	Weight        decimal.Decimal `json:"weight"`
	FactoryPrice  decimal.Decimal `json:"factoryPrice"`
	ImageURL      string          `json:"imageUrl"`
	Stock         int             `json:"stock"`
	Active        bool            `json:"active"`
}

func (c *Client) CreateItem(ctx context.Context, r ItemRequest) (domain.Item, error) {
	var it domain.Item
	err := c.do(ctx, "POST", "/items", nil, r, &it)
	return it, err
}

func (c *Client) UpdateItem(ctx context.Context, id int64, r ItemRequest) (domain.Item, error) {
	var it domain.Item
	err := c.do(ctx, "PUT", fmt.Sprintf("/items/%d", id), nil, r, &it)
	return it, err
}

// DeleteItem removes an item by its stable code, not its id.
func (c *Client) DeleteItem(ctx context.Context, code string) error {
	return c.do(ctx, "DELETE", "/items/code/"+url.PathEscape(code), nil, nil, nil)
}
