package backend

import (
	"context"
	"fmt"

	"zahab/internal/domain"
)

func (c *Client) ListCategories(ctx context.Context, page, size int) (Page[domain.Category], error) {
	var p Page[domain.Category]
	err := c.do(ctx, "GET", "/category", pageQuery(page, size), nil, &p)
	return p, err
}

// AllCategories fetches one oversized page for filter dropdowns.
func (c *Client) AllCategories(ctx context.Context) ([]domain.Category, error) {
	p, err := c.ListCategories(ctx, 0, 200)
	return p.Content, err
}

type CategoryRequest struct {
	Name          string `json:"name"`
	NameAr        string `json:"nameAr"`
	Description   string `json:"description"`
	DescriptionAr string `json:"descriptionAr"`
}

func (c *Client) CreateCategory(ctx context.Context, r CategoryRequest) (domain.Category, error) {
	var out domain.Category
	err := c.do(ctx, "POST", "/category", nil, r, &out)
	return out, err
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, r CategoryRequest) (domain.Category, error) {
	var out domain.Category
	err := c.do(ctx, "PUT", fmt.Sprintf("/category/%d", id), nil, r, &out)
	return out, err
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/category/%d", id), nil, nil, nil)
}
