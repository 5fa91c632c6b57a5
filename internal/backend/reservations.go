package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"zahab/internal/domain"
)

func (c *Client) ListReservations(ctx context.Context, page, size int) (Page[domain.Reservation], error) {
	var p Page[domain.Reservation]
	err := c.do(ctx, "GET", "/reservations", pageQuery(page, size), nil, &p)
	return p, err
}

type ReservationLineRequest struct {
	ItemCode string `json:"itemCode"`
	Quantity int    `json:"quantity"`
}

// ReservationRequest is the public checkout submission.
type ReservationRequest struct {
	Username    string                   `json:"username"`
	PhoneNumber string                   `json:"phoneNumber"`
	TotalPrice  decimal.Decimal          `json:"totalPrice"`
	Items       []ReservationLineRequest `json:"items"`
}

func (c *Client) CreateReservation(ctx context.Context, r ReservationRequest) (domain.Reservation, error) {
	var out domain.Reservation
	err := c.do(ctx, "POST", "/reservations", nil, r, &out)
	return out, err
}

// UpdateReservationStatus is the admin's only post-creation mutation.
func (c *Client) UpdateReservationStatus(ctx context.Context, id int64, status string) error {
	q := url.Values{}
	q.Set("status", status)
	return c.do(ctx, "PATCH", fmt.Sprintf("/reservations/%d", id), q, nil, nil)
}
