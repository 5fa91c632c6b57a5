package domain

import (
	"github.com/shopspring/decimal"

	"zahab/internal/i18n"
)

// Item is a catalog product as served by the backend. The category is
// referenced by name, not id; that is the backend's contract for item
// payloads and filters.
type Item struct {
	ID                  int64            `json:"id"`
	Code                string           `json:"code"`
	Name                string           `json:"name"`
	NameAr              string           `json:"nameAr"`
	Description         string           `json:"description"`
	DescriptionAr       string           `json:"descriptionAr"`
	CategoryName        string           `json:"categoryName"`
	KaratName           string           `json:"karatName"`
	Weight              decimal.Decimal  `json:"weight"`
	FactoryPrice        decimal.Decimal  `json:"factoryPrice"`
	PriceBeforeDiscount decimal.Decimal  `json:"priceBeforeDiscount"`
	PriceAfterDiscount  *decimal.Decimal `json:"priceAfterDiscount,omitempty"`
	DiscountPercentage  *decimal.Decimal `json:"discountPercentage,omitempty"`
	ImageURL            string           `json:"imageUrl"`
	Stock               int              `json:"stock"`
	Reserved            int              `json:"reserved"`
	Active              bool             `json:"active"`
}

func (i Item) DisplayName(lang i18n.Lang) string {
	return i18n.Pick(lang, i.Name, i.NameAr)
}

func (i Item) DisplayDescription(lang i18n.Lang) string {
	return i18n.Pick(lang, i.Description, i.DescriptionAr)
}

// HasDiscount reports whether a discounted price applies: the backend sends
// priceAfterDiscount iff discountPercentage is present and positive.
func (i Item) HasDiscount() bool {
	return i.DiscountPercentage != nil && i.DiscountPercentage.IsPositive() && i.PriceAfterDiscount != nil
}

// EffectivePrice is the unit price a customer pays right now.
func (i Item) EffectivePrice() decimal.Decimal {
	if i.HasDiscount() {
		return *i.PriceAfterDiscount
	}
	return i.PriceBeforeDiscount
}

type Category struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	NameAr        string `json:"nameAr"`
	Description   string `json:"description"`
	DescriptionAr string `json:"descriptionAr"`
}

func (c Category) DisplayName(lang i18n.Lang) string {
	return i18n.Pick(lang, c.Name, c.NameAr)
}

type Karat struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`  // e.g. "18"
	Label string `json:"label"` // e.g. "18K"
}

// GoldPrice is one (karat, price-per-gram) record; which record is in effect
// at a given time is the backend's business, not checked here.
type GoldPrice struct {
	ID            int64           `json:"id"`
	KaratName     string          `json:"karatName"`
	PricePerGram  decimal.Decimal `json:"pricePerGram"`
	EffectiveDate string          `json:"effectiveDate"`
	Active        bool            `json:"active"`
}

type Discount struct {
	ID         int64           `json:"id"`
	Percentage decimal.Decimal `json:"percentage"`
	StartDate  string          `json:"startDate"`
	EndDate    string          `json:"endDate"`
	Active     bool            `json:"active"`
	Items      []Item          `json:"items,omitempty"`
}

// Reservation statuses form a closed set; no client-side transitions beyond
// the admin picking one of these.
const (
	ReservationConfirmed = "CONFIRMED"
	ReservationCancelled = "CANCELLED"
	ReservationClosed    = "CLOSED"
)

func ValidReservationStatus(s string) bool {
	return s == ReservationConfirmed || s == ReservationCancelled || s == ReservationClosed
}

type ReservationLine struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
}

type Reservation struct {
	ID          int64             `json:"id"`
	Username    string            `json:"username"`
	PhoneNumber string            `json:"phoneNumber"`
	Status      string            `json:"status"`
	TotalPrice  decimal.Decimal   `json:"totalPrice"`
	CreatedAt   string            `json:"createdAt"`
	Items       []ReservationLine `json:"items"`
}
