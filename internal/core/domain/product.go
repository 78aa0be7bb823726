package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the client's cached copy of a catalog entry. The remote catalog
// service owns it; local mutations only ever reflect an in-flight or
// confirmed remote mutation.
type Product struct {
	ID          int64           `json:"id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"imageUrl"`
	Category    string          `json:"category"`
	Details     string          `json:"details"`
}

// PurchaseIntent exists only for the duration of a single purchase call.
type PurchaseIntent struct {
	ProductID int64
	Quantity  int
}

// Receipt is the order service's confirmation of a completed purchase.
type Receipt struct {
	OrderID   int64     `json:"id"`
	ProductID int64     `json:"productId"`
	Quantity  int       `json:"quantity"`
	OrderedAt time.Time `json:"orderedAt"`
}

// Order is one historical purchase of the current customer.
type Order struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	Quantity  int       `json:"quantity"`
	OrderedAt time.Time `json:"orderedAt"`
}
