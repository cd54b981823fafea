package catalog

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Product represents a single item in the store catalog.
// The catalog is loaded once at startup and is immutable afterwards,
// so products carry no lifecycle beyond their static fields.
type Product struct {
	ID          int
	Name        string
	Price       decimal.Decimal
	Image       string
	Description string
}

// Key returns the string-encoded product ID used as the cart line key.
func (p Product) Key() string {
	return strconv.Itoa(p.ID)
}

// LineTotal returns the price of the product multiplied by quantity.
func (p Product) LineTotal(quantity int) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(quantity)))
}
