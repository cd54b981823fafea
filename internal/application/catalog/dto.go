package catalog

import "github.com/shopspring/decimal"

// ProductResponse is the catalog view returned to the storefront
type ProductResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
}
