package model

import "github.com/shopspring/decimal"

// Product is a product card as returned by the product search endpoint.
// The listing core never inspects it beyond handing it to a renderer.
type Product struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Image  string          `json:"image,omitempty"`
	Rating float64         `json:"rating,omitempty"`
	Seller Seller          `json:"seller"`
}

// Seller is the seller summary embedded in a product card.
type Seller struct {
	ID       string `json:"id,omitempty"`
	ShopName string `json:"shop_name,omitempty"`
}
