package models

import "time"

// ═══════════════════════════════════════════════════════════
// Stock Status
// ═══════════════════════════════════════════════════════════

type StockStatus string

const (
	StockInStock    StockStatus = "in_stock"
	StockLowStock   StockStatus = "low_stock"
	StockOutOfStock StockStatus = "out_of_stock"
	StockComingSoon StockStatus = "coming_soon"
)

// UnrankedFeaturedOrder sorts unranked products after every explicitly
// ranked one under the "featured" sort.
const UnrankedFeaturedOrder = 999

// ═══════════════════════════════════════════════════════════
// Catalog Entities (read-only snapshots from the upstream API)
// ═══════════════════════════════════════════════════════════

// Product is one sellable item. The upstream backend owns the data; this
// service never mutates it.
type Product struct {
	ID            int         `json:"id"`
	Name          string      `json:"name"`
	Slug          string      `json:"slug"`
	Description   string      `json:"description,omitempty"`
	Vertical      int         `json:"vertical"`
	VerticalName  string      `json:"vertical_name,omitempty"`
	MOQ           string      `json:"moq,omitempty"`
	Packaging     string      `json:"packaging,omitempty"`
	Badge         string      `json:"badge,omitempty"`
	StockStatus   StockStatus `json:"stock_status,omitempty"`
	IsFeatured    bool        `json:"is_featured,omitempty"`
	FeaturedOrder *int        `json:"featured_order,omitempty"`
	CreatedAt     *time.Time  `json:"created_at,omitempty"`
}

// FeaturedRank returns the explicit featured order, or the unranked
// sentinel when none was assigned.
func (p Product) FeaturedRank() int {
	if p.FeaturedOrder == nil {
		return UnrankedFeaturedOrder
	}
	return *p.FeaturedOrder
}

// Vertical is a top-level product grouping ("Groceries & Pulses",
// "Frozen Vegetables", ...).
type Vertical struct {
	ID       int               `json:"id"`
	Title    string            `json:"title"`
	IconName string            `json:"icon_name,omitempty"`
	Order    int               `json:"order,omitempty"`
	Products []VerticalProduct `json:"products,omitempty"`
}

// VerticalProduct is a representative product name shown on a vertical card.
type VerticalProduct struct {
	Name  string `json:"name"`
	Order int    `json:"order,omitempty"`
}

// CategoryCount pairs a category label with the number of products in it.
type CategoryCount struct {
	Title    string `json:"title"`
	IconName string `json:"icon_name,omitempty"`
	Count    int    `json:"count"`
}

// ═══════════════════════════════════════════════════════════
// Contact
// ═══════════════════════════════════════════════════════════

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Message string `json:"message" binding:"required"`
}
