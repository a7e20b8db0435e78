package domain

// Category as served by the backend catalog API.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Product as served by the backend catalog API. Category is optional:
// the backend nulls it out when the product is uncategorized.
type Product struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	Price             float64   `json:"price"`
	TotalItemsInStock int       `json:"totalItemsInStock"`
	Category          *Category `json:"category,omitempty"`
	ImageURL          string    `json:"imageUrl,omitempty"`
}

// CategoryName returns the product's category name or "" when uncategorized.
func (p *Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

// ProductPayload is the write shape accepted by the backend for product
// create and update calls.
type ProductPayload struct {
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	TotalItemsInStock int     `json:"totalItemsInStock"`
	CategoryID        int     `json:"categoryId"`
	ImageURL          string  `json:"imageUrl"`
}

// CategoryPayload is the write shape for category create and update calls.
type CategoryPayload struct {
	Name string `json:"name"`
}

// CartItem is a cart line: a product snapshot taken at add time plus the
// selected quantity. Cart lines live only in the gateway session, the
// backend never sees them.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is price times quantity, unrounded.
func (ci *CartItem) Subtotal() float64 {
	return ci.Product.Price * float64(ci.Quantity)
}

// DashboardStats is the read-only aggregate computed by the backend.
type DashboardStats struct {
	TotalProducts     int        `json:"totalProducts"`
	TotalValue        float64    `json:"totalValue"`
	TotalItemsInStock int        `json:"totalItemsInStock"`
	Categories        []Category `json:"categories"`
}
